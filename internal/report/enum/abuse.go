package enum

// AbuseKind is the top-level category a reporter picks for a report.
//
//go:generate go tool enumer -type=AbuseKind -trimprefix=AbuseKind
type AbuseKind int

const (
	AbuseKindSpam AbuseKind = iota
	AbuseKindHarassment
	AbuseKindOffensiveContent
	AbuseKindThreat
)

// OffensiveKind narrows an offensive content report.
//
//go:generate go tool enumer -type=OffensiveKind -trimprefix=OffensiveKind
type OffensiveKind int

const (
	OffensiveKindHate OffensiveKind = iota
	OffensiveKindExplicit
	OffensiveKindCSAM
	OffensiveKindViolent
	OffensiveKindExtremist
)

// ExtremistKind narrows an extremist content report.
//
//go:generate go tool enumer -type=ExtremistKind -trimprefix=ExtremistKind
type ExtremistKind int

const (
	// ExtremistKindViolence covers content inciting or glorifying extremist violence.
	ExtremistKindViolence ExtremistKind = iota
	// ExtremistKindRecruitment covers attempts to recruit into extremist groups.
	ExtremistKindRecruitment
	// ExtremistKindPropaganda covers extremist messaging and symbols.
	ExtremistKindPropaganda
)

// ThreatKind narrows a threat report by who is at risk.
//
//go:generate go tool enumer -type=ThreatKind -trimprefix=ThreatKind
type ThreatKind int

const (
	ThreatKindSelf ThreatKind = iota
	ThreatKindOthers
	ThreatKindPublic
	ThreatKindTerror
)

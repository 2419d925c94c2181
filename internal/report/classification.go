package report

import (
	"errors"
	"fmt"

	"github.com/robalyx/warden/internal/report/enum"
)

var (
	// ErrInvalidClassification indicates a classification that cannot exist, such
	// as an offensive report whose subcategory is the extremist branch itself.
	ErrInvalidClassification = errors.New("invalid classification")
	// ErrUnknownClassification is returned when decoding an unrecognized payload.
	ErrUnknownClassification = errors.New("unknown classification")
)

// Classification is the category path a report was filed under. Only the
// variants in this package implement it, so a report can only carry the
// fields that belong to its path.
type Classification interface {
	// Abuse returns the top-level category.
	Abuse() enum.AbuseKind
	// Label returns the human-readable category path.
	Label() string

	sealed()
}

// Spam is a spam report.
type Spam struct{}

// Harassment is a harassment report.
type Harassment struct{}

// Offensive is offensive content outside the extremist branch.
type Offensive struct {
	kind enum.OffensiveKind
}

// Extremist is offensive content in the extremist branch.
type Extremist struct {
	kind enum.ExtremistKind
}

// Threat is a report of a threat against someone.
type Threat struct {
	kind enum.ThreatKind
}

// NewOffensive creates an offensive classification. The extremist kind must be
// built with NewExtremist instead.
func NewOffensive(kind enum.OffensiveKind) (Offensive, error) {
	if !kind.IsAOffensiveKind() || kind == enum.OffensiveKindExtremist {
		return Offensive{}, fmt.Errorf("%w: offensive kind %s", ErrInvalidClassification, kind)
	}

	return Offensive{kind: kind}, nil
}

// NewExtremist creates an extremist classification.
func NewExtremist(kind enum.ExtremistKind) (Extremist, error) {
	if !kind.IsAExtremistKind() {
		return Extremist{}, fmt.Errorf("%w: extremist kind %s", ErrInvalidClassification, kind)
	}

	return Extremist{kind: kind}, nil
}

// NewThreat creates a threat classification.
func NewThreat(kind enum.ThreatKind) (Threat, error) {
	if !kind.IsAThreatKind() {
		return Threat{}, fmt.Errorf("%w: threat kind %s", ErrInvalidClassification, kind)
	}

	return Threat{kind: kind}, nil
}

func (Spam) Abuse() enum.AbuseKind       { return enum.AbuseKindSpam }
func (Harassment) Abuse() enum.AbuseKind { return enum.AbuseKindHarassment }
func (Offensive) Abuse() enum.AbuseKind  { return enum.AbuseKindOffensiveContent }
func (Extremist) Abuse() enum.AbuseKind  { return enum.AbuseKindOffensiveContent }
func (Threat) Abuse() enum.AbuseKind     { return enum.AbuseKindThreat }

func (Spam) Label() string       { return AbuseName(enum.AbuseKindSpam) }
func (Harassment) Label() string { return AbuseName(enum.AbuseKindHarassment) }

func (c Offensive) Label() string {
	return AbuseName(enum.AbuseKindOffensiveContent) + " > " + OffensiveName(c.kind)
}

func (c Extremist) Label() string {
	return AbuseName(enum.AbuseKindOffensiveContent) + " > " +
		OffensiveName(enum.OffensiveKindExtremist) + " > " + ExtremistName(c.kind)
}

func (c Threat) Label() string {
	return AbuseName(enum.AbuseKindThreat) + " > " + ThreatName(c.kind)
}

// Kind returns the offensive subcategory.
func (c Offensive) Kind() enum.OffensiveKind { return c.kind }

// Kind returns the extremist subcategory.
func (c Extremist) Kind() enum.ExtremistKind { return c.kind }

// Kind returns the threat subcategory.
func (c Threat) Kind() enum.ThreatKind { return c.kind }

func (Spam) sealed()       {}
func (Harassment) sealed() {}
func (Offensive) sealed()  {}
func (Extremist) sealed()  {}
func (Threat) sealed()     {}

// AbuseName returns the menu label of an abuse category.
func AbuseName(kind enum.AbuseKind) string {
	switch kind {
	case enum.AbuseKindSpam:
		return "Spam"
	case enum.AbuseKindHarassment:
		return "Harassment"
	case enum.AbuseKindOffensiveContent:
		return "Offensive Content"
	case enum.AbuseKindThreat:
		return "Threat"
	default:
		return kind.String()
	}
}

// OffensiveName returns the menu label of an offensive subcategory.
func OffensiveName(kind enum.OffensiveKind) string {
	switch kind {
	case enum.OffensiveKindHate:
		return "Hate Speech"
	case enum.OffensiveKindExplicit:
		return "Sexually Explicit Content"
	case enum.OffensiveKindCSAM:
		return "Child Sexual Abuse Material"
	case enum.OffensiveKindViolent:
		return "Violent or Graphic Content"
	case enum.OffensiveKindExtremist:
		return "Extremist Content"
	default:
		return kind.String()
	}
}

// ExtremistName returns the menu label of an extremist subcategory.
func ExtremistName(kind enum.ExtremistKind) string {
	switch kind {
	case enum.ExtremistKindViolence:
		return "Violence or Incitement"
	case enum.ExtremistKindRecruitment:
		return "Recruitment"
	case enum.ExtremistKindPropaganda:
		return "Propaganda"
	default:
		return kind.String()
	}
}

// ThreatName returns the menu label of a threat subcategory.
func ThreatName(kind enum.ThreatKind) string {
	switch kind {
	case enum.ThreatKindSelf:
		return "Self-harm or Suicide"
	case enum.ThreatKindOthers:
		return "Threat to Others"
	case enum.ThreatKindPublic:
		return "Threat to Public Safety"
	case enum.ThreatKindTerror:
		return "Terrorism"
	default:
		return kind.String()
	}
}

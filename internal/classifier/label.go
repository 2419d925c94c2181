package classifier

import "github.com/robalyx/warden/internal/report/enum"

// Label is the classifier's verdict on a piece of content.
//
//go:generate go tool enumer -type=Label -trimprefix=Label
type Label int

const (
	// LabelNone means the content is not harmful.
	LabelNone Label = iota
	// LabelPropaganda is content promoting an extremist group or ideology.
	LabelPropaganda
	// LabelRadicalization is content pushing toward extremist violence.
	LabelRadicalization
	// LabelRecruitment is content soliciting people to join an extremist group.
	LabelRecruitment
)

// Result is a classification with the model's one-line reason.
type Result struct {
	Label  Label
	Reason string
}

// Flagged reports whether the content should be queued for review.
func (r *Result) Flagged() bool {
	return r.Label != LabelNone
}

// ExtremistKind maps a flagged label onto the report taxonomy.
func (r *Result) ExtremistKind() (enum.ExtremistKind, bool) {
	switch r.Label {
	case LabelPropaganda:
		return enum.ExtremistKindPropaganda, true
	case LabelRadicalization:
		return enum.ExtremistKindViolence, true
	case LabelRecruitment:
		return enum.ExtremistKindRecruitment, true
	case LabelNone:
	}

	return 0, false
}

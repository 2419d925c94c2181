package classifier_test

import (
	"testing"

	"github.com/robalyx/warden/internal/classifier"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    *classifier.Result
		wantErr bool
	}{
		{
			name: "plain",
			text: `{"Label": "Recruitment", "Reason": "Invites readers to join a militia."}`,
			want: &classifier.Result{Label: classifier.LabelRecruitment, Reason: "Invites readers to join a militia."},
		},
		{
			name: "fenced",
			text: "```json\n{\"Label\": \"None\", \"Reason\": \"Ordinary chat.\"}\n```",
			want: &classifier.Result{Label: classifier.LabelNone, Reason: "Ordinary chat."},
		},
		{
			name: "lowercase label",
			text: `{"Label": "propaganda", "Reason": " Glorifies an attack. "}`,
			want: &classifier.Result{Label: classifier.LabelPropaganda, Reason: "Glorifies an attack."},
		},
		{name: "unknown label", text: `{"Label": "Spam", "Reason": "x"}`, wantErr: true},
		{name: "not json", text: `Label: None`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := classifier.ParseResponse(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, classifier.ErrModelResponse)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultExtremistKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   classifier.Label
		want    enum.ExtremistKind
		flagged bool
	}{
		{label: classifier.LabelRadicalization, want: enum.ExtremistKindViolence, flagged: true},
		{label: classifier.LabelPropaganda, want: enum.ExtremistKindPropaganda, flagged: true},
		{label: classifier.LabelRecruitment, want: enum.ExtremistKindRecruitment, flagged: true},
		{label: classifier.LabelNone, flagged: false},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			t.Parallel()

			r := &classifier.Result{Label: tt.label}
			kind, ok := r.ExtremistKind()

			assert.Equal(t, tt.flagged, ok)
			assert.Equal(t, tt.flagged, r.Flagged())

			if tt.flagged {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

package report_test

import (
	"testing"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffensive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    enum.OffensiveKind
		wantErr bool
	}{
		{name: "hate", kind: enum.OffensiveKindHate},
		{name: "violent", kind: enum.OffensiveKindViolent},
		{name: "extremist is its own variant", kind: enum.OffensiveKindExtremist, wantErr: true},
		{name: "out of range", kind: enum.OffensiveKind(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := report.NewOffensive(tt.kind)
			if tt.wantErr {
				require.ErrorIs(t, err, report.ErrInvalidClassification)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, enum.AbuseKindOffensiveContent, c.Abuse())
		})
	}
}

func TestReportSubcategories(t *testing.T) {
	t.Parallel()

	threat, err := report.NewThreat(enum.ThreatKindTerror)
	require.NoError(t, err)

	r := report.New(report.User{ID: 1, Name: "alice"})
	r.Classification = threat

	kind, ok := r.ThreatKind()
	assert.True(t, ok)
	assert.Equal(t, enum.ThreatKindTerror, kind)

	_, ok = r.ExtremistKind()
	assert.False(t, ok)
	assert.Equal(t, "Threat > Terrorism", threat.Label())
}

func TestNewAutoMod(t *testing.T) {
	t.Parallel()

	r, err := report.NewAutoMod(
		report.User{ID: 9, Name: "poster"},
		report.Link{GuildID: 1, ChannelID: 2, MessageID: 3},
		"join us", enum.ExtremistKindRecruitment, "recruiting language",
	)
	require.NoError(t, err)

	assert.Equal(t, enum.SourceAutoMod, r.Source)
	assert.Equal(t, report.AutoModName, r.Reporter.Name)
	assert.Zero(t, r.Reporter.ID)
	assert.Equal(t, "recruiting language", r.Comment)
	assert.True(t, r.Valid)
	assert.Equal(t, enum.AbuseKindOffensiveContent, r.Classification.Abuse())

	kind, ok := r.ExtremistKind()
	assert.True(t, ok)
	assert.Equal(t, enum.ExtremistKindRecruitment, kind)
}

func TestUserKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", report.User{ID: 42, Name: "bob"}.Key())
	assert.Equal(t, "name:Auto Mod", report.User{Name: report.AutoModName}.Key())
}

func TestRender(t *testing.T) {
	t.Parallel()

	extremist, err := report.NewExtremist(enum.ExtremistKindPropaganda)
	require.NoError(t, err)

	r := report.New(report.User{ID: 1, Name: "alice"})
	r.Reported = report.User{ID: 2, Name: "mallory"}
	r.Content = "some post"
	r.Classification = extremist
	r.Priority = enum.PriorityMedium
	r.BlockRequested = true

	out := r.Render()
	assert.Contains(t, out, "Reporting user: alice (id: 1)")
	assert.Contains(t, out, "Reported user: mallory (id: 2)")
	assert.Contains(t, out, "Category: Offensive Content > Extremist Content > Propaganda")
	assert.Contains(t, out, "Priority: Medium")
	assert.Contains(t, out, "Block requested: yes")
	assert.NotContains(t, out, "Severity:")
}

func TestCodecPreservesClassification(t *testing.T) {
	t.Parallel()

	extremist, err := report.NewExtremist(enum.ExtremistKindViolence)
	require.NoError(t, err)

	severity := enum.Severity2
	r := report.New(report.User{ID: 1, Name: "alice"})
	r.Reported = report.User{ID: 18446744073709551615, Name: "mallory"}
	r.Classification = extremist
	r.Priority = enum.PriorityMedium
	r.Severity = &severity

	data, err := report.Encode(r)
	require.NoError(t, err)

	decoded, err := report.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, r.ID, decoded.ID)
	assert.Equal(t, r.Reported, decoded.Reported)
	assert.Equal(t, extremist, decoded.Classification)
	assert.Equal(t, enum.PriorityMedium, decoded.Priority)
	require.NotNil(t, decoded.Severity)
	assert.Equal(t, enum.Severity2, *decoded.Severity)
}

func TestDecodeRejectsUnknownClassification(t *testing.T) {
	t.Parallel()

	_, err := report.Decode([]byte(`{"source":"User","priority":"Low","abuse":"Threat","subcategory":"Nope"}`))
	require.ErrorIs(t, err, report.ErrUnknownClassification)
}

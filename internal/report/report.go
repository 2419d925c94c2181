package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/report/enum"
)

// AutoModName is the reporter name used for classifier-raised reports.
const AutoModName = "Auto Mod"

// User identifies a chat account involved in a report.
type User struct {
	ID   uint64
	Name string
}

// IsZero reports whether the user is unset.
func (u User) IsZero() bool {
	return u.ID == 0 && u.Name == ""
}

// Key returns the identity used to key escalation history. Accounts without a
// platform ID, such as the auto moderator, are keyed by name.
func (u User) Key() string {
	if u.ID != 0 {
		return strconv.FormatUint(u.ID, 10)
	}

	return "name:" + u.Name
}

// Link points at the reported message.
type Link struct {
	GuildID   uint64
	ChannelID uint64
	MessageID uint64
}

// Report is the structured result of an intake conversation or an automated
// classification.
type Report struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Source    enum.Source

	Reporter User
	Reported User
	Link     Link
	Content  string

	Classification Classification
	Comment        string
	BlockRequested bool

	// Priority is stamped by the queue on insertion.
	Priority enum.Priority
	// Severity stays nil until a moderator decides.
	Severity *enum.Severity
	// Valid is false when the reporter cancelled.
	Valid bool
}

// New creates an in-progress report for a reporting user.
func New(reporter User) *Report {
	return &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Source:    enum.SourceUser,
		Reporter:  reporter,
		Valid:     true,
	}
}

// NewAutoMod creates a complete report for content flagged by the classifier.
func NewAutoMod(reported User, link Link, content string, kind enum.ExtremistKind, reason string) (*Report, error) {
	classification, err := NewExtremist(kind)
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:             uuid.New(),
		CreatedAt:      time.Now(),
		Source:         enum.SourceAutoMod,
		Reporter:       User{Name: AutoModName},
		Reported:       reported,
		Link:           link,
		Content:        content,
		Classification: classification,
		Comment:        reason,
		Valid:          true,
	}, nil
}

// ThreatKind returns the threat subcategory if the report has one.
func (r *Report) ThreatKind() (enum.ThreatKind, bool) {
	if c, ok := r.Classification.(Threat); ok {
		return c.Kind(), true
	}

	return 0, false
}

// ExtremistKind returns the extremist subcategory if the report has one.
func (r *Report) ExtremistKind() (enum.ExtremistKind, bool) {
	if c, ok := r.Classification.(Extremist); ok {
		return c.Kind(), true
	}

	return 0, false
}

// AbuseName returns the top-level category label, or "Unclassified" while
// the reporter has not picked one yet.
func (r *Report) AbuseName() string {
	if r.Classification == nil {
		return "Unclassified"
	}

	return AbuseName(r.Classification.Abuse())
}

// Render formats the report for moderators.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Source: %s\n", r.Source)
	fmt.Fprintf(&b, "Reporting user: %s\n", formatUser(r.Reporter))
	fmt.Fprintf(&b, "Reported user: %s\n", formatUser(r.Reported))
	fmt.Fprintf(&b, "Reported message: %q\n", r.Content)

	category := "Unclassified"
	if r.Classification != nil {
		category = r.Classification.Label()
	}

	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Priority: %s\n", r.Priority)

	if r.Comment != "" {
		fmt.Fprintf(&b, "Additional comments: %s\n", r.Comment)
	}

	if r.BlockRequested {
		b.WriteString("Block requested: yes\n")
	}

	if r.Severity != nil {
		fmt.Fprintf(&b, "Severity: %s\n", *r.Severity)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatUser(u User) string {
	if u.IsZero() {
		return "unknown"
	}

	if u.ID == 0 {
		return u.Name
	}

	return fmt.Sprintf("%s (id: %d)", u.Name, u.ID)
}

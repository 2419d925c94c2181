package report

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/report/enum"
)

// wireReport is the flat encoding used when a report leaves the process.
type wireReport struct {
	ID             uuid.UUID      `json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	Source         string         `json:"source"`
	ReporterID     uint64         `json:"reporterId,string"`
	ReporterName   string         `json:"reporterName"`
	ReportedID     uint64         `json:"reportedId,string"`
	ReportedName   string         `json:"reportedName"`
	GuildID        uint64         `json:"guildId,string"`
	ChannelID      uint64         `json:"channelId,string"`
	MessageID      uint64         `json:"messageId,string"`
	Content        string         `json:"content"`
	Abuse          string         `json:"abuse"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Comment        string         `json:"comment,omitempty"`
	BlockRequested bool           `json:"blockRequested"`
	Priority       string         `json:"priority"`
	Severity       *enum.Severity `json:"severity,omitempty"`
	Valid          bool           `json:"valid"`
}

// Encode serializes a report.
func Encode(r *Report) ([]byte, error) {
	w := wireReport{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		Source:         r.Source.String(),
		ReporterID:     r.Reporter.ID,
		ReporterName:   r.Reporter.Name,
		ReportedID:     r.Reported.ID,
		ReportedName:   r.Reported.Name,
		GuildID:        r.Link.GuildID,
		ChannelID:      r.Link.ChannelID,
		MessageID:      r.Link.MessageID,
		Content:        r.Content,
		Comment:        r.Comment,
		BlockRequested: r.BlockRequested,
		Priority:       r.Priority.String(),
		Severity:       r.Severity,
		Valid:          r.Valid,
	}

	switch c := r.Classification.(type) {
	case Spam, Harassment:
		w.Abuse = c.Abuse().String()
	case Offensive:
		w.Abuse = c.Abuse().String()
		w.Subcategory = c.Kind().String()
	case Extremist:
		w.Abuse = c.Abuse().String()
		w.Subcategory = enum.OffensiveKindExtremist.String() + "/" + c.Kind().String()
	case Threat:
		w.Abuse = c.Abuse().String()
		w.Subcategory = c.Kind().String()
	case nil:
	}

	data, err := sonic.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	return data, nil
}

// Decode restores a report produced by Encode.
func Decode(data []byte) (*Report, error) {
	var w wireReport
	if err := sonic.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	source, err := enum.SourceString(w.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to decode report source: %w", err)
	}

	priority, err := enum.PriorityString(w.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to decode report priority: %w", err)
	}

	classification, err := decodeClassification(w.Abuse, w.Subcategory)
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:             w.ID,
		CreatedAt:      w.CreatedAt,
		Source:         source,
		Reporter:       User{ID: w.ReporterID, Name: w.ReporterName},
		Reported:       User{ID: w.ReportedID, Name: w.ReportedName},
		Link:           Link{GuildID: w.GuildID, ChannelID: w.ChannelID, MessageID: w.MessageID},
		Content:        w.Content,
		Classification: classification,
		Comment:        w.Comment,
		BlockRequested: w.BlockRequested,
		Priority:       priority,
		Severity:       w.Severity,
		Valid:          w.Valid,
	}, nil
}

func decodeClassification(abuse, sub string) (Classification, error) {
	if abuse == "" {
		return nil, nil //nolint:nilnil // unclassified reports are allowed in flight
	}

	kind, err := enum.AbuseKindString(abuse)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClassification, abuse)
	}

	switch kind {
	case enum.AbuseKindSpam:
		return Spam{}, nil
	case enum.AbuseKindHarassment:
		return Harassment{}, nil
	case enum.AbuseKindThreat:
		threat, err := enum.ThreatKindString(sub)
		if err != nil {
			return nil, fmt.Errorf("%w: threat %s", ErrUnknownClassification, sub)
		}

		return NewThreat(threat)
	case enum.AbuseKindOffensiveContent:
		prefix := enum.OffensiveKindExtremist.String() + "/"
		if len(sub) > len(prefix) && sub[:len(prefix)] == prefix {
			extremist, err := enum.ExtremistKindString(sub[len(prefix):])
			if err != nil {
				return nil, fmt.Errorf("%w: extremist %s", ErrUnknownClassification, sub)
			}

			return NewExtremist(extremist)
		}

		offensive, err := enum.OffensiveKindString(sub)
		if err != nil {
			return nil, fmt.Errorf("%w: offensive %s", ErrUnknownClassification, sub)
		}

		return NewOffensive(offensive)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownClassification, abuse)
}

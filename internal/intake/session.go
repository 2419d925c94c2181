// Package intake implements the guided DM conversation through which a user
// files a report.
package intake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/robalyx/warden/internal/transport"
)

var (
	// ErrSessionComplete is returned when a finished session receives a message.
	ErrSessionComplete = errors.New("report session is complete")
	// ErrReportTaken is returned when the report was already handed off.
	ErrReportTaken = errors.New("report already taken from session")
)

var linkPattern = regexp.MustCompile(`/(\d+)/(\d+)/(\d+)`)

// ParseLink extracts the guild, channel and message IDs from a message link.
func ParseLink(text string) (report.Link, bool) {
	m := linkPattern.FindStringSubmatch(text)
	if m == nil {
		return report.Link{}, false
	}

	ids := make([]uint64, 3)
	for i := range ids {
		id, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return report.Link{}, false
		}

		ids[i] = id
	}

	return report.Link{GuildID: ids[0], ChannelID: ids[1], MessageID: ids[2]}, true
}

// Session is one reporting user's intake conversation. It owns its report
// until the report is taken after completion.
type Session struct {
	mu       sync.Mutex
	state    State
	report   *report.Report
	resolver transport.Resolver
}

// NewSession starts a conversation for the reporting user.
func NewSession(reporter report.User, resolver transport.Resolver) *Session {
	return &Session{
		state:    StateStart,
		report:   report.New(reporter),
		resolver: resolver,
	}
}

// State returns the current step.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Complete reports whether the conversation has ended.
func (s *Session) Complete() bool {
	return s.State() == StateComplete
}

// Take hands the finished report to the caller. It returns an error before
// completion and on every call after the first.
func (s *Session) Take() (*report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateComplete {
		return nil, fmt.Errorf("cannot take report in state %s", s.state)
	}

	if s.report == nil {
		return nil, ErrReportTaken
	}

	r := s.report
	s.report = nil

	return r, nil
}

// Handle advances the conversation with one inbound message and returns the
// replies to send in order. Unreadable input produces a re-prompt and leaves
// the state unchanged. A returned error means the message could not be
// processed and the state is unchanged.
func (s *Session) Handle(ctx context.Context, text string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateComplete {
		return nil, ErrSessionComplete
	}

	token, isToken := ParseToken(text)

	if isToken && token == TokenCancel {
		s.report.Valid = false
		s.state = StateComplete

		return []string{cancelledReply}, nil
	}

	if s.state == StateStart {
		s.state = StateAwaitingMessageLink
		return []string{startPrompt}, nil
	}

	if isToken && token == TokenHelp && s.state != StateAdditionalCommentsCapture {
		return []string{helpLine, s.prompt()}, nil
	}

	switch s.state {
	case StateAwaitingMessageLink:
		return s.handleLink(ctx, text)
	case StateConfirmMessage:
		return s.handleConfirm(token, isToken), nil
	case StateCategorySelection, StateOffensiveSubcategory, StateExtremistSubcategory, StateThreatSubcategory:
		if !isToken || !slices.Contains(menus[s.state], token) {
			return []string{invalidChoiceReply(menus[s.state])}, nil
		}

		return s.handleChoice(choice(token)), nil
	case StateAdditionalCommentPrompt:
		return s.handleCommentPrompt(token, isToken), nil
	case StateAdditionalCommentsCapture:
		s.report.Comment = text
		s.state = StateBlockUserPrompt

		return []string{blockPrompt(s.report.Reported.Name)}, nil
	case StateBlockUserPrompt:
		return s.handleBlock(token, isToken), nil
	case StateStart, StateComplete:
	}

	return nil, fmt.Errorf("unhandled state %s", s.state)
}

func (s *Session) handleLink(ctx context.Context, text string) ([]string, error) {
	link, ok := ParseLink(text)
	if !ok {
		return []string{badLinkReply}, nil
	}

	if err := s.resolver.ResolveGuild(ctx, link.GuildID); err != nil {
		if errors.Is(err, transport.ErrGuildNotFound) {
			return []string{guildMissingReply}, nil
		}

		return nil, fmt.Errorf("failed to resolve guild %d: %w", link.GuildID, err)
	}

	if err := s.resolver.ResolveChannel(ctx, link.GuildID, link.ChannelID); err != nil {
		if errors.Is(err, transport.ErrChannelNotFound) {
			return []string{channelMissingReply}, nil
		}

		return nil, fmt.Errorf("failed to resolve channel %d: %w", link.ChannelID, err)
	}

	msg, err := s.resolver.FetchMessage(ctx, link.ChannelID, link.MessageID)
	if err != nil {
		if errors.Is(err, transport.ErrMessageNotFound) {
			return []string{messageMissingReply}, nil
		}

		return nil, fmt.Errorf("failed to fetch message %d: %w", link.MessageID, err)
	}

	s.report.Link = link
	s.report.Reported = report.User{ID: msg.AuthorID, Name: msg.AuthorName}
	s.report.Content = msg.Content
	s.state = StateConfirmMessage

	return foundMessage(msg.AuthorName, msg.Content), nil
}

func (s *Session) handleConfirm(token Token, isToken bool) []string {
	if !isToken || !slices.Contains(yesNo, token) {
		return []string{yesNoReply}
	}

	if token == TokenNo {
		s.report.Link = report.Link{}
		s.report.Reported = report.User{}
		s.report.Content = ""
		s.state = StateAwaitingMessageLink

		return []string{rejectedReply}
	}

	s.state = StateCategorySelection

	return []string{confirmedReply, categoryPrompt}
}

func (s *Session) handleChoice(index int) []string {
	switch s.state {
	case StateCategorySelection:
		switch enum.AbuseKindValues()[index] {
		case enum.AbuseKindSpam:
			return s.classify(report.Spam{})
		case enum.AbuseKindHarassment:
			return s.classify(report.Harassment{})
		case enum.AbuseKindOffensiveContent:
			s.state = StateOffensiveSubcategory
			return []string{offensivePrompt}
		case enum.AbuseKindThreat:
			s.state = StateThreatSubcategory
			return []string{threatPrompt}
		}

	case StateOffensiveSubcategory:
		kind := enum.OffensiveKindValues()[index]
		if kind == enum.OffensiveKindExtremist {
			s.state = StateExtremistSubcategory
			return []string{extremistPrompt}
		}

		c, _ := report.NewOffensive(kind)
		if kind == enum.OffensiveKindViolent {
			return s.classify(c, violentAdvisory)
		}

		return s.classify(c)

	case StateExtremistSubcategory:
		kind := enum.ExtremistKindValues()[index]
		c, _ := report.NewExtremist(kind)

		switch kind {
		case enum.ExtremistKindViolence:
			return s.classify(c, extremistViolenceAdvisory)
		case enum.ExtremistKindRecruitment:
			return s.classify(c, recruitmentAdvisory)
		case enum.ExtremistKindPropaganda:
			return s.classify(c, propagandaAdvisory)
		}

	case StateThreatSubcategory:
		c, _ := report.NewThreat(enum.ThreatKindValues()[index])
		return s.classify(c, threatAdvisory)

	case StateStart, StateAwaitingMessageLink, StateConfirmMessage, StateAdditionalCommentPrompt,
		StateAdditionalCommentsCapture, StateBlockUserPrompt, StateComplete:
	}

	return []string{invalidChoiceReply(menus[s.state])}
}

// classify stores the final classification and moves on to the comment prompt.
func (s *Session) classify(c report.Classification, advisories ...string) []string {
	s.report.Classification = c
	s.state = StateAdditionalCommentPrompt

	return append(advisories, commentPrompt)
}

func (s *Session) handleCommentPrompt(token Token, isToken bool) []string {
	if !isToken || !slices.Contains(yesNo, token) {
		return []string{yesNoReply}
	}

	if token == TokenYes {
		s.state = StateAdditionalCommentsCapture
		return []string{capturePrompt}
	}

	s.state = StateBlockUserPrompt

	return []string{blockPrompt(s.report.Reported.Name)}
}

func (s *Session) handleBlock(token Token, isToken bool) []string {
	if !isToken || !slices.Contains(yesNo, token) {
		return []string{yesNoReply}
	}

	s.state = StateComplete

	if token == TokenYes {
		s.report.BlockRequested = true
		return []string{blockAck(s.report.Reported.Name), completeReply}
	}

	return []string{completeReply}
}

// prompt returns the question the current state is waiting on.
func (s *Session) prompt() string {
	switch s.state {
	case StateAwaitingMessageLink:
		return linkPrompt
	case StateConfirmMessage:
		return confirmPrompt
	case StateCategorySelection:
		return categoryPrompt
	case StateOffensiveSubcategory:
		return offensivePrompt
	case StateExtremistSubcategory:
		return extremistPrompt
	case StateThreatSubcategory:
		return threatPrompt
	case StateAdditionalCommentPrompt:
		return commentPrompt
	case StateAdditionalCommentsCapture:
		return capturePrompt
	case StateBlockUserPrompt:
		return blockPrompt(s.report.Reported.Name)
	case StateStart, StateComplete:
	}

	return startPrompt
}

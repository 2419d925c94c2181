package intake

import (
	"strings"

	"golang.org/x/text/cases"
)

// State is a step of the intake conversation.
//
//go:generate go tool enumer -type=State -trimprefix=State
type State int

const (
	// StateStart waits for the first message of the conversation.
	StateStart State = iota
	// StateAwaitingMessageLink waits for a link to the reported message.
	StateAwaitingMessageLink
	// StateConfirmMessage asks whether the resolved message is the right one.
	StateConfirmMessage
	// StateCategorySelection asks for one of the four abuse categories.
	StateCategorySelection
	// StateOffensiveSubcategory asks for the kind of offensive content.
	StateOffensiveSubcategory
	// StateExtremistSubcategory asks for the kind of extremist content.
	StateExtremistSubcategory
	// StateThreatSubcategory asks who is being threatened.
	StateThreatSubcategory
	// StateAdditionalCommentPrompt asks whether the reporter has comments.
	StateAdditionalCommentPrompt
	// StateAdditionalCommentsCapture takes the next message verbatim as the comment.
	StateAdditionalCommentsCapture
	// StateBlockUserPrompt asks whether the reported user should be blocked.
	StateBlockUserPrompt
	// StateComplete is terminal.
	StateComplete
)

// Token is a recognised reply keyword.
//
//go:generate go tool enumer -type=Token -trimprefix=Token -transform=lower
type Token int

const (
	TokenCancel Token = iota
	TokenHelp
	TokenYes
	TokenNo
	Token1
	Token2
	Token3
	Token4
	Token5
)

var (
	yesNo = []Token{TokenYes, TokenNo}

	// menus lists the numbered choices offered in each menu state.
	menus = map[State][]Token{
		StateCategorySelection:    {Token1, Token2, Token3, Token4},
		StateOffensiveSubcategory: {Token1, Token2, Token3, Token4, Token5},
		StateExtremistSubcategory: {Token1, Token2, Token3},
		StateThreatSubcategory:    {Token1, Token2, Token3, Token4},
	}
)

// ParseToken folds the text and matches it against the known keywords.
func ParseToken(text string) (Token, bool) {
	folded := cases.Fold().String(strings.TrimSpace(text))

	token, err := TokenString(folded)
	if err != nil {
		return 0, false
	}

	return token, true
}

// ValidInputs returns the keywords a state accepts. States that take free
// text (the first message, the message link and the comment) only list the
// keywords they intercept before reading the text.
func ValidInputs(state State) []Token {
	switch state {
	case StateStart, StateComplete:
		return nil
	case StateAdditionalCommentsCapture:
		return []Token{TokenCancel}
	case StateAwaitingMessageLink:
		return []Token{TokenCancel, TokenHelp}
	case StateConfirmMessage, StateAdditionalCommentPrompt, StateBlockUserPrompt:
		return append([]Token{TokenCancel, TokenHelp}, yesNo...)
	case StateCategorySelection, StateOffensiveSubcategory, StateExtremistSubcategory, StateThreatSubcategory:
		return append([]Token{TokenCancel, TokenHelp}, menus[state]...)
	}

	return nil
}

// choice returns the zero-based menu index of a numbered token.
func choice(token Token) int {
	return int(token - Token1)
}

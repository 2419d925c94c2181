package intake

import (
	"fmt"
	"strings"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

const (
	startPrompt = "Thank you for starting the reporting process. " +
		"Say `help` at any time for more information.\n\n" +
		"Please copy paste the link to the message you want to report.\n" +
		"You can obtain this link by right-clicking the message and clicking `Copy Message Link`."

	badLinkReply      = "I'm sorry, I couldn't read that link. Please try again or say `cancel` to cancel."
	guildMissingReply = "I cannot accept reports of messages from guilds that I'm not in. " +
		"Please have the guild owner add me to the guild and try again."
	channelMissingReply = "It seems this channel was deleted or never existed. Please try again or say `cancel` to cancel."
	messageMissingReply = "It seems this message was deleted or never existed. Please try again or say `cancel` to cancel."

	linkPrompt     = "Please copy paste the link to the message you want to report."
	confirmPrompt  = "Is this the message you want to report? (yes/no)"
	yesNoReply     = "Please respond appropriately (ONLY yes or no)."
	rejectedReply  = "I'm sorry, I couldn't find the message you mentioned. Could you please verify the link and send it again?"
	confirmedReply = "Thank you for confirming! Please answer a few questions so that we can better assist you."

	commentPrompt = "Would you like to provide additional comments or include any direct messages? (yes/no)"
	capturePrompt = "Please type your comments in a single message. They will be attached to your report as written."

	cancelledReply = "Report cancelled."
	completeReply  = "Thank you for your report. Our moderation team will review it and take the appropriate action."

	helpLine = "You are filing a report. Answer the question below, or say `cancel` to stop without filing anything."
)

// Advisory lines attached to specific classifications.
const (
	violentAdvisory = "Please avoid sharing violent or graphic content further while our team reviews it."

	extremistViolenceAdvisory = "Content inciting violence is reviewed ahead of other reports."
	recruitmentAdvisory       = "Recruitment into extremist groups is taken seriously. " +
		"If you believe someone is being drawn into a violent group, please also contact your local law enforcement."
	propagandaAdvisory = "Thank you for flagging extremist propaganda. Our team will review it for removal."

	threatAdvisory = "If you or anyone else is in immediate danger, please contact your local law enforcement."
)

var (
	categoryPrompt = menu(
		"Please select a reason for reporting this user (Enter the corresponding number):",
		enum.AbuseKindValues(), report.AbuseName)
	offensivePrompt = menu(
		"Please select the type of offensive content (Enter the corresponding number):",
		enum.OffensiveKindValues(), report.OffensiveName)
	extremistPrompt = menu(
		"Please select the type of extremist content (Enter the corresponding number):",
		enum.ExtremistKindValues(), report.ExtremistName)
	threatPrompt = menu(
		"Please select who is being threatened (Enter the corresponding number):",
		enum.ThreatKindValues(), report.ThreatName)
)

func menu[T any](title string, values []T, name func(T) string) string {
	var b strings.Builder

	b.WriteString(title)

	for i, v := range values {
		fmt.Fprintf(&b, "\n%d. %s", i+1, name(v))
	}

	return b.String()
}

func invalidChoiceReply(options []Token) string {
	numbers := make([]string, len(options))
	for i, token := range options {
		numbers[i] = token.String()
	}

	return "Please enter only a valid number (" + strings.Join(numbers, ", ") + ")"
}

func foundMessage(author, content string) []string {
	return []string{"I found this message:", "\n" + author + ": " + content + "\n", confirmPrompt}
}

func blockPrompt(reported string) string {
	return fmt.Sprintf("Would you like to block %s so you no longer see their messages? (yes/no)", reported)
}

func blockAck(reported string) string {
	return fmt.Sprintf("%s will be blocked for you once a moderator has reviewed your report.", reported)
}

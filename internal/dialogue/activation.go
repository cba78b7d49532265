package dialogue

import (
	"regexp"
	"strings"

	"github.com/pudimbot/pudim-go/internal/stringutil"
)

var leadingSeparatorsRe = regexp.MustCompile(`^[,.\s]+`)

// IsBotActivation reports whether the utterance calls the bot by name:
// the name spoken alone, at the start, or anywhere as a whole word
// (including set off by a comma). The name inside another word does not
// activate, so "pudimzinho" stays quiet for a bot named "pudim".
func (m *Manager) IsBotActivation(text string) bool {
	return stringutil.ContainsWord(text, m.botName)
}

// CleanBotName strips the bot name from the start of the utterance along
// with any trailing comma or period, leaving the command that follows.
// Text not starting with the name is returned trimmed but otherwise
// unchanged.
func (m *Manager) CleanBotName(text string) string {
	trimmed := strings.TrimSpace(text)
	nameLower := strings.ToLower(m.botName)
	if strings.HasPrefix(strings.ToLower(trimmed), nameLower) {
		rest := trimmed[len(m.botName):]
		return strings.TrimSpace(leadingSeparatorsRe.ReplaceAllString(rest, ""))
	}
	return trimmed
}

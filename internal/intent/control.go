package intent

import (
	"github.com/pudimbot/pudim-go/internal/stringutil"
)

// Control vocabularies. Pause words suspend the session; stop words end
// it. The generic list gates the control rule as a whole.
var (
	controlWords = []string{"parar", "pausar", "sair", "desligar", "pare", "stop"}
	pauseWords   = []string{"parar", "pausar", "pare"}
	stopWords    = []string{"sair", "desligar", "stop", "tchau"}
	stopPhrases  = []string{"até logo"}
)

// IsControlCommand reports whether text carries any control word.
func IsControlCommand(text string) bool {
	return stringutil.ContainsAnyWord(text, controlWords...)
}

// IsPauseCommand reports whether text asks the session to pause.
func IsPauseCommand(text string) bool {
	return stringutil.ContainsAnyWord(text, pauseWords...)
}

// IsStopCommand reports whether text asks the session to end.
func IsStopCommand(text string) bool {
	return stringutil.ContainsAnyWord(text, stopWords...) ||
		stringutil.ContainsAnyPhrase(text, stopPhrases...)
}

package bot

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pudimbot/pudim-go/internal/dialogue"
)

var interactiveQuitWords = []string{"sair", "exit", "quit", "tchau"}

// RunInteractive runs the text conversation loop: read a line, answer it,
// repeat until EOF or a quit word. A farewell is printed on the way out.
func (b *Bot) RunInteractive(r io.Reader, w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n", b.sessionGreeting())

	scanner := bufio.NewScanner(r)
	for {
		_, _ = fmt.Fprintf(w, "%s: ", b.cfg.UserName)
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if slices.Contains(interactiveQuitWords, strings.ToLower(text)) {
			break
		}

		_, _ = fmt.Fprintf(w, "%s\n", b.QuickResponse(text))
	}

	_, _ = fmt.Fprintf(w, "%s\n", b.dialogue.RandomResponse(dialogue.CategoryFarewell))
}

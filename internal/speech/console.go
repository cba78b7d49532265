package speech

import (
	"fmt"
	"io"
	"os"
)

// ConsoleOutput prints responses to a writer instead of speaking them.
// Used by interactive mode and as the voice fallback.
type ConsoleOutput struct {
	W      io.Writer
	Prefix string
}

// NewConsoleOutput creates a ConsoleOutput on stdout with a bot prefix.
func NewConsoleOutput(prefix string) *ConsoleOutput {
	return &ConsoleOutput{W: os.Stdout, Prefix: prefix}
}

func (c *ConsoleOutput) Speak(text string) {
	if text == "" {
		return
	}
	_, _ = fmt.Fprintf(c.W, "%s%s\n", c.Prefix, text)
}

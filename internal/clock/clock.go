// Package clock answers date and time questions in Portuguese and picks
// the time-of-day greeting. The current time is injectable for tests.
package clock

import (
	"fmt"
	"time"

	"github.com/pudimbot/pudim-go/internal/stringutil"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthNames = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

var (
	timeQuestionKeywords = []string{
		"hora", "horas", "data", "dia", "hoje",
		"agora", "atual", "quando",
	}
	timeQuestionPhrases = []string{"que dia", "que hora"}

	hourKeywords = []string{"hora", "horas"}
	dateKeywords = []string{"data", "dia", "hoje"}
)

// Clock provides the current moment. Now defaults to time.Now.
type Clock struct {
	Now func() time.Time
}

// New creates a Clock backed by the system time.
func New() *Clock {
	return &Clock{Now: time.Now}
}

// CurrentTime returns the current time as "HH:MM".
func (c *Clock) CurrentTime() string {
	return c.Now().Format("15:04")
}

// CurrentDate returns the current date as a Portuguese sentence fragment,
// e.g. "segunda-feira, 1 de setembro de 2026".
func (c *Clock) CurrentDate() string {
	now := c.Now()
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdayNames[now.Weekday()], now.Day(), monthNames[now.Month()], now.Year())
}

// Greeting returns the time-of-day greeting: "Bom dia" from 05 to 11,
// "Boa tarde" from 12 to 17, "Boa noite" otherwise.
func (c *Clock) Greeting() string {
	hour := c.Now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Bom dia"
	case hour >= 12 && hour < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

// IsTimeQuestion reports whether text asks about the date or time.
func IsTimeQuestion(text string) bool {
	return stringutil.ContainsAnyWord(text, timeQuestionKeywords...) ||
		stringutil.ContainsAnyPhrase(text, timeQuestionPhrases...)
}

// FormatTimeResponse answers a date/time question, choosing between the
// hour, the date, or both depending on what was asked.
func (c *Clock) FormatTimeResponse(text string) string {
	switch {
	case stringutil.ContainsAnyWord(text, hourKeywords...):
		return fmt.Sprintf("Agora são %s.", c.CurrentTime())
	case stringutil.ContainsAnyWord(text, dateKeywords...):
		return fmt.Sprintf("Hoje é %s.", c.CurrentDate())
	default:
		return fmt.Sprintf("Agora são %s de %s.", c.CurrentTime(), c.CurrentDate())
	}
}

// Package intent classifies utterances with an ordered predicate cascade.
// The first rule whose predicate matches wins; rule order is the precedence
// policy, so registration order matters.
package intent

// Intent is the category of response behavior an utterance triggers.
type Intent string

const (
	IntentSocial            Intent = "social"
	IntentTime              Intent = "time"
	IntentWeather           Intent = "weather"
	IntentControl           Intent = "control"
	IntentScheduleTime      Intent = "schedule_time"
	IntentScheduleProfessor Intent = "schedule_professor"
	IntentScheduleRoom      Intent = "schedule_room"
	IntentGenericSearch     Intent = "generic_search"
	IntentUnknown           Intent = "unknown"
)

// Rule pairs a predicate with its handler. Handle produces the response
// for an utterance the predicate claimed; it may return ok=false to pass
// the utterance on to later rules (used by the fallback search, which only
// claims utterances it actually finds something for).
type Rule struct {
	Intent Intent
	Match  func(text string) bool
	Handle func(text string) (response string, ok bool)
}

// Classifier evaluates rules in registration order.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over the given ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the intent of the first matching rule without running
// its handler. Rules whose handlers can decline are still classified by
// their predicate alone.
func (c *Classifier) Classify(text string) Intent {
	for _, r := range c.rules {
		if r.Match(text) {
			return r.Intent
		}
	}
	return IntentUnknown
}

// Respond walks the cascade and returns the first produced response with
// the intent that produced it. A matching rule whose handler declines
// passes control to the rules after it.
func (c *Classifier) Respond(text string) (Intent, string, bool) {
	for _, r := range c.rules {
		if !r.Match(text) {
			continue
		}
		if response, ok := r.Handle(text); ok {
			return r.Intent, response, true
		}
	}
	return IntentUnknown, "", false
}

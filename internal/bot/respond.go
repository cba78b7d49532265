package bot

import (
	"context"
	"strings"

	"github.com/pudimbot/pudim-go/internal/clock"
	"github.com/pudimbot/pudim-go/internal/dialogue"
	apperrors "github.com/pudimbot/pudim-go/internal/errors"
	"github.com/pudimbot/pudim-go/internal/intent"
	"github.com/pudimbot/pudim-go/internal/schedule"
	"github.com/pudimbot/pudim-go/internal/session"
	"github.com/pudimbot/pudim-go/internal/textnorm"
	"github.com/pudimbot/pudim-go/internal/weather"
)

// Pause and fallthrough acknowledgements.
const (
	pauseAck          = "Ok, vou pausar. Me chame pelo nome quando quiser que eu volte."
	unknownControlAck = "Comando não reconhecido."
	scheduleDataError = "Desculpe, encontrei um problema nos dados de horário."
)

// buildCascade wires the ordered intent rules. The order is the precedence
// policy: social (farewell excluded, handled by control), time, weather,
// control, the three schedule lookups, then the fallback search, which may
// decline and let the caller produce an unknown response.
func (b *Bot) buildCascade() []intent.Rule {
	return []intent.Rule{
		{
			Intent: intent.IntentSocial,
			Match: func(text string) bool {
				return dialogue.IsSocialInteraction(text) && !dialogue.IsFarewell(text)
			},
			Handle: func(text string) (string, bool) {
				return b.dialogue.HandleSocial(text, false), true
			},
		},
		{
			Intent: intent.IntentTime,
			Match:  clock.IsTimeQuestion,
			Handle: func(text string) (string, bool) {
				return b.clock.FormatTimeResponse(text), true
			},
		},
		{
			Intent: intent.IntentWeather,
			Match:  weather.IsWeatherQuestion,
			Handle: func(text string) (string, bool) {
				ctx, cancel := context.WithTimeout(context.Background(), b.cfg.WeatherTimeout)
				defer cancel()
				cond, err := b.weather.CurrentConditions(ctx)
				if err != nil {
					b.log.WithError(err).Warn("weather provider failed")
					return "Desculpe, não consegui obter informações sobre o clima no momento.", true
				}
				return weather.FormatResponse(cond), true
			},
		},
		{
			Intent: intent.IntentControl,
			Match: func(text string) bool {
				return intent.IsControlCommand(text) || dialogue.IsFarewell(text)
			},
			Handle: b.handleControl,
		},
		{
			Intent: intent.IntentScheduleTime,
			Match:  schedule.IsTimeQuestion,
			Handle: func(text string) (string, bool) {
				return b.answerSchedule(text, b.answerer.AnswerTime), true
			},
		},
		{
			Intent: intent.IntentScheduleProfessor,
			Match:  schedule.IsProfessorQuestion,
			Handle: func(text string) (string, bool) {
				return b.answerSchedule(text, b.answerer.AnswerProfessor), true
			},
		},
		{
			Intent: intent.IntentScheduleRoom,
			Match:  schedule.IsRoomQuestion,
			Handle: func(text string) (string, bool) {
				return b.answerSchedule(text, b.answerer.AnswerRoom), true
			},
		},
		{
			Intent: intent.IntentGenericSearch,
			Match:  func(text string) bool { return true },
			Handle: func(text string) (string, bool) {
				result := b.searchIdx.Search(textnorm.Normalize(strings.ToLower(text)))
				b.metrics.RecordResolution("search", result.Found)
				return result.Text, result.Found
			},
		},
	}
}

// answerSchedule normalizes the raw question and runs one of the three
// schedule answerers. Data-integrity faults are logged and rendered as an
// apology; the raw error never reaches the user.
func (b *Bot) answerSchedule(text string, answer func(string) (string, error)) string {
	question := textnorm.Normalize(strings.ToLower(text))
	response, err := answer(question)
	if err != nil {
		wrapped := apperrors.NewWrapper("schedule", "answer").Wrap(err, scheduleDataError)
		b.log.WithError(wrapped).Error("schedule answer failed")
		return scheduleDataError
	}

	miss := strings.HasPrefix(response, "⚠️")
	b.metrics.RecordResolution("schedule", !miss)
	return response
}

// handleControl reacts to pause and stop vocabulary. Stop ends the running
// session, whose farewell hook speaks exactly once; without a session the
// farewell is returned directly.
func (b *Bot) handleControl(text string) (string, bool) {
	if intent.IsPauseCommand(text) {
		b.session.Pause()
		return pauseAck, true
	}

	if intent.IsStopCommand(text) || dialogue.IsFarewell(text) {
		if state := b.session.State(); state == session.StateActive || state == session.StatePaused {
			b.session.Deactivate()
			return "", true
		}
		return b.dialogue.RandomResponse(dialogue.CategoryFarewell), true
	}

	return unknownControlAck, true
}

// GenerateResponse classifies the utterance and produces its response.
// ok=false means no intent claimed the text; the caller supplies the
// unknown phrasing.
func (b *Bot) GenerateResponse(text string) (string, bool) {
	matched, response, ok := b.classifier.Respond(text)
	b.metrics.RecordIntent(string(matched))
	if !ok {
		return "", false
	}
	return response, true
}

// QuickResponse answers a single utterance without a session, falling
// back to a randomized unknown phrase.
func (b *Bot) QuickResponse(text string) string {
	if response, ok := b.GenerateResponse(text); ok && response != "" {
		return response
	}
	return b.dialogue.RandomResponse(dialogue.CategoryUnknown)
}

// ProcessInput handles one session utterance: activation by name is
// acknowledged and stripped, then the remainder goes through the cascade.
// Responses are spoken through the output collaborator.
func (b *Bot) ProcessInput(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	if b.dialogue.IsBotActivation(text) {
		b.output.Speak(b.dialogue.RandomResponse(dialogue.CategoryActivation))
		text = b.dialogue.CleanBotName(text)
		if text == "" {
			return
		}
	}

	response, ok := b.GenerateResponse(text)
	if !ok {
		b.output.Speak(b.dialogue.RandomResponse(dialogue.CategoryUnknown))
		return
	}
	if response != "" {
		b.output.Speak(response)
	}
}

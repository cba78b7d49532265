package bot

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pudimbot/pudim-go/internal/clock"
	"github.com/pudimbot/pudim-go/internal/config"
	"github.com/pudimbot/pudim-go/internal/dialogue"
	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/schedule"
	"github.com/pudimbot/pudim-go/internal/session"
	"github.com/pudimbot/pudim-go/internal/speech"
	"github.com/pudimbot/pudim-go/internal/storage"
	"github.com/pudimbot/pudim-go/internal/weather"
)

type fakeWeather struct{}

func (fakeWeather) CurrentConditions(ctx context.Context) (weather.Conditions, error) {
	return weather.Conditions{
		Location:    "Rio de Janeiro",
		TempC:       25,
		FeelsLikeC:  27,
		HumidityPct: 65,
		Description: "céu limpo",
	}, nil
}

type recordingOutput struct {
	mu     sync.Mutex
	spoken []string
}

func (r *recordingOutput) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spoken = append(r.spoken, text)
}

func (r *recordingOutput) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.spoken...)
}

func testBot(t *testing.T) (*Bot, *recordingOutput) {
	t.Helper()

	store := schedule.NewStore(
		[]storage.Course{{Code: "cc", FullName: "ciência da computação"}},
		map[string][]storage.ScheduleRow{
			"cc": {
				{CourseCode: "cc", Subject: "CÁLCULO 1", TimeRange: "08:00 - 10:00", Professor: "Ana", Room: "101"},
				{CourseCode: "cc", Subject: "ALGORITMOS", TimeRange: "14:00 - 16:00", Professor: "Carla", Room: "Lab 1"},
			},
		},
	)

	cfg := &config.Config{
		BotName:              "Pudim",
		UserName:             "Usuário",
		ConversationDuration: time.Second,
		PollInterval:         5 * time.Millisecond,
		PausedListenTimeout:  5 * time.Millisecond,
		WeatherTimeout:       time.Second,
	}

	output := &recordingOutput{}
	b, err := New(Options{
		Config:  cfg,
		Logger:  logger.NewWithWriter("error", io.Discard),
		Store:   store,
		Weather: fakeWeather{},
		Input:   speech.NoopInput{},
		Output:  output,
		Clock:   &clock.Clock{Now: func() time.Time { return time.Date(2026, time.September, 1, 14, 5, 0, 0, time.UTC) }},
	})
	require.NoError(t, err)
	return b, output
}

func TestQuickResponseSocial(t *testing.T) {
	b, _ := testBot(t)

	response := b.QuickResponse("oi, bom dia")
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryGreeting), response)
}

func TestFarewellBeatsGreeting(t *testing.T) {
	b, _ := testBot(t)

	// "oi, tchau" carries both a greeting and a farewell; the farewell
	// must win.
	response := b.QuickResponse("oi, tchau")
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryFarewell), response)
}

func TestQuickResponseTime(t *testing.T) {
	b, _ := testBot(t)

	assert.Equal(t, "Agora são 14:05.", b.QuickResponse("que horas são"))
}

func TestQuickResponseWeather(t *testing.T) {
	b, _ := testBot(t)

	response := b.QuickResponse("como está o clima")
	assert.Contains(t, response, "25°C")
	assert.Contains(t, response, "céu limpo")
}

func TestQuickResponseScheduleLookups(t *testing.T) {
	b, _ := testBot(t)

	response := b.QuickResponse("qual o horário da disciplina calculo 1 de ciencia da computacao")
	assert.Contains(t, response, "começa às 08:00 e termina às 10:00")

	response = b.QuickResponse("qual o professor da disciplina algoritmos de ciencia da computacao")
	assert.Contains(t, response, "Carla")

	response = b.QuickResponse("qual a sala da disciplina algoritmos de ciencia da computacao")
	assert.Contains(t, response, "Lab 1")
}

func TestQuickResponseScheduleCourseMiss(t *testing.T) {
	b, _ := testBot(t)

	response := b.QuickResponse("qual o horário da disciplina xyzxyz de wwwww")
	assert.Contains(t, response, "Curso não encontrado")
}

func TestQuickResponseUnknown(t *testing.T) {
	b, _ := testBot(t)

	response := b.QuickResponse("zzzz wwww qqqq")
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryUnknown), response)
}

func TestQuickResponseControlWithoutSession(t *testing.T) {
	b, _ := testBot(t)

	assert.Equal(t, pauseAck, b.QuickResponse("pare"))

	response := b.QuickResponse("desligar")
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryFarewell), response)
}

func TestProcessInputActivation(t *testing.T) {
	b, output := testBot(t)

	b.ProcessInput("Pudim, que horas são")

	spoken := output.all()
	require.Len(t, spoken, 2)
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryActivation), spoken[0])
	assert.Equal(t, "Agora são 14:05.", spoken[1])
}

func TestProcessInputActivationOnly(t *testing.T) {
	b, output := testBot(t)

	b.ProcessInput("Pudim")

	spoken := output.all()
	require.Len(t, spoken, 1, "bare activation speaks only the acknowledgement")
	assert.Contains(t, b.dialogue.Responses(dialogue.CategoryActivation), spoken[0])
}

func TestPauseCommandPausesSession(t *testing.T) {
	b, _ := testBot(t)

	require.True(t, b.ActivateConversationFor(time.Second))
	b.ProcessInput("pare")
	assert.Equal(t, session.StatePaused, b.session.State())

	b.DeactivateConversation()
	b.WaitConversation()
}

func TestStopCommandEndsSession(t *testing.T) {
	b, output := testBot(t)

	require.True(t, b.ActivateConversationFor(time.Second))
	b.ProcessInput("desligar")
	b.WaitConversation()

	assert.Equal(t, session.StateIdle, b.session.State())

	farewells := 0
	for _, s := range output.all() {
		for _, f := range b.dialogue.Responses(dialogue.CategoryFarewell) {
			if s == f {
				farewells++
			}
		}
	}
	assert.Equal(t, 1, farewells, "exactly one farewell on stop")
}

func TestRunInteractive(t *testing.T) {
	b, _ := testBot(t)

	input := strings.NewReader("que horas são\nsair\n")
	var out bytes.Buffer
	b.RunInteractive(input, &out)

	text := out.String()
	assert.Contains(t, text, "Boa tarde! Eu sou o Pudim.")
	assert.Contains(t, text, "Agora são 14:05.")
}

func TestStatus(t *testing.T) {
	b, _ := testBot(t)

	status := b.Status()
	assert.True(t, status.Initialized)
	assert.Equal(t, string(session.StateIdle), status.SessionState)
	assert.False(t, status.SpeechAvailable)
}

package dialogue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testManager() *Manager {
	return NewManagerWithRand("Pudim", "Usuário", rand.New(rand.NewSource(1)))
}

func TestSocialPredicates(t *testing.T) {
	tests := []struct {
		name string
		text string
		pred func(string) bool
		want bool
	}{
		{"Greeting oi", "oi, bom dia", IsGreeting, true},
		{"Oi not inside dois", "dois cafés por favor", IsGreeting, false},
		{"Farewell tchau", "tchau pessoal", IsFarewell, true},
		{"Farewell phrase", "até logo", IsFarewell, true},
		{"How are you", "como vai você", IsHowAreYou, true},
		{"How are you answer", "estou bem, obrigado", IsHowAreYouAnswer, true},
		{"Help request", "você pode me ajudar com isso", IsHelpRequest, true},
		{"Function question", "o que você sabe fazer", IsFunctionQuestion, true},
		{"Joke request", "me conta uma piada", IsJokeRequest, true},
		{"Positive feedback", "muito bom, parabéns", IsPositiveFeedback, true},
		{"Legal not inside ilegal", "isso é ilegal", IsPositiveFeedback, false},
		{"Negative feedback", "que resposta ruim", IsNegativeFeedback, true},
		{"Gratitude", "obrigado pela ajuda", IsGratitude, true},
		{"Not social", "qual o horário de cálculo", IsSocialInteraction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.text))
		})
	}
}

func TestHandleSocialFarewellPrecedence(t *testing.T) {
	m := testManager()

	// Greeting and farewell together must answer with a farewell.
	response := m.HandleSocial("oi, tchau", false)
	assert.Contains(t, m.Responses(CategoryFarewell), response)

	// Force flag wins even without farewell words.
	response = m.HandleSocial("oi", true)
	assert.Contains(t, m.Responses(CategoryFarewell), response)
}

func TestHandleSocialCategories(t *testing.T) {
	m := testManager()

	tests := []struct {
		text     string
		category Category
	}{
		{"olá, tudo certo por aqui", CategoryGreeting},
		{"como você está", CategoryHowAreYou},
		{"me ajude por favor", CategoryHelp},
		{"conte uma piada", CategoryJoke},
		{"valeu", CategoryGratitude},
	}

	for _, tt := range tests {
		response := m.HandleSocial(tt.text, false)
		assert.Contains(t, m.Responses(tt.category), response, "text %q", tt.text)
	}
}

func TestRandomResponse(t *testing.T) {
	m := testManager()

	seen := map[string]bool{}
	for range 50 {
		seen[m.RandomResponse(CategoryUnknown)] = true
	}
	assert.Greater(t, len(seen), 1, "selection should vary across calls")

	for r := range seen {
		assert.Contains(t, m.Responses(CategoryUnknown), r)
	}

	assert.Equal(t, defaultResponse, m.RandomResponse(Category("nope")))
}

func TestIsBotActivation(t *testing.T) {
	m := testManager()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"Exact", "pudim", true},
		{"Exact with case", "Pudim", true},
		{"At start", "pudim, que horas são", true},
		{"Mid sentence whole word", "ei pudim, volta", true},
		{"Inside another word", "adoro pudimzinho", false},
		{"Absent", "que horas são", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsBotActivation(tt.text))
		})
	}
}

func TestCleanBotName(t *testing.T) {
	m := testManager()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"Name with comma", "Pudim, que horas são", "que horas são"},
		{"Name with period", "pudim. me ajuda", "me ajuda"},
		{"Name alone", "pudim", ""},
		{"Name not at start untouched", "oi pudim", "oi pudim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CleanBotName(tt.text))
		})
	}
}

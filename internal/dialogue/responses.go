// Package dialogue handles social conversation: detecting greetings,
// farewells, feedback and the other chit-chat categories, and picking a
// randomized phrasing for each.
package dialogue

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Category identifies a social response group.
type Category string

const (
	CategoryGreeting         Category = "greeting"
	CategoryFarewell         Category = "farewell"
	CategoryHowAreYou        Category = "how_are_you"
	CategoryHowAreYouAnswer  Category = "how_are_you_answer"
	CategoryHelp             Category = "help"
	CategoryFunction         Category = "function"
	CategoryJoke             Category = "joke"
	CategoryPositiveFeedback Category = "positive_feedback"
	CategoryNegativeFeedback Category = "negative_feedback"
	CategoryGratitude        Category = "gratitude"
	CategoryActivation       Category = "activation"
	CategoryUnknown          Category = "unknown"
)

const defaultResponse = "Desculpe, não sei como responder a isso."

// Manager owns the response sets and the bot identity used to render them.
// Selection is uniform random over the matched category's list; inject a
// seeded source via NewManagerWithRand for deterministic tests.
type Manager struct {
	botName  string
	userName string

	mu  sync.Mutex
	rng *rand.Rand

	responses map[Category][]string
}

// NewManager creates a Manager seeded from the current time.
func NewManager(botName, userName string) *Manager {
	return NewManagerWithRand(botName, userName, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewManagerWithRand creates a Manager with the given random source.
func NewManagerWithRand(botName, userName string, rng *rand.Rand) *Manager {
	m := &Manager{
		botName:  botName,
		userName: userName,
		rng:      rng,
	}
	m.responses = map[Category][]string{
		CategoryGreeting: {
			fmt.Sprintf("Olá! Eu sou o %s. Como posso ajudar você hoje?", botName),
			fmt.Sprintf("Oi! %s aqui. No que posso ser útil?", botName),
			fmt.Sprintf("Olá, %s! Como está? Sou o %s, seu assistente virtual.", userName, botName),
			fmt.Sprintf("Ei! O %s está aqui para ajudar. O que você precisa?", botName),
			fmt.Sprintf("Oi! Prazer em falar com você. Eu sou o %s.", botName),
		},
		CategoryFarewell: {
			"Até logo! Foi um prazer conversar com você.",
			"Tchau! Estarei aqui quando precisar.",
			"Até mais! Tenha um ótimo dia!",
			"Até a próxima! Sempre que quiser conversar, é só chamar.",
			"Tchau! Cuide-se e volte sempre.",
		},
		CategoryHowAreYou: {
			"Estou bem, obrigado por perguntar! E você, como está?",
			"Ótimo! Sempre pronto para ajudar. Como você está se sentindo?",
			"Estou muito bem! Adoro conversar com você. E aí, como vai?",
			"Perfeito! Cada conversa me deixa mais feliz. E você?",
			"Estou excelente! Sempre animado para nossas conversas.",
		},
		CategoryHowAreYouAnswer: {
			"Fico feliz em ouvir isso! Estou aqui para ajudar.",
			"Que bom que você está bem! Estou sempre aqui para ajudar.",
			"Ótimo saber! Estou aqui para o que você precisar.",
			"Fico contente que esteja bem! Estou sempre à disposição.",
			"É sempre bom ouvir que você está bem! Estou aqui para ajudar.",
		},
		CategoryHelp: {
			"Claro! Me diga como posso ajudar.",
			"Estou aqui para isso! O que você precisa?",
			"Com certeza! O que posso fazer por você?",
			"Sempre! Estou aqui para ajudar. O que você precisa?",
			"É claro! Estou à disposição para ajudar com o que você precisar.",
		},
		CategoryFunction: {
			"Eu posso ajudar com informações sobre horários de aulas, clima atual, data e hora.",
			"Minhas funções incluem fornecer horários de aulas, informações meteorológicas, data e hora atual.",
			"Estou aqui para ajudar com consultas sobre horários acadêmicos, clima, data/hora.",
			"Posso te ajudar com informações sobre horários de aulas, clima atual, data e hora.",
			"Estou preparado para falar sobre horários, tempo, clima e responder suas perguntas.",
		},
		CategoryJoke: {
			"Por que o livro de matemática se suicidou? Porque tinha muitos problemas!",
			"O que o zero disse para o oito? Que cinto maneiro!",
			"Por que o computador foi ao médico? Porque estava com um vírus!",
			"O que o tomate falou para o outro? Não se preocupe, eu vou ketchup!",
			"Por que o pássaro não usa Facebook? Porque já tem Twitter!",
			"Por que o computador foi preso? Porque executou muitos comandos suspeitos.",
		},
		CategoryPositiveFeedback: {
			"Obrigado! Fico feliz que tenha gostado!",
			"Agradeço o elogio! Estou aqui para ajudar.",
			"Fico contente que você tenha gostado! Estou sempre aqui para ajudar.",
			"Muito obrigado! Seu feedback é muito importante para mim.",
			"Agradeço! É sempre bom saber que estou ajudando.",
		},
		CategoryNegativeFeedback: {
			"Sinto muito que não tenha gostado. Estou sempre tentando melhorar.",
			"Desculpe por não ter atendido suas expectativas. Vou tentar melhorar.",
			"Lamento que minha resposta não tenha sido útil. Agradeço o feedback.",
			"Peço desculpas se não consegui ajudar. Estou sempre aprendendo.",
			"Sinto muito por não ter sido útil. Vou trabalhar para melhorar.",
		},
		CategoryGratitude: {
			"De nada! Estou aqui para ajudar sempre que precisar.",
			"Você é muito gentil! Fico feliz em poder ajudar.",
			"Não há de quê! Estou sempre à disposição.",
			"Agradeço! É sempre bom saber que estou ajudando.",
			"Fico feliz em ouvir isso! Estou aqui para ajudar sempre que precisar.",
		},
		CategoryActivation: {
			fmt.Sprintf("Oi! %s aqui! O que você precisa?", botName),
			"Presente! O que posso fazer por você?",
			"Aqui estou! Como posso ajudar?",
			fmt.Sprintf("Opa! %s à disposição!", botName),
			"Oi! Pode falar, estou ouvindo!",
		},
		CategoryUnknown: {
			"Hmm, não entendi muito bem. Pode reformular a pergunta?",
			"Desculpe, não compreendi. Pode explicar de outra forma?",
			"Não consegui entender. Pode tentar perguntar de modo diferente?",
			"Ops, essa eu não peguei. Pode repetir de outro jeito?",
			"Não entendi direito. Pode ser mais específico?",
		},
	}
	return m
}

// BotName returns the configured bot name.
func (m *Manager) BotName() string {
	return m.botName
}

// RandomResponse picks a uniformly random phrasing from the category's
// list. Unknown categories fall back to a fixed apology.
func (m *Manager) RandomResponse(category Category) string {
	candidates, ok := m.responses[category]
	if !ok || len(candidates) == 0 {
		return defaultResponse
	}

	m.mu.Lock()
	idx := m.rng.Intn(len(candidates))
	m.mu.Unlock()
	return candidates[idx]
}

// Responses returns the phrasing list for a category. Exposed for tests.
func (m *Manager) Responses(category Category) []string {
	return m.responses[category]
}

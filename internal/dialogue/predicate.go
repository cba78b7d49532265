package dialogue

import (
	"github.com/pudimbot/pudim-go/internal/stringutil"
)

// Social phrase lists. Matching is whole-token based so "oi" never fires
// inside "dois" and "legal" inside "ilegal" stays quiet.
var (
	greetingPhrases = []string{
		"oi", "olá", "ola", "ei", "hey", "bom dia", "boa tarde",
		"boa noite", "salve", "e aí", "eai", "hello",
	}

	farewellPhrases = []string{
		"tchau", "até logo", "até mais", "adeus", "bye", "até a próxima", "falou",
	}

	howAreYouPhrases = []string{
		"como está", "como vai", "como você está", "tudo bem",
		"tudo ok", "beleza", "como anda", "como tem passado", "como você tem estado",
	}

	howAreYouAnswerPhrases = []string{
		"estou bem", "tudo bem", "tudo ok", "estou ótimo", "estou legal",
		"estou feliz", "estou tranquilo", "estou de boa", "tudo certo",
		"tudo tranquilo", "tudo beleza", "tudo jóia", "tudo em paz", "tudo",
	}

	helpRequestPhrases = []string{
		"pode me ajudar", "poderia me ajudar", "me ajuda", "me ajude",
	}

	functionQuestionPhrases = []string{
		"o que você faz", "para que serve", "o que você pode fazer",
		"o que você sabe fazer", "quais são suas funções",
		"quais são suas habilidades", "o que você pode me ajudar",
	}

	jokeRequestPhrases = []string{
		"me conta uma piada", "conte uma piada", "faz uma piada",
		"conta uma piada", "me faz rir", "me faça rir", "eu quero rir",
	}

	positiveFeedbackPhrases = []string{
		"bom trabalho", "ótimo trabalho", "muito bom", "excelente",
		"parabéns", "legal", "show de bola", "incrível", "fantástico",
		"maravilhoso", "adorei", "gostei muito",
	}

	negativeFeedbackPhrases = []string{
		"ruim", "péssimo", "horrível", "não gostei", "não é bom",
		"decepcionante", "fraco", "lixo", "horrendo", "terrível",
		"não funciona", "não ajuda",
	}

	gratitudePhrases = []string{
		"obrigado", "obrigada", "valeu", "agradeço", "muito obrigado",
		"muito obrigada", "grato", "grata", "agradecido", "agradecida",
	}
)

// IsGreeting reports whether text contains a greeting.
func IsGreeting(text string) bool {
	return stringutil.ContainsAnyPhrase(text, greetingPhrases...)
}

// IsFarewell reports whether text contains a farewell. Farewells take
// precedence over every other social category.
func IsFarewell(text string) bool {
	return stringutil.ContainsAnyPhrase(text, farewellPhrases...)
}

// IsHowAreYou reports whether text asks how the bot is doing.
func IsHowAreYou(text string) bool {
	return stringutil.ContainsAnyPhrase(text, howAreYouPhrases...)
}

// IsHowAreYouAnswer reports whether text answers a how-are-you question.
func IsHowAreYouAnswer(text string) bool {
	return stringutil.ContainsAnyPhrase(text, howAreYouAnswerPhrases...)
}

// IsHelpRequest reports whether text asks for help.
func IsHelpRequest(text string) bool {
	return stringutil.ContainsAnyPhrase(text, helpRequestPhrases...)
}

// IsFunctionQuestion reports whether text asks what the bot can do.
func IsFunctionQuestion(text string) bool {
	return stringutil.ContainsAnyPhrase(text, functionQuestionPhrases...)
}

// IsJokeRequest reports whether text asks for a joke.
func IsJokeRequest(text string) bool {
	return stringutil.ContainsAnyPhrase(text, jokeRequestPhrases...)
}

// IsPositiveFeedback reports whether text compliments the bot.
func IsPositiveFeedback(text string) bool {
	return stringutil.ContainsAnyPhrase(text, positiveFeedbackPhrases...)
}

// IsNegativeFeedback reports whether text criticizes the bot.
func IsNegativeFeedback(text string) bool {
	return stringutil.ContainsAnyPhrase(text, negativeFeedbackPhrases...)
}

// IsGratitude reports whether text thanks the bot.
func IsGratitude(text string) bool {
	return stringutil.ContainsAnyPhrase(text, gratitudePhrases...)
}

// IsSocialInteraction reports whether any social sub-category matches.
func IsSocialInteraction(text string) bool {
	return IsGreeting(text) ||
		IsFarewell(text) ||
		IsHowAreYou(text) ||
		IsHowAreYouAnswer(text) ||
		IsHelpRequest(text) ||
		IsFunctionQuestion(text) ||
		IsJokeRequest(text) ||
		IsPositiveFeedback(text) ||
		IsNegativeFeedback(text) ||
		IsGratitude(text)
}

// HandleSocial picks the response for a social utterance. Farewell wins
// over every other sub-category; forceFarewell short-circuits detection,
// used when the session is ending for another reason.
func (m *Manager) HandleSocial(text string, forceFarewell bool) string {
	if IsFarewell(text) || forceFarewell {
		return m.RandomResponse(CategoryFarewell)
	}

	switch {
	case IsGreeting(text):
		return m.RandomResponse(CategoryGreeting)
	case IsHowAreYou(text):
		return m.RandomResponse(CategoryHowAreYou)
	case IsHowAreYouAnswer(text):
		return m.RandomResponse(CategoryHowAreYouAnswer)
	case IsHelpRequest(text):
		return m.RandomResponse(CategoryHelp)
	case IsFunctionQuestion(text):
		return m.RandomResponse(CategoryFunction)
	case IsJokeRequest(text):
		return m.RandomResponse(CategoryJoke)
	case IsPositiveFeedback(text):
		return m.RandomResponse(CategoryPositiveFeedback)
	case IsNegativeFeedback(text):
		return m.RandomResponse(CategoryNegativeFeedback)
	case IsGratitude(text):
		return m.RandomResponse(CategoryGratitude)
	default:
		return m.RandomResponse(CategoryUnknown)
	}
}

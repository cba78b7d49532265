package schedule

import (
	"github.com/pudimbot/pudim-go/internal/stringutil"
)

// Question phrase lists for the three schedule sub-intents. Matching is
// whole-token based, so "sala" never fires inside "salada". Checked in
// fixed order by the classifier: time, then professor, then room.
var (
	timeQuestionPhrases = []string{
		"horário", "horario",
		"qual o horário", "qual horário",
		"horário da aula", "horário da disciplina", "horário da matéria",
		"horário da turma", "horário do curso",
		"qual é o horário",
		"horário de aula", "horário de disciplina", "horário de matéria",
		"horário de turma", "horário de curso",
	}

	professorQuestionPhrases = []string{
		"professor de", "professor da", "professor do",
		"qual o professor", "qual é o professor",
		"qual professor", "que professor",
		"professor da aula", "professor da disciplina",
		"professor da matéria", "professor da turma",
	}

	roomQuestionPhrases = []string{
		"sala",
		"qual a sala", "qual é a sala", "qual sala", "que sala",
		"sala da aula", "sala da disciplina",
		"sala da matéria", "sala da turma",
	}
)

// IsTimeQuestion reports whether text asks for a class time.
func IsTimeQuestion(text string) bool {
	return stringutil.ContainsAnyPhrase(text, timeQuestionPhrases...)
}

// IsProfessorQuestion reports whether text asks who teaches a class.
func IsProfessorQuestion(text string) bool {
	return stringutil.ContainsAnyPhrase(text, professorQuestionPhrases...)
}

// IsRoomQuestion reports whether text asks where a class happens.
func IsRoomQuestion(text string) bool {
	return stringutil.ContainsAnyPhrase(text, roomQuestionPhrases...)
}

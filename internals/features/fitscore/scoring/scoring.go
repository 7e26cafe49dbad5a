// file: internals/features/fitscore/scoring/scoring.go
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	apperr "fitscore_backend/internals/errors"
)

// Answer: pasangan (questionId 1-10, value 0-10).
type Answer struct {
	QuestionID int `json:"questionId"`
	Value      int `json:"value"`
}

type Scores struct {
	PerfScore    int `json:"perfScore"`    // max 40 (4 questões × 10)
	EnergyScore  int `json:"energyScore"`  // max 30
	CultureScore int `json:"cultureScore"` // max 30
	TotalScore   int `json:"totalScore"`   // max 100
}

// Classification: 4 tingkat hasil, murni fungsi dari total score.
type Classification string

const (
	FitAltissimo    Classification = "Fit Altíssimo"
	FitAprovado     Classification = "Fit Aprovado"
	FitQuestionavel Classification = "Fit Questionável"
	ForaDoPerfil    Classification = "Fora do Perfil"
)

// AllClassifications, urut dari tier tertinggi.
var AllClassifications = []Classification{
	FitAltissimo, FitAprovado, FitQuestionavel, ForaDoPerfil,
}

// ParseClassification memvalidasi nilai filter dari query string.
func ParseClassification(s string) (Classification, bool) {
	for _, cl := range AllClassifications {
		if string(cl) == s {
			return cl, true
		}
	}
	return "", false
}

/* ===============================
   Parser & Validator
=================================*/

// ParseFormAnswers menormalkan map jawaban dari form (key string/angka)
// menjadi []Answer terurut by questionId.
// Gagal dengan ValidationError kalau: id tidak dikenal, nilai di luar 0-10,
// nilai bukan bilangan bulat, atau ada pertanyaan yang belum terjawab.
func ParseFormAnswers(formAnswers map[string]float64) ([]Answer, error) {
	answers := make([]Answer, 0, TotalQuestions)
	seen := make(map[int]bool, TotalQuestions)

	for key, raw := range formAnswers {
		id, err := strconv.Atoi(key)
		if err != nil || id < 1 || id > TotalQuestions {
			return nil, apperr.NewValidationError(
				fmt.Sprintf("Pergunta desconhecida: %q.", key),
				"Envie apenas respostas para as perguntas 1 a 10.",
			)
		}
		if seen[id] {
			return nil, apperr.NewValidationError(
				fmt.Sprintf("Resposta duplicada para a pergunta %d.", id),
				"Envie exatamente uma resposta por pergunta.",
			)
		}
		if raw != math.Trunc(raw) || raw < 0 || raw > 10 {
			return nil, apperr.NewValidationError(
				fmt.Sprintf("Resposta da pergunta %d deve ser um inteiro entre 0 e 10.", id),
				"Ajuste o valor e envie novamente.",
			)
		}
		seen[id] = true
		answers = append(answers, Answer{QuestionID: id, Value: int(raw)})
	}

	if len(answers) != TotalQuestions {
		return nil, apperr.NewValidationError(
			"Todas as perguntas devem ser respondidas.",
			"Responda as 10 perguntas do formulário.",
		)
	}

	sort.Slice(answers, func(i, j int) bool {
		return answers[i].QuestionID < answers[j].QuestionID
	})
	return answers, nil
}

/* ===============================
   Scoring Engine
=================================*/

// ComputeScores menjumlahkan nilai per kategori (soma, bukan média).
// Precondition: answers sudah lolos ParseFormAnswers.
func ComputeScores(answers []Answer) Scores {
	var perf, energy, culture int
	for _, a := range answers {
		switch {
		case a.QuestionID >= 1 && a.QuestionID <= 4:
			perf += a.Value
		case a.QuestionID >= 5 && a.QuestionID <= 7:
			energy += a.Value
		case a.QuestionID >= 8 && a.QuestionID <= 10:
			culture += a.Value
		}
	}
	return Scores{
		PerfScore:    perf,
		EnergyScore:  energy,
		CultureScore: culture,
		TotalScore:   perf + energy + culture,
	}
}

/* ===============================
   Classifier
=================================*/

// Classify: tabel threshold, dievaluasi dari tier tertinggi.
// Batas bawah inklusif: 80, 60, 40 masuk ke tier yang lebih tinggi.
func Classify(totalScore int) Classification {
	switch {
	case totalScore >= 80:
		return FitAltissimo
	case totalScore >= 60:
		return FitAprovado
	case totalScore >= 40:
		return FitQuestionavel
	default:
		return ForaDoPerfil
	}
}

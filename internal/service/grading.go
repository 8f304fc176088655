package service

import (
	"math"
	"sort"

	"quizcraft_backend/internal/model"
)

// EvaluateAnswer decides whether one submitted answer is correct for one
// question. It is total: any answer shape against any known question type
// yields a boolean, never an error, because submissions are untrusted and
// must not be able to crash grading.
//
// multiple-choice / true-false: exactly one submitted option equal to the
// single correct answer. select-all: the submitted set must equal the
// correct set exactly, with no partial credit; duplicate submissions inflate
// the length and fail the cardinality check. free-text: never auto-graded.
func EvaluateAnswer(q model.Question, submitted []string) bool {
	switch q.Type {
	case model.MultipleChoice, model.TrueFalse:
		if len(submitted) != 1 || len(q.CorrectAnswers) != 1 {
			return false
		}
		return submitted[0] != "" && submitted[0] == q.CorrectAnswers[0]

	case model.SelectAll:
		if len(submitted) == 0 || len(submitted) != len(q.CorrectAnswers) {
			return false
		}
		correct := make(map[string]bool, len(q.CorrectAnswers))
		for _, c := range q.CorrectAnswers {
			correct[c] = true
		}
		seen := make(map[string]bool, len(submitted))
		for _, s := range submitted {
			if !correct[s] {
				return false
			}
			seen[s] = true
		}
		return len(seen) == len(correct)

	default:
		// free-text and unknown types are never auto-graded correct
		return false
	}
}

type QuestionScore struct {
	QuestionID string `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
}

type ScoreBreakdown struct {
	PerQuestion   []QuestionScore `json:"perQuestion"`
	TotalScore    int             `json:"totalScore"`
	TotalPossible int             `json:"totalPossible"`
}

// ScoreAnswers grades one participant's answer set against a test's
// questions. Questions are walked in OrderIndex order so the breakdown is
// deterministic no matter how the answers map iterates; a question missing
// from the map counts as an empty (and therefore incorrect) submission.
// The function is pure, so re-grading the same inputs always reproduces the
// same result.
func ScoreAnswers(questions []model.Question, answers map[string]model.AnswerValue) ScoreBreakdown {
	ordered := make([]model.Question, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	breakdown := ScoreBreakdown{
		PerQuestion: make([]QuestionScore, 0, len(ordered)),
	}

	for _, q := range ordered {
		isCorrect := EvaluateAnswer(q, answers[q.ID])

		breakdown.TotalPossible += q.Points
		if isCorrect {
			breakdown.TotalScore += q.Points
		}
		breakdown.PerQuestion = append(breakdown.PerQuestion, QuestionScore{
			QuestionID: q.ID,
			IsCorrect:  isCorrect,
		})
	}

	return breakdown
}

// Percentage converts an achieved/possible point pair to a rounded percent,
// 0 when nothing was possible.
func Percentage(score, totalPossible int) int {
	if totalPossible <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalPossible) * 100))
}

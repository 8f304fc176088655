package service

import (
	"reflect"
	"testing"

	"quizcraft_backend/internal/model"
)

func mcQuestion(id, correct string, points, order int) model.Question {
	q := model.Question{
		Type:           model.MultipleChoice,
		Options:        model.StringList{"A", "B", "C", "D"},
		CorrectAnswers: model.StringList{correct},
		Points:         points,
		OrderIndex:     order,
	}
	q.ID = id
	return q
}

func selectAllQuestion(id string, correct []string, points, order int) model.Question {
	q := model.Question{
		Type:           model.SelectAll,
		Options:        model.StringList{"W", "X", "Y", "Z"},
		CorrectAnswers: model.StringList(correct),
		Points:         points,
		OrderIndex:     order,
	}
	q.ID = id
	return q
}

func TestEvaluateAnswerSingleChoice(t *testing.T) {
	q := mcQuestion("q1", "B", 1, 1)

	cases := []struct {
		name      string
		submitted []string
		want      bool
	}{
		{"exact match", []string{"B"}, true},
		{"wrong option", []string{"A"}, false},
		{"empty string", []string{""}, false},
		{"no answer", nil, false},
		{"two answers", []string{"B", "A"}, false},
		{"case sensitive", []string{"b"}, false},
	}
	for _, c := range cases {
		if got := EvaluateAnswer(q, c.submitted); got != c.want {
			t.Fatalf("%s: EvaluateAnswer=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestEvaluateAnswerTrueFalse(t *testing.T) {
	q := model.Question{
		Type:           model.TrueFalse,
		Options:        model.StringList{"True", "False"},
		CorrectAnswers: model.StringList{"True"},
		Points:         1,
	}
	q.ID = "tf1"

	if !EvaluateAnswer(q, []string{"True"}) {
		t.Fatal("matching true-false answer should be correct")
	}
	if EvaluateAnswer(q, []string{"False"}) {
		t.Fatal("non-matching true-false answer should be incorrect")
	}
}

func TestEvaluateAnswerSelectAll(t *testing.T) {
	q := selectAllQuestion("sa1", []string{"X", "Y"}, 2, 1)

	cases := []struct {
		name      string
		submitted []string
		want      bool
	}{
		{"exact set", []string{"X", "Y"}, true},
		{"order independent", []string{"Y", "X"}, true},
		{"strict subset", []string{"X"}, false},
		{"superset", []string{"X", "Y", "Z"}, false},
		{"disjoint", []string{"W", "Z"}, false},
		{"empty", nil, false},
		{"duplicate correct option", []string{"X", "X"}, false},
	}
	for _, c := range cases {
		if got := EvaluateAnswer(q, c.submitted); got != c.want {
			t.Fatalf("%s: EvaluateAnswer=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestEvaluateAnswerFreeText(t *testing.T) {
	q := model.Question{Type: model.FreeText, Points: 3}
	q.ID = "ft1"

	if EvaluateAnswer(q, []string{"any prose at all"}) {
		t.Fatal("free-text answers must never auto-grade correct")
	}
	if EvaluateAnswer(q, nil) {
		t.Fatal("blank free-text answer must not be correct")
	}
}

func TestEvaluateAnswerUnknownType(t *testing.T) {
	q := model.Question{Type: "matching", CorrectAnswers: model.StringList{"A"}}
	q.ID = "m1"

	if EvaluateAnswer(q, []string{"A"}) {
		t.Fatal("unknown question types must grade incorrect, not panic or match")
	}
}

func TestScoreAnswersMixedTest(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 1, 1),
		selectAllQuestion("q2", []string{"X", "Y"}, 2, 2),
	}

	breakdown := ScoreAnswers(questions, map[string]model.AnswerValue{
		"q1": {"A"},
		"q2": {"Y", "X"},
	})

	if breakdown.TotalScore != 3 || breakdown.TotalPossible != 3 {
		t.Fatalf("got %d/%d, want 3/3", breakdown.TotalScore, breakdown.TotalPossible)
	}
	for _, pq := range breakdown.PerQuestion {
		if !pq.IsCorrect {
			t.Fatalf("question %s should be correct", pq.QuestionID)
		}
	}

	breakdown = ScoreAnswers(questions, map[string]model.AnswerValue{
		"q1": {"B"},
		"q2": {"X"},
	})

	if breakdown.TotalScore != 0 {
		t.Fatalf("got score %d, want 0", breakdown.TotalScore)
	}
	want := []QuestionScore{
		{QuestionID: "q1", IsCorrect: false},
		{QuestionID: "q2", IsCorrect: false},
	}
	if !reflect.DeepEqual(breakdown.PerQuestion, want) {
		t.Fatalf("per-question breakdown = %+v, want %+v", breakdown.PerQuestion, want)
	}
}

func TestScoreAnswersMissingAnswersCountAsBlank(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 1, 1),
		mcQuestion("q2", "B", 5, 2),
	}

	breakdown := ScoreAnswers(questions, map[string]model.AnswerValue{"q2": {"B"}})

	if breakdown.TotalScore != 5 {
		t.Fatalf("got score %d, want 5", breakdown.TotalScore)
	}
	if len(breakdown.PerQuestion) != 2 {
		t.Fatalf("every question must appear in the breakdown, got %d entries", len(breakdown.PerQuestion))
	}
	if breakdown.PerQuestion[0].IsCorrect {
		t.Fatal("unanswered question must be incorrect")
	}
}

func TestScoreAnswersFollowsOrderIndex(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q3", "A", 1, 3),
		mcQuestion("q1", "A", 1, 1),
		mcQuestion("q2", "A", 1, 2),
	}

	breakdown := ScoreAnswers(questions, nil)

	gotOrder := []string{}
	for _, pq := range breakdown.PerQuestion {
		gotOrder = append(gotOrder, pq.QuestionID)
	}
	if !reflect.DeepEqual(gotOrder, []string{"q1", "q2", "q3"}) {
		t.Fatalf("breakdown order = %v, want q1 q2 q3", gotOrder)
	}
}

func TestScoreAnswersEmptyTest(t *testing.T) {
	breakdown := ScoreAnswers(nil, map[string]model.AnswerValue{"ghost": {"A"}})

	if breakdown.TotalScore != 0 || breakdown.TotalPossible != 0 {
		t.Fatalf("got %d/%d, want 0/0", breakdown.TotalScore, breakdown.TotalPossible)
	}
	if len(breakdown.PerQuestion) != 0 {
		t.Fatalf("empty test must yield empty breakdown, got %d entries", len(breakdown.PerQuestion))
	}
}

func TestScoreAnswersDeterministic(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 2, 1),
		selectAllQuestion("q2", []string{"X", "Z"}, 3, 2),
		mcQuestion("q3", "C", 1, 3),
	}
	answers := map[string]model.AnswerValue{
		"q1": {"A"},
		"q2": {"Z", "X"},
		"q3": {"D"},
	}

	first := ScoreAnswers(questions, answers)
	for i := 0; i < 20; i++ {
		if got := ScoreAnswers(questions, answers); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}

	if first.TotalScore > first.TotalPossible {
		t.Fatalf("score %d exceeds possible %d", first.TotalScore, first.TotalPossible)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 200, 1},
	}
	for _, c := range cases {
		if got := Percentage(c.score, c.total); got != c.want {
			t.Fatalf("Percentage(%d,%d)=%d, want %d", c.score, c.total, got, c.want)
		}
	}
}

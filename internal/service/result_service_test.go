package service

import (
	"errors"
	"testing"
	"time"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

type fakeTestSource struct {
	test *model.Test
}

func (f *fakeTestSource) FindByID(id string) (*model.Test, error) {
	if f.test == nil || f.test.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.test, nil
}

func publishedTest(id string, passScore int) *model.Test {
	tst := &model.Test{
		Title:     "Midterm",
		Status:    model.TestPublished,
		PassScore: passScore,
	}
	tst.ID = id
	return tst
}

func completedParticipant(id, testID string, startedAt, completedAt time.Time, responses []model.Response) *model.Participant {
	p := openParticipant(id, testID)
	p.CreatedAt = startedAt
	p.CompletedAt = &completedAt
	p.Responses = responses
	return p
}

func TestFormatResultComputesMetadata(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 1, 1),
		selectAllQuestion("q2", []string{"X", "Y"}, 2, 2),
	}
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	finished := started.Add(12*time.Minute + 40*time.Second)

	p := completedParticipant("p1", "t1", started, finished, []model.Response{
		{QuestionID: "q1", Answer: model.StringList{"A"}, IsCorrect: true},
		{QuestionID: "q2", Answer: model.StringList{"X"}, IsCorrect: false},
	})

	result, err := FormatResult(publishedTest("t1", 50), questions, p)
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	if result.Score != 1 || result.TotalPoints != 3 {
		t.Fatalf("got %d/%d, want 1/3", result.Score, result.TotalPoints)
	}
	if result.Metadata.Percentage != 33 {
		t.Fatalf("percentage = %d, want 33", result.Metadata.Percentage)
	}
	if result.Metadata.Passed {
		t.Fatal("33% must not pass a 50% threshold")
	}
	if result.Metadata.CorrectAnswers != 1 || result.Metadata.QuestionsCount != 2 {
		t.Fatalf("metadata counts = %+v", result.Metadata)
	}
	if result.Metadata.TimeTakenMinutes != 13 {
		t.Fatalf("timeTaken = %d, want 13 (12m40s rounds up)", result.Metadata.TimeTakenMinutes)
	}
	if !result.CompletedAt.Equal(finished) {
		t.Fatalf("completedAt = %v, want %v", result.CompletedAt, finished)
	}
}

func TestFormatResultPassBoundaryIsInclusive(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 1, 1),
		mcQuestion("q2", "B", 1, 2),
	}
	now := time.Now()
	p := completedParticipant("p1", "t1", now.Add(-time.Minute), now, []model.Response{
		{QuestionID: "q1", Answer: model.StringList{"A"}, IsCorrect: true},
		{QuestionID: "q2", Answer: model.StringList{"C"}, IsCorrect: false},
	})

	result, err := FormatResult(publishedTest("t1", 50), questions, p)
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}
	if result.Metadata.Percentage != 50 || !result.Metadata.Passed {
		t.Fatalf("exactly the pass score must pass, got %d%% passed=%v",
			result.Metadata.Percentage, result.Metadata.Passed)
	}
}

func TestFormatResultZeroQuestionTest(t *testing.T) {
	now := time.Now()
	p := completedParticipant("p1", "t1", now.Add(-time.Minute), now, nil)

	result, err := FormatResult(publishedTest("t1", 50), nil, p)
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}
	if result.Metadata.Percentage != 0 {
		t.Fatalf("zero-question percentage = %d, want 0", result.Metadata.Percentage)
	}
	if result.Metadata.Passed {
		t.Fatal("a 0% result must not pass a positive threshold")
	}
}

func TestFormatResultOpenAttempt(t *testing.T) {
	p := openParticipant("p1", "t1")

	_, err := FormatResult(publishedTest("t1", 50), nil, p)
	if !errors.Is(err, util.ErrResultNotReady) {
		t.Fatalf("err = %v, want ErrResultNotReady", err)
	}
}

func TestFormatResultFillsUnansweredQuestions(t *testing.T) {
	questions := []model.Question{
		mcQuestion("q1", "A", 1, 1),
		mcQuestion("q2", "B", 1, 2),
	}
	now := time.Now()
	p := completedParticipant("p1", "t1", now.Add(-time.Minute), now, []model.Response{
		{QuestionID: "q1", Answer: model.StringList{"A"}, IsCorrect: true},
	})

	result, err := FormatResult(publishedTest("t1", 50), questions, p)
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}
	if len(result.Responses) != 2 {
		t.Fatalf("got %d response details, want one per question", len(result.Responses))
	}
	missing := result.Responses[1]
	if missing.QuestionID != "q2" || missing.IsCorrect || len(missing.Answer) != 0 {
		t.Fatalf("unanswered detail = %+v", missing)
	}
	if missing.Answer == nil {
		t.Fatal("answer must serialize as an empty array, not null")
	}
}

func TestGetResultErrors(t *testing.T) {
	p := openParticipant("p1", "t1")
	done := time.Now()
	p.CompletedAt = &done

	svc := NewResultService(
		&fakeTestSource{test: publishedTest("t1", 50)},
		&fakeQuestionSource{},
		&fakeParticipantStore{participant: p},
	)

	if _, err := svc.GetResult("missing", "p1"); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("err = %v, want ErrTestNotFound", err)
	}
	if _, err := svc.GetResult("t1", "missing"); !errors.Is(err, util.ErrParticipantNotFound) {
		t.Fatalf("err = %v, want ErrParticipantNotFound", err)
	}
	if _, err := svc.GetResult("t1", "p1"); err != nil {
		t.Fatalf("GetResult: %v", err)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

type fakeQuestionSource struct {
	questions []model.Question
	err       error
}

func (f *fakeQuestionSource) ListByTest(testID string) ([]model.Question, error) {
	return f.questions, f.err
}

type fakeParticipantStore struct {
	participant *model.Participant
	findErr     error

	finalizeErr    error
	finalizedID    string
	finalizedAt    time.Time
	savedResponses []model.Response
}

func (f *fakeParticipantStore) FindByIDAndTest(id, testID string) (*model.Participant, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.participant == nil || f.participant.ID != id || f.participant.TestID != testID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.participant, nil
}

func (f *fakeParticipantStore) FinalizeSubmission(participantID string, completedAt time.Time, responses []model.Response) error {
	if f.finalizeErr != nil {
		return f.finalizeErr
	}
	f.finalizedID = participantID
	f.finalizedAt = completedAt
	f.savedResponses = responses
	return nil
}

func openParticipant(id, testID string) *model.Participant {
	p := &model.Participant{TestID: testID, Email: id + "@example.com"}
	p.ID = id
	return p
}

func TestSubmitGradesAndFinalizes(t *testing.T) {
	questions := &fakeQuestionSource{questions: []model.Question{
		mcQuestion("q1", "A", 1, 1),
		selectAllQuestion("q2", []string{"X", "Y"}, 2, 2),
		mcQuestion("q3", "C", 1, 3),
	}}
	store := &fakeParticipantStore{participant: openParticipant("p1", "t1")}
	svc := NewGradingService(questions, store)

	result, err := svc.Submit("t1", "p1", map[string]model.AnswerValue{
		"q1": {"A"},
		"q2": {"Y", "X"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Score != 3 || result.TotalPoints != 4 {
		t.Fatalf("got %d/%d, want 3/4", result.Score, result.TotalPoints)
	}
	if result.ResultID != "p1" {
		t.Fatalf("resultId = %q, want participant id", result.ResultID)
	}
	if store.finalizedID != "p1" {
		t.Fatalf("finalized participant = %q, want p1", store.finalizedID)
	}
	if len(store.savedResponses) != 3 {
		t.Fatalf("saved %d responses, want one per question including blanks", len(store.savedResponses))
	}

	// the unanswered question still gets a row, blank and incorrect
	blank := store.savedResponses[2]
	if blank.QuestionID != "q3" || blank.IsCorrect || len(blank.Answer) != 0 {
		t.Fatalf("blank response row = %+v", blank)
	}
	for _, r := range store.savedResponses {
		if r.ParticipantID != "p1" {
			t.Fatalf("response bound to %q, want p1", r.ParticipantID)
		}
		if !r.SubmittedAt.Equal(store.finalizedAt) {
			t.Fatal("response timestamps must match the completion timestamp")
		}
	}
}

func TestSubmitRejectsCompletedAttempt(t *testing.T) {
	done := time.Now()
	p := openParticipant("p1", "t1")
	p.CompletedAt = &done

	svc := NewGradingService(&fakeQuestionSource{}, &fakeParticipantStore{participant: p})

	_, err := svc.Submit("t1", "p1", nil)
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmitPropagatesFinalizeRace(t *testing.T) {
	store := &fakeParticipantStore{
		participant: openParticipant("p1", "t1"),
		finalizeErr: util.ErrAlreadySubmitted,
	}
	svc := NewGradingService(&fakeQuestionSource{questions: []model.Question{mcQuestion("q1", "A", 1, 1)}}, store)

	_, err := svc.Submit("t1", "p1", map[string]model.AnswerValue{"q1": {"A"}})
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted from the finalize step", err)
	}
}

func TestSubmitUnknownParticipant(t *testing.T) {
	svc := NewGradingService(&fakeQuestionSource{}, &fakeParticipantStore{participant: openParticipant("p1", "t1")})

	_, err := svc.Submit("t1", "nobody", nil)
	if !errors.Is(err, util.ErrParticipantNotFound) {
		t.Fatalf("err = %v, want ErrParticipantNotFound", err)
	}

	// participant exists but belongs to a different test
	_, err = svc.Submit("other-test", "p1", nil)
	if !errors.Is(err, util.ErrParticipantNotFound) {
		t.Fatalf("err = %v, want ErrParticipantNotFound for wrong test", err)
	}
}

func TestSubmitEmptyTestCompletes(t *testing.T) {
	store := &fakeParticipantStore{participant: openParticipant("p1", "t1")}
	svc := NewGradingService(&fakeQuestionSource{}, store)

	result, err := svc.Submit("t1", "p1", nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 0 || result.TotalPoints != 0 {
		t.Fatalf("got %d/%d, want 0/0", result.Score, result.TotalPoints)
	}
	if store.finalizedID != "p1" {
		t.Fatal("empty test must still finalize the attempt")
	}
	if len(store.savedResponses) != 0 {
		t.Fatalf("saved %d responses, want none", len(store.savedResponses))
	}
}

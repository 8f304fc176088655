package service

import (
	"errors"
	"time"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionSource yields a test's question set in grading order.
type QuestionSource interface {
	ListByTest(testID string) ([]model.Question, error)
}

// ParticipantStore is the slice of persistence the grading engine needs:
// attempt lookup plus the atomic finalize step (claim completed_at, write
// response rows).
type ParticipantStore interface {
	FindByIDAndTest(id, testID string) (*model.Participant, error)
	FinalizeSubmission(participantID string, completedAt time.Time, responses []model.Response) error
}

type GradingService struct {
	Questions    QuestionSource
	Participants ParticipantStore
}

func NewGradingService(questions QuestionSource, participants ParticipantStore) *GradingService {
	return &GradingService{Questions: questions, Participants: participants}
}

// ScoreResult is the payload returned to a participant right after grading.
// swagger:model ScoreResult
type ScoreResult struct {
	ResultID    string          `json:"resultId"`
	Score       int             `json:"score"`
	TotalPoints int             `json:"totalPoints"`
	PerQuestion []QuestionScore `json:"perQuestion"`
	CompletedAt time.Time       `json:"completedAt"`
}

// Submit grades one participant's submission and finalizes the attempt.
//
// Every question of the snapshot gets a response row, answered or not, so a
// set completed_at always implies a complete response set. The completion
// claim and the response writes happen in one transactional unit; a
// duplicate or racing submission gets util.ErrAlreadySubmitted and leaves
// no rows behind. A test with zero questions still completes, with a 0/0
// score.
func (s *GradingService) Submit(testID, participantID string, answers map[string]model.AnswerValue) (*ScoreResult, error) {
	participant, err := s.Participants.FindByIDAndTest(participantID, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrParticipantNotFound
		}
		return nil, err
	}
	if participant.CompletedAt != nil {
		return nil, util.ErrAlreadySubmitted
	}

	questions, err := s.Questions.ListByTest(testID)
	if err != nil {
		return nil, err
	}

	breakdown := ScoreAnswers(questions, answers)

	now := time.Now()
	responses := make([]model.Response, len(breakdown.PerQuestion))
	for i, pq := range breakdown.PerQuestion {
		answer := answers[pq.QuestionID]
		if answer == nil {
			answer = model.AnswerValue{}
		}
		responses[i] = model.Response{
			ParticipantID: participantID,
			QuestionID:    pq.QuestionID,
			Answer:        model.StringList(answer),
			IsCorrect:     pq.IsCorrect,
			SubmittedAt:   now,
		}
	}

	if err := s.Participants.FinalizeSubmission(participantID, now, responses); err != nil {
		return nil, err
	}

	return &ScoreResult{
		ResultID:    participantID,
		Score:       breakdown.TotalScore,
		TotalPoints: breakdown.TotalPossible,
		PerQuestion: breakdown.PerQuestion,
		CompletedAt: now,
	}, nil
}

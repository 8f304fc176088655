package service

import (
	"errors"
	"math"
	"time"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

// TestSource looks a test up by id.
type TestSource interface {
	FindByID(id string) (*model.Test, error)
}

type ResultService struct {
	Tests        TestSource
	Questions    QuestionSource
	Participants ParticipantStore
}

func NewResultService(tests TestSource, questions QuestionSource, participants ParticipantStore) *ResultService {
	return &ResultService{Tests: tests, Questions: questions, Participants: participants}
}

type ResponseDetail struct {
	QuestionID     string             `json:"questionId"`
	Prompt         string             `json:"question"`
	Type           model.QuestionType `json:"type"`
	Options        []string           `json:"options"`
	CorrectAnswers []string           `json:"correctAnswers"`
	Points         int                `json:"points"`
	Answer         []string           `json:"answer"`
	IsCorrect      bool               `json:"isCorrect"`
}

type ResultMetadata struct {
	TimeTakenMinutes int       `json:"timeTaken"`
	CompletionDate   time.Time `json:"completionDate"`
	Percentage       int       `json:"percentage"`
	QuestionsCount   int       `json:"questionsCount"`
	CorrectAnswers   int       `json:"correctAnswers"`
	Passed           bool      `json:"passed"`
}

// swagger:model FormattedResult
type FormattedResult struct {
	TestID      string           `json:"testId"`
	TestTitle   string           `json:"testTitle"`
	Description string           `json:"description"`
	ResultID    string           `json:"resultId"`
	Score       int              `json:"score"`
	TotalPoints int              `json:"totalPoints"`
	Responses   []ResponseDetail `json:"responses"`
	CompletedAt time.Time        `json:"completedAt"`
	Metadata    ResultMetadata   `json:"metadata"`
}

// FormatResult derives the finalized result view from stored responses and
// the test's current question snapshot. The score is recomputed from the
// response rows rather than read from a cached total, so a partially
// recovered attempt still reports a consistent number.
func FormatResult(test *model.Test, questions []model.Question, participant *model.Participant) (*FormattedResult, error) {
	if participant.CompletedAt == nil {
		return nil, util.ErrResultNotReady
	}

	byQuestion := make(map[string]model.Response, len(participant.Responses))
	for _, resp := range participant.Responses {
		byQuestion[resp.QuestionID] = resp
	}

	score := 0
	totalPoints := 0
	correctCount := 0
	details := make([]ResponseDetail, 0, len(questions))

	for _, q := range questions {
		totalPoints += q.Points
		resp, answered := byQuestion[q.ID]
		if answered && resp.IsCorrect {
			score += q.Points
			correctCount++
		}

		detail := ResponseDetail{
			QuestionID:     q.ID,
			Prompt:         q.Prompt,
			Type:           q.Type,
			Options:        q.Options,
			CorrectAnswers: q.CorrectAnswers,
			Points:         q.Points,
			Answer:         []string{},
			IsCorrect:      answered && resp.IsCorrect,
		}
		if answered {
			detail.Answer = resp.Answer
		}
		details = append(details, detail)
	}

	percentage := Percentage(score, totalPoints)
	elapsed := participant.CompletedAt.Sub(participant.CreatedAt)

	return &FormattedResult{
		TestID:      test.ID,
		TestTitle:   test.Title,
		Description: test.Description,
		ResultID:    participant.ID,
		Score:       score,
		TotalPoints: totalPoints,
		Responses:   details,
		CompletedAt: *participant.CompletedAt,
		Metadata: ResultMetadata{
			TimeTakenMinutes: int(math.Round(elapsed.Minutes())),
			CompletionDate:   *participant.CompletedAt,
			Percentage:       percentage,
			QuestionsCount:   len(questions),
			CorrectAnswers:   correctCount,
			Passed:           percentage >= test.PassScore,
		},
	}, nil
}

// GetResult returns the finalized result for one participant of a test.
// util.ErrResultNotReady distinguishes "still in progress" from a missing
// attempt.
func (s *ResultService) GetResult(testID, participantID string) (*FormattedResult, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	participant, err := s.Participants.FindByIDAndTest(participantID, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrParticipantNotFound
		}
		return nil, err
	}

	questions, err := s.Questions.ListByTest(testID)
	if err != nil {
		return nil, err
	}

	return FormatResult(test, questions, participant)
}

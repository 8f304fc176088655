package service

import (
	"errors"
	"fmt"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/repository"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

type TestService struct {
	Tests     *repository.TestRepository
	Questions *repository.QuestionRepository
}

func NewTestService(tests *repository.TestRepository, questions *repository.QuestionRepository) *TestService {
	return &TestService{Tests: tests, Questions: questions}
}

type TestSettingsReq struct {
	AuthMode         model.AuthMode        `json:"authMode" binding:"required,oneof=freeForAll registrationRequired exclusiveParticipants"`
	ShowResults      model.ShowResultsMode `json:"showResults" binding:"required,oneof=immediate adminOnly both"`
	TimeLimit        *int                  `json:"timeLimit"`
	AllowRetakes     bool                  `json:"allowRetakes"`
	ShuffleQuestions bool                  `json:"shuffleQuestions"`
}

type TestReq struct {
	Title       string           `json:"title" binding:"required,max=200"`
	Description string           `json:"description" binding:"max=1000"`
	PassScore   int              `json:"passScore" binding:"min=0,max=100"`
	Status      model.TestStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
	Settings    TestSettingsReq  `json:"settings" binding:"required"`
}

func (s *TestService) CreateTest(creatorID uint, req TestReq) (*model.Test, error) {
	status := req.Status
	if status == "" {
		status = model.TestDraft
	}

	test := &model.Test{
		Title:            req.Title,
		Description:      req.Description,
		TestCode:         util.GenerateTestCode(),
		CreatorID:        creatorID,
		Status:           status,
		AuthMode:         req.Settings.AuthMode,
		ShowResults:      req.Settings.ShowResults,
		PassScore:        req.PassScore,
		AllowRetakes:     req.Settings.AllowRetakes,
		ShuffleQuestions: req.Settings.ShuffleQuestions,
	}
	if req.Settings.TimeLimit != nil {
		test.TimeLimit = *req.Settings.TimeLimit
	}

	if err := s.Tests.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) UpdateTest(creatorID uint, testID string, req TestReq) (*model.Test, error) {
	test, err := s.Tests.FindByIDAndCreator(testID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	test.Title = req.Title
	test.Description = req.Description
	test.PassScore = req.PassScore
	if req.Status != "" {
		test.Status = req.Status
	}
	test.AuthMode = req.Settings.AuthMode
	test.ShowResults = req.Settings.ShowResults
	test.AllowRetakes = req.Settings.AllowRetakes
	test.ShuffleQuestions = req.Settings.ShuffleQuestions
	if req.Settings.TimeLimit != nil {
		test.TimeLimit = *req.Settings.TimeLimit
	}

	if err := s.Tests.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) DeleteTest(creatorID uint, testID string) error {
	if _, err := s.Tests.FindByIDAndCreator(testID, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTestNotFound
		}
		return err
	}
	return s.Tests.Delete(testID)
}

func (s *TestService) GetTest(creatorID uint, testID string) (*model.Test, []model.Question, error) {
	test, err := s.Tests.FindByIDAndCreator(testID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrTestNotFound
		}
		return nil, nil, err
	}
	qs, err := s.Questions.ListByTest(testID)
	return test, qs, err
}

func (s *TestService) ListTests(creatorID uint, page, limit int) ([]repository.TestListRow, int64, error) {
	return s.Tests.ListByCreator(creatorID, page, limit)
}

type QuestionReq struct {
	Type           model.QuestionType `json:"type" binding:"required,oneof=multiple-choice true-false select-all free-text"`
	Prompt         string             `json:"question" binding:"required,max=500"`
	Options        []string           `json:"options"`
	CorrectAnswers []string           `json:"correctAnswers"`
	Points         int                `json:"points" binding:"required,min=1,max=100"`
	TimeLimit      *int               `json:"timeLimit"`
}

// validateQuestion enforces the per-type answer-key invariants before a
// question set is accepted.
func validateQuestion(idx int, q QuestionReq) error {
	inOptions := func(answer string) bool {
		for _, opt := range q.Options {
			if opt == answer {
				return true
			}
		}
		return false
	}

	switch q.Type {
	case model.MultipleChoice, model.TrueFalse:
		if len(q.CorrectAnswers) != 1 {
			return fmt.Errorf("question %d: %s requires exactly one correct answer", idx+1, q.Type)
		}
		if !inOptions(q.CorrectAnswers[0]) {
			return fmt.Errorf("question %d: correct answer must be one of the options", idx+1)
		}
	case model.SelectAll:
		if len(q.CorrectAnswers) == 0 {
			return fmt.Errorf("question %d: select-all requires at least one correct answer", idx+1)
		}
		for _, ans := range q.CorrectAnswers {
			if !inOptions(ans) {
				return fmt.Errorf("question %d: correct answer %q must be one of the options", idx+1, ans)
			}
		}
	case model.FreeText:
		// no answer key; graded manually, never auto-correct
	}
	return nil
}

// SaveQuestions replaces the whole question set of a test. Order indexes are
// assigned 1-based from payload order.
func (s *TestService) SaveQuestions(creatorID uint, testID string, reqs []QuestionReq) error {
	if _, err := s.Tests.FindByIDAndCreator(testID, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTestNotFound
		}
		return err
	}

	questions := make([]model.Question, len(reqs))
	for i, req := range reqs {
		if err := validateQuestion(i, req); err != nil {
			return err
		}
		questions[i] = model.Question{
			TestID:         testID,
			Type:           req.Type,
			Prompt:         req.Prompt,
			Options:        req.Options,
			CorrectAnswers: req.CorrectAnswers,
			Points:         req.Points,
			TimeLimit:      req.TimeLimit,
			OrderIndex:     i + 1,
		}
		if req.Type == model.FreeText {
			questions[i].Options = model.StringList{}
			questions[i].CorrectAnswers = model.StringList{}
		}
	}

	return s.Questions.ReplaceForTest(testID, questions)
}

// TakeQuestion is a question as shown to a participant: the answer key is
// stripped.
type TakeQuestion struct {
	ID         string             `json:"id"`
	Type       model.QuestionType `json:"type"`
	Prompt     string             `json:"question"`
	Options    []string           `json:"options"`
	Points     int                `json:"points"`
	TimeLimit  *int               `json:"timeLimit,omitempty"`
	OrderIndex int                `json:"orderIndex"`
}

type TakeTestView struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	AuthMode    model.AuthMode        `json:"authMode"`
	ShowResults model.ShowResultsMode `json:"showResults"`
	TimeLimit   int                   `json:"timeLimit"`
	PassScore   int                   `json:"passScore"`
	Questions   []TakeQuestion        `json:"questions"`
}

// ResolveTestCode maps a join code to the test it opens. Only published
// tests resolve; a draft or archived code behaves like an unknown one.
func (s *TestService) ResolveTestCode(code string) (*model.Test, error) {
	test, err := s.Tests.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if test.Status != model.TestPublished {
		return nil, util.ErrTestNotFound
	}
	return test, nil
}

// GetTakeTestView loads a published test for a participant.
func (s *TestService) GetTakeTestView(testID string) (*TakeTestView, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if test.Status != model.TestPublished {
		return nil, util.ErrTestNotAccessible
	}

	qs, err := s.Questions.ListByTest(testID)
	if err != nil {
		return nil, err
	}

	view := &TakeTestView{
		ID:          test.ID,
		Title:       test.Title,
		Description: test.Description,
		AuthMode:    test.AuthMode,
		ShowResults: test.ShowResults,
		TimeLimit:   test.TimeLimit,
		PassScore:   test.PassScore,
		Questions:   make([]TakeQuestion, len(qs)),
	}
	for i, q := range qs {
		view.Questions[i] = TakeQuestion{
			ID:         q.ID,
			Type:       q.Type,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Points:     q.Points,
			TimeLimit:  q.TimeLimit,
			OrderIndex: q.OrderIndex,
		}
	}
	return view, nil
}

package repository

import (
	"quizcraft_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) ListByTest(testID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("test_id = ?", testID).Order("order_index asc, created_at asc").Find(&qs).Error
	return qs, err
}

// ReplaceForTest swaps the whole question set of a test. The question set is
// saved in bulk; in-progress attempts grade against the snapshot their
// submission loads, so partial replacement is never visible.
func (r *QuestionRepository) ReplaceForTest(testID string, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

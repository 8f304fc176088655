package repository

import (
	"quizcraft_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) FindByID(id string) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, "id = ?", id).Error
	return &test, err
}

func (r *TestRepository) FindByCode(code string) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, "test_code = ?", code).Error
	return &test, err
}

func (r *TestRepository) FindByIDAndCreator(id string, creatorID uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, "id = ? AND creator_id = ?", id, creatorID).Error
	return &test, err
}

func (r *TestRepository) Update(test *model.Test) error {
	return r.DB.Save(test).Error
}

type TestListRow struct {
	model.Test
	QuestionCount    int `json:"questionCount"`
	ParticipantCount int `json:"participantCount"`
	CompletedCount   int `json:"completedCount"`
}

func (r *TestRepository) ListByCreator(creatorID uint, page, limit int) ([]TestListRow, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Test{}).Where("creator_id = ?", creatorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.DB.Table("tests t").
		Select("t.*, "+
			"(SELECT COUNT(*) FROM questions q WHERE q.test_id = t.id AND q.deleted_at IS NULL) as question_count, "+
			"(SELECT COUNT(*) FROM participants p WHERE p.test_id = t.id AND p.deleted_at IS NULL) as participant_count, "+
			"(SELECT COUNT(*) FROM participants p WHERE p.test_id = t.id AND p.deleted_at IS NULL AND p.completed_at IS NOT NULL) as completed_count").
		Where("t.creator_id = ? AND t.deleted_at IS NULL", creatorID)

	if limit > 0 {
		offset := (page - 1) * limit
		query = query.Offset(offset).Limit(limit)
	}

	var rows []TestListRow
	err := query.Order("t.created_at desc").Scan(&rows).Error
	return rows, total, err
}

// Delete removes a test with its questions, participants and responses in
// one transaction.
func (r *TestRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var participantIDs []string
		if err := tx.Model(&model.Participant{}).Where("test_id = ?", id).Pluck("id", &participantIDs).Error; err != nil {
			return err
		}
		if len(participantIDs) > 0 {
			if err := tx.Where("participant_id IN ?", participantIDs).Delete(&model.Response{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Test{}, "id = ?", id).Error
	})
}

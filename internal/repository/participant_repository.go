package repository

import (
	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type ParticipantRepository struct {
	DB *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

func (r *ParticipantRepository) Create(p *model.Participant) error {
	return r.DB.Create(p).Error
}

func (r *ParticipantRepository) FindByIDAndTest(id, testID string) (*model.Participant, error) {
	var p model.Participant
	err := r.DB.Preload("Responses").First(&p, "id = ? AND test_id = ?", id, testID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepository) FindByEmail(testID, email string) (*model.Participant, error) {
	var p model.Participant
	err := r.DB.First(&p, "test_id = ? AND email = ?", testID, email).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Invite creates the participant when the (test, email) pair is new and
// leaves an existing row untouched.
func (r *ParticipantRepository) Invite(testID, email, fullName string) (*model.Participant, error) {
	existing, err := r.FindByEmail(testID, email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	now := time.Now()
	p := &model.Participant{
		TestID:           testID,
		Email:            email,
		FullName:         fullName,
		Registered:       true,
		InvitationSentAt: &now,
	}
	if err := r.DB.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ParticipantRepository) ListByTest(testID string) ([]model.Participant, error) {
	var ps []model.Participant
	err := r.DB.Preload("Responses").Where("test_id = ?", testID).Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ParticipantRepository) ListCompletedWithResponses(testID string) ([]model.Participant, error) {
	var ps []model.Participant
	err := r.DB.Preload("Responses").
		Where("test_id = ? AND completed_at IS NOT NULL", testID).
		Order("completed_at desc").
		Find(&ps).Error
	return ps, err
}

// FinalizeSubmission claims the participant's completion slot and writes the
// graded response rows in one transaction. The claim is a compare-and-set on
// completed_at: whichever of two racing submissions updates the NULL column
// first wins, the other gets ErrAlreadySubmitted and nothing is written.
func (r *ParticipantRepository) FinalizeSubmission(participantID string, completedAt time.Time, responses []model.Response) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Participant{}).
			Where("id = ? AND completed_at IS NULL", participantID).
			Update("completed_at", completedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAlreadySubmitted
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
}

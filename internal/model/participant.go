package model

import "time"

// Participant is one attempt-holder for a test, unique by email within the
// test. CompletedAt is set exactly once, at submission, and never reset.
// swagger:model Participant
type Participant struct {
	UUIDBase
	TestID           string     `gorm:"type:varchar(36);uniqueIndex:idx_participants_test_email" json:"testId"`
	Email            string     `gorm:"size:255;uniqueIndex:idx_participants_test_email" json:"email"`
	FullName         string     `gorm:"size:200" json:"fullName,omitempty"`
	Registered       bool       `gorm:"default:false" json:"registered"`
	InvitationSentAt *time.Time `json:"invitationSentAt,omitempty"`
	CompletedAt      *time.Time `gorm:"index" json:"completedAt"`
	Responses        []Response `gorm:"foreignKey:ParticipantID" json:"responses,omitempty"`
}

func (Participant) TableName() string {
	return "participants"
}

// swagger:model Response
type Response struct {
	UUIDBase
	ParticipantID string     `gorm:"index;type:varchar(36)" json:"participantId"`
	QuestionID    string     `gorm:"index;type:varchar(36)" json:"questionId"`
	Answer        StringList `gorm:"type:json" json:"answer"`
	IsCorrect     bool       `gorm:"default:false" json:"isCorrect"`
	SubmittedAt   time.Time  `json:"submittedAt"`
}

func (Response) TableName() string {
	return "responses"
}

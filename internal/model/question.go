package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	SelectAll      QuestionType = "select-all"
	FreeText       QuestionType = "free-text"
)

// Question is a single gradable item of a test. For multiple-choice and
// true-false questions CorrectAnswers holds exactly one element drawn from
// Options; for select-all it is a non-empty subset of Options; free-text
// questions carry no answer key and are never auto-graded.
// swagger:model Question
type Question struct {
	UUIDBase
	TestID         string       `gorm:"index;type:varchar(36)" json:"testId"`
	Type           QuestionType `gorm:"size:30;not null" json:"type"`
	Prompt         string       `gorm:"type:text;not null" json:"question"`
	Options        StringList   `gorm:"type:json" json:"options"`
	CorrectAnswers StringList   `gorm:"type:json" json:"correctAnswers"`
	Points         int          `gorm:"default:1" json:"points"`
	TimeLimit      *int         `json:"timeLimit,omitempty"` // Seconds, per question
	OrderIndex     int          `gorm:"default:0" json:"orderIndex"`
}

func (Question) TableName() string {
	return "questions"
}

package model

import "time"

// Derived reporting types. These are recomputed on demand from the test's
// participant population and are never persisted.

// swagger:model TestStatistics
type TestStatistics struct {
	TotalAttempts      int              `json:"totalAttempts"`
	UniqueParticipants int              `json:"uniqueParticipants"`
	AverageScore       int              `json:"averageScore"` // Mean of per-participant percentages, rounded
	PassRate           int              `json:"passRate"`     // Percent of completed attempts at or above PassScore
	RecentActivity     int              `json:"recentActivity"`
	QuestionStats      []QuestionStats  `json:"questionStats"`
	Participants       []ParticipantRow `json:"participants"`
}

type QuestionStats struct {
	QuestionID     string       `json:"id"`
	Prompt         string       `json:"question"`
	Type           QuestionType `json:"type"`
	Order          int          `json:"order"` // 1-based display order
	TotalAnswers   int          `json:"totalAnswers"`
	CorrectAnswers int          `json:"correctAnswers"`
	AccuracyRate   int          `json:"accuracyRate"`
	Difficulty     string       `json:"difficulty"`
	Points         int          `json:"points"`
}

// ParticipantRow is the per-participant line of the admin statistics view.
type ParticipantRow struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Score       int        `json:"score"` // Percentage
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Status      string     `json:"status"` // passed or failed
}

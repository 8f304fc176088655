package model

type TestStatus string

const (
	TestDraft     TestStatus = "draft"
	TestPublished TestStatus = "published"
	TestArchived  TestStatus = "archived"
)

type AuthMode string

const (
	FreeForAll            AuthMode = "freeForAll"
	RegistrationRequired  AuthMode = "registrationRequired"
	ExclusiveParticipants AuthMode = "exclusiveParticipants"
)

type ShowResultsMode string

const (
	ShowResultsImmediate ShowResultsMode = "immediate"
	ShowResultsAdminOnly ShowResultsMode = "adminOnly"
	ShowResultsBoth      ShowResultsMode = "both"
)

// swagger:model Test
type Test struct {
	UUIDBase
	Title            string          `gorm:"size:200;not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	TestCode         string          `gorm:"size:16;uniqueIndex" json:"testCode"`
	CreatorID        uint            `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Status           TestStatus      `gorm:"size:20;default:'draft'" json:"status"`
	AuthMode         AuthMode        `gorm:"size:30;default:'freeForAll'" json:"authMode"`
	ShowResults      ShowResultsMode `gorm:"size:20;default:'immediate'" json:"showResults"`
	TimeLimit        int             `gorm:"default:0" json:"timeLimit"` // Minutes, 0 = unlimited
	PassScore        int             `gorm:"default:0" json:"passScore"` // Percentage threshold, inclusive
	AllowRetakes     bool            `gorm:"default:false" json:"allowRetakes"`
	ShuffleQuestions bool            `gorm:"default:false" json:"shuffleQuestions"`
}

func (Test) TableName() string {
	return "tests"
}

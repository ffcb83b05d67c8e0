package models

type SolutionModel struct {
	ID              uint   `gorm:"primaryKey"`
	ProblemID       uint   `gorm:"not null;index"`
	Title           string `gorm:"size:200;not null"`
	Steps           string `gorm:"type:text;not null"`
	ToolsNeeded     string `gorm:"size:255"`
	TimeRequired    string `gorm:"size:100"`
	SolutionType    string `gorm:"size:50"`
	DifficultyLevel int    `gorm:"not null;default:2"`
	Notes           string `gorm:"type:text"`
	CreatedBy       string `gorm:"size:100"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SolutionModel) TableName() string {
	return "solutions"
}

type RatingModel struct {
	ID         uint   `gorm:"primaryKey"`
	SolutionID uint   `gorm:"not null;index"`
	Score      int    `gorm:"not null"`
	Feedback   string `gorm:"type:text"`
	RatedBy    string `gorm:"size:100"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (RatingModel) TableName() string {
	return "solution_ratings"
}

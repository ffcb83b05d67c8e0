package models

type ProblemModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Model        string `gorm:"size:100;not null"`
	SerialNumber string `gorm:"size:100;not null"`
	ClientID     uint   `gorm:"not null;index"`
	ErrorCode    string `gorm:"size:50"`
	Component    string `gorm:"size:100"`
	InkType      string `gorm:"size:50"`
	SurfaceType  string `gorm:"size:50"`
	Priority     int    `gorm:"not null;default:2"`
	ImagePath    string `gorm:"size:255"`
	ReportedBy   string `gorm:"size:100"`
	FailureCause string `gorm:"size:100"`
	TechnicianID *uint  `gorm:"index"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ProblemModel) TableName() string {
	return "problems"
}

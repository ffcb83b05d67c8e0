package models

type TechnicianModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:200;not null"`
	Specialty          string `gorm:"size:100"`
	Contact            string `gorm:"size:100"`
	CertificationLevel int    `gorm:"not null;default:0"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TechnicianModel) TableName() string {
	return "technicians"
}

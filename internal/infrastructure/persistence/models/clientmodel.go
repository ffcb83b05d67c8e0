package models

type ClientModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:200;not null"`
	ContactPhone    string `gorm:"size:50;not null"`
	Email           string `gorm:"size:255"`
	Company         string `gorm:"size:200"`
	ServiceContract bool   `gorm:"not null;default:false"`
	Location        string `gorm:"size:200"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}

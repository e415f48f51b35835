package models

import "time"

type Student struct {
	ID       string `gorm:"primaryKey;column:id;size:36"`
	Code     string `gorm:"column:code;size:20;uniqueIndex"` // registration number
	FullName string `gorm:"column:full_name;size:140"`

	// ExternalID is the identifier the biometric/kiosk system reports
	// for this student. Stale or retired ids simply stop mapping.
	ExternalID string `gorm:"column:external_id;size:40;index"`

	Active bool `gorm:"column:active;not null"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Student) TableName() string {
	return "students"
}

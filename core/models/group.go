package models

import "time"

type StudentGroup struct {
	ID           string `gorm:"primaryKey;column:id;size:36"`
	Name         string `gorm:"column:name;size:140"`
	AcademicYear string `gorm:"column:academic_year;size:20"`
	Active       bool   `gorm:"column:active;not null"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (StudentGroup) TableName() string {
	return "student_groups"
}

type GroupMembership struct {
	ID        int32  `gorm:"primaryKey;column:id;autoIncrement"`
	GroupID   string `gorm:"column:group_id;size:36;index"`
	StudentID string `gorm:"column:student_id;size:36;index"`
	Active    bool   `gorm:"column:active;not null"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (GroupMembership) TableName() string {
	return "student_group_members"
}

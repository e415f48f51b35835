package models

import "time"

// CourseSchedule is a single scheduled class meeting. Owned by the
// scheduling subsystem; the sync engine only reads these rows.
type CourseSchedule struct {
	ID           string    `gorm:"primaryKey;column:id;size:36"`
	Course       string    `gorm:"column:course;size:140"`
	GroupID      string    `gorm:"column:group_id;size:36;index"`
	ScheduleDate time.Time `gorm:"column:schedule_date;type:date;index"`
	FromTime     string    `gorm:"column:from_time;size:8"` // HH:MM:SS
	ToTime       string    `gorm:"column:to_time;size:8"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (CourseSchedule) TableName() string {
	return "course_schedules"
}

package model

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	// StatusLeave is only ever written by manual correction flows; the
	// external feed never reports it.
	StatusLeave Status = "Leave"
)

// StudentAttendance is one student's status for one scheduled session.
// Rows are never deleted: a superseded row has Active flipped to false
// and is retained for history. For a given date at most one active row
// may exist per (student, schedule) pair.
type StudentAttendance struct {
	ID          string `gorm:"primaryKey;column:id;size:36"`
	StudentID   string `gorm:"column:student_id;size:36;index:idx_att_student_date"`
	StudentName string `gorm:"column:student_name;size:140"`
	ScheduleID  string `gorm:"column:schedule_id;size:36;index"`
	GroupID     string `gorm:"column:group_id;size:36"`

	// Date is denormalized from the schedule for query convenience.
	Date   time.Time `gorm:"column:date;type:date;index:idx_att_student_date"`
	Status Status    `gorm:"column:status;size:10"`
	Active bool      `gorm:"column:active;not null"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (StudentAttendance) TableName() string {
	return "student_attendances"
}

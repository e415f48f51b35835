package core

import (
	"fmt"

	"gorm.io/gorm"
	"srkr.edu.in/campus/attendance/model"
)

// DuplicatePair reports a (student, schedule) group holding more than
// one active record after the run.
type DuplicatePair struct {
	StudentID  string `gorm:"column:student_id"`
	ScheduleID string `gorm:"column:schedule_id"`
	Count      int    `gorm:"column:count"`
}

func (p DuplicatePair) String() string {
	return fmt.Sprintf("(%s, %s) has %d active records", p.StudentID, p.ScheduleID, p.Count)
}

// ValidateUniqueActive re-queries persisted state and returns every
// (student, schedule) pair violating the one-active-record invariant.
// A non-empty result downgrades the run to Warning, not Failed: the
// data is still usable and the next run's repair pass self-heals it.
func ValidateUniqueActive(db *gorm.DB, dateStr string, studentIDs []string) ([]DuplicatePair, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	var pairs []DuplicatePair
	err := db.Model(&model.StudentAttendance{}).
		Select("student_id, schedule_id, COUNT(*) AS count").
		Where("date = ? AND student_id IN ? AND active = ?", dateStr, studentIDs, true).
		Group("student_id").Group("schedule_id").
		Having("COUNT(*) > 1").
		Scan(&pairs).Error
	if err != nil {
		return nil, fmt.Errorf("failed post-write validation query: %w", err)
	}
	return pairs, nil
}

package core

import (
	"fmt"

	"gorm.io/gorm"
	"srkr.edu.in/campus/attendance/model"
)

// LoadActiveRecords returns the date's active attendance rows for the
// given students, newest-first. The ordering matters: SplitDuplicates
// keeps the first row it sees per key.
func LoadActiveRecords(db *gorm.DB, dateStr string, studentIDs []string) ([]model.StudentAttendance, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	var records []model.StudentAttendance
	err := db.Where("date = ? AND student_id IN ? AND active = ?", dateStr, studentIDs, true).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing attendance: %w", err)
	}
	return records, nil
}

// SplitDuplicates keeps the newest row per (student, schedule) as the
// canonical existing entry and collects the ids of every older row in
// the group. The upstream write path was never exactly-once, so
// duplicates are expected data, not an error.
func SplitDuplicates(records []model.StudentAttendance) (map[RecordKey]model.StudentAttendance, []string) {
	existing := make(map[RecordKey]model.StudentAttendance)
	var duplicateIDs []string
	for _, r := range records {
		key := RecordKey{StudentID: r.StudentID, ScheduleID: r.ScheduleID}
		if _, ok := existing[key]; ok {
			duplicateIDs = append(duplicateIDs, r.ID)
			continue
		}
		existing[key] = r
	}
	return existing, duplicateIDs
}

// DeactivateDuplicates flips the active flag on superseded rows in one
// batched update. Rows are never deleted.
func DeactivateDuplicates(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Model(&model.StudentAttendance{}).
		Where("id IN ?", ids).
		Update("active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate duplicate attendance: %w", err)
	}
	return nil
}

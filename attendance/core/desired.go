package core

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
	"srkr.edu.in/campus/attendance/model"
	"srkr.edu.in/campus/core/models"
	v1 "srkr.edu.in/campus/ezygo/v1"
	"srkr.edu.in/campus/utils"
)

// RecordKey identifies one attendance opinion: one student in one
// scheduled session.
type RecordKey struct {
	StudentID  string
	ScheduleID string
}

type DesiredEntry struct {
	Status      model.Status
	StudentName string
	GroupID     string
}

// MapStudents resolves the external identifiers in the payload to
// student records. Identifiers with no match are returned as unmapped;
// their events are dropped from further processing, not treated as an
// error, so the rest of the institution still reconciles.
func MapStudents(db *gorm.DB, events []v1.StudentDayDTO) (map[string]models.Student, []string, error) {
	seen := make(map[string]struct{})
	var externalIDs []string
	for _, ev := range events {
		if ev.StudentID == "" {
			continue
		}
		if _, ok := seen[ev.StudentID]; ok {
			continue
		}
		seen[ev.StudentID] = struct{}{}
		externalIDs = append(externalIDs, ev.StudentID)
	}
	if len(externalIDs) == 0 {
		return map[string]models.Student{}, nil, nil
	}

	var students []models.Student
	if err := db.Where("external_id IN ? AND active = ?", externalIDs, true).
		Find(&students).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch students: %w", err)
	}

	mapped := make(map[string]models.Student)
	for _, s := range students {
		mapped[s.ExternalID] = s
	}

	unmapped := utils.Filter(externalIDs, func(id string) bool {
		_, ok := mapped[id]
		return !ok
	})
	sort.Strings(unmapped)

	return mapped, unmapped, nil
}

// bucketStatus extracts a Present/Absent opinion from a half-day value.
// Any other value means the external system has no opinion for that
// bucket (e.g. no class expected) and the bucket is skipped.
func bucketStatus(b *v1.BucketStatusDTO) (model.Status, bool) {
	if b == nil {
		return "", false
	}
	switch b.Attendance {
	case string(model.StatusPresent):
		return model.StatusPresent, true
	case string(model.StatusAbsent):
		return model.StatusAbsent, true
	}
	return "", false
}

// BuildDesiredState materializes the target (student, session) -> status
// map. The feed reports once per half-day, so a single bucket status
// fans out to every session in that bucket for that student-day.
func BuildDesiredState(events []v1.StudentDayDTO, students map[string]models.Student, schedules map[string][]SessionInfo) map[RecordKey]DesiredEntry {
	desired := make(map[RecordKey]DesiredEntry)
	for _, ev := range events {
		student, ok := students[ev.StudentID]
		if !ok {
			continue
		}
		sessions := schedules[student.ID]
		applyBucket(desired, student, sessions, BucketMorning, ev.Morning)
		applyBucket(desired, student, sessions, BucketAfternoon, ev.Afternoon)
	}
	return desired
}

func applyBucket(desired map[RecordKey]DesiredEntry, student models.Student, sessions []SessionInfo, bucket Bucket, dto *v1.BucketStatusDTO) {
	status, ok := bucketStatus(dto)
	if !ok {
		return
	}
	for _, s := range sessions {
		if s.Bucket != bucket {
			continue
		}
		desired[RecordKey{StudentID: student.ID, ScheduleID: s.Schedule.ID}] = DesiredEntry{
			Status:      status,
			StudentName: student.FullName,
			GroupID:     s.Schedule.GroupID,
		}
	}
}

package core

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"srkr.edu.in/campus/core/models"
	"srkr.edu.in/campus/utils"
)

// SessionInfo is a scheduled class annotated with its half-day bucket.
type SessionInfo struct {
	Schedule models.CourseSchedule
	Bucket   Bucket
}

// ResolveSchedules returns, per student, the day's scheduled sessions
// ordered by start time. It joins the students' active group
// memberships to the course schedules for those groups on the date.
// A schedule whose start time cannot be parsed is skipped and reported
// as a warning rather than failing the run.
func ResolveSchedules(db *gorm.DB, date time.Time, studentIDs []string, cutoff time.Duration) (map[string][]SessionInfo, []string, error) {
	result := make(map[string][]SessionInfo)
	if len(studentIDs) == 0 {
		return result, nil, nil
	}

	var memberships []models.GroupMembership
	if err := db.Where("student_id IN ? AND active = ?", studentIDs, true).
		Find(&memberships).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch group memberships: %w", err)
	}
	if len(memberships) == 0 {
		return result, nil, nil
	}

	groupIDSet := make(map[string]struct{})
	for _, m := range memberships {
		groupIDSet[m.GroupID] = struct{}{}
	}

	// Memberships into disbanded groups stay in the table; only groups
	// still marked active contribute sessions.
	var groups []models.StudentGroup
	if err := db.Where("id IN ? AND active = ?", utils.Keys(groupIDSet), true).
		Find(&groups).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch student groups: %w", err)
	}
	if len(groups) == 0 {
		return result, nil, nil
	}
	activeGroupIDs := utils.Map(groups, func(g models.StudentGroup) string { return g.ID })

	var schedules []models.CourseSchedule
	if err := db.Where("group_id IN ? AND schedule_date = ?", activeGroupIDs, date.Format("2006-01-02")).
		Order("from_time").
		Find(&schedules).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch course schedules: %w", err)
	}

	sessionsByGroup, warnings := classifySessions(schedules, cutoff)

	for _, m := range memberships {
		result[m.StudentID] = append(result[m.StudentID], sessionsByGroup[m.GroupID]...)
	}

	// A student in several groups gets the merged list re-ordered.
	for id := range result {
		sessions := result[id]
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].Schedule.FromTime < sessions[j].Schedule.FromTime
		})
		result[id] = sessions
	}

	return result, warnings, nil
}

// classifySessions buckets each schedule by its start time and groups
// the day's sessions by student group. Schedules with an unparseable
// start time are dropped and reported as warnings.
func classifySessions(schedules []models.CourseSchedule, cutoff time.Duration) (map[string][]SessionInfo, []string) {
	var warnings []string
	sessions := make([]SessionInfo, 0, len(schedules))
	for _, cs := range schedules {
		bucket, err := ClassifyBucket(cs.FromTime, cutoff)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("schedule %s (%s): %v", cs.ID, cs.Course, err))
			continue
		}
		sessions = append(sessions, SessionInfo{Schedule: cs, Bucket: bucket})
	}
	return utils.GroupBy(sessions, func(s SessionInfo) string { return s.Schedule.GroupID }), warnings
}

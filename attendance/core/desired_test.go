package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"srkr.edu.in/campus/attendance/model"
	"srkr.edu.in/campus/core/models"
	v1 "srkr.edu.in/campus/ezygo/v1"
	"srkr.edu.in/campus/utils"
)

func session(id, group, from string, bucket Bucket) SessionInfo {
	return SessionInfo{
		Schedule: models.CourseSchedule{ID: id, GroupID: group, FromTime: from},
		Bucket:   bucket,
	}
}

func TestBuildDesiredStateFanOut(t *testing.T) {
	students := map[string]models.Student{
		"EXT-1": {ID: "S1", FullName: "Anil Kumar", ExternalID: "EXT-1"},
	}
	schedules := map[string][]SessionInfo{
		"S1": {
			session("A", "G1", "09:00:00", BucketMorning),
			session("B", "G1", "11:00:00", BucketMorning),
			session("C", "G1", "14:00:00", BucketAfternoon),
		},
	}
	events := []v1.StudentDayDTO{
		{
			StudentID: "EXT-1",
			Morning:   utils.Ptr(v1.BucketStatusDTO{Attendance: "Present"}),
			Afternoon: utils.Ptr(v1.BucketStatusDTO{Attendance: "Absent"}),
		},
	}

	desired := BuildDesiredState(events, students, schedules)

	// One morning opinion fans out to every morning session.
	assert.Len(t, desired, 3)
	assert.Equal(t, model.StatusPresent, desired[RecordKey{"S1", "A"}].Status)
	assert.Equal(t, model.StatusPresent, desired[RecordKey{"S1", "B"}].Status)
	assert.Equal(t, model.StatusAbsent, desired[RecordKey{"S1", "C"}].Status)
	assert.Equal(t, "Anil Kumar", desired[RecordKey{"S1", "A"}].StudentName)
	assert.Equal(t, "G1", desired[RecordKey{"S1", "A"}].GroupID)
}

func TestBuildDesiredStateNoOpinionSkipped(t *testing.T) {
	students := map[string]models.Student{
		"EXT-1": {ID: "S1", ExternalID: "EXT-1"},
	}
	schedules := map[string][]SessionInfo{
		"S1": {
			session("A", "G1", "09:00:00", BucketMorning),
			session("C", "G1", "14:00:00", BucketAfternoon),
		},
	}

	tests := []struct {
		name  string
		event v1.StudentDayDTO
		want  int
	}{
		{
			name: "missing afternoon key",
			event: v1.StudentDayDTO{
				StudentID: "EXT-1",
				Morning:   utils.Ptr(v1.BucketStatusDTO{Attendance: "Present"}),
			},
			want: 1,
		},
		{
			name: "unknown bucket value is not defaulted",
			event: v1.StudentDayDTO{
				StudentID: "EXT-1",
				Morning:   utils.Ptr(v1.BucketStatusDTO{Attendance: "Holiday"}),
				Afternoon: utils.Ptr(v1.BucketStatusDTO{Attendance: "Absent"}),
			},
			want: 1,
		},
		{
			name:  "no opinion at all",
			event: v1.StudentDayDTO{StudentID: "EXT-1"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired := BuildDesiredState([]v1.StudentDayDTO{tt.event}, students, schedules)
			assert.Len(t, desired, tt.want)
		})
	}
}

func TestBuildDesiredStateUnmappedDropped(t *testing.T) {
	students := map[string]models.Student{
		"EXT-1": {ID: "S1", ExternalID: "EXT-1"},
	}
	schedules := map[string][]SessionInfo{
		"S1": {session("A", "G1", "09:00:00", BucketMorning)},
	}
	events := []v1.StudentDayDTO{
		{StudentID: "X999", Morning: utils.Ptr(v1.BucketStatusDTO{Attendance: "Present"})},
		{StudentID: "EXT-1", Morning: utils.Ptr(v1.BucketStatusDTO{Attendance: "Present"})},
	}

	desired := BuildDesiredState(events, students, schedules)

	assert.Len(t, desired, 1)
	_, ok := desired[RecordKey{"S1", "A"}]
	assert.True(t, ok)
}

func TestBuildDesiredStateNoSessionsThatDay(t *testing.T) {
	students := map[string]models.Student{
		"EXT-1": {ID: "S1", ExternalID: "EXT-1"},
	}
	events := []v1.StudentDayDTO{
		{StudentID: "EXT-1", Morning: utils.Ptr(v1.BucketStatusDTO{Attendance: "Present"})},
	}

	desired := BuildDesiredState(events, students, map[string][]SessionInfo{})

	assert.Empty(t, desired)
}

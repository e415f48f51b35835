package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"srkr.edu.in/campus/core/models"
)

func TestClassifySessionsGroupsByStudentGroup(t *testing.T) {
	schedules := []models.CourseSchedule{
		{ID: "A", Course: "Maths", GroupID: "G1", FromTime: "09:00:00"},
		{ID: "B", Course: "Physics", GroupID: "G2", FromTime: "14:00:00"},
		{ID: "C", Course: "Chemistry", GroupID: "G1", FromTime: "11:30:00"},
	}

	byGroup, warnings := classifySessions(schedules, DefaultCutoff)

	assert.Empty(t, warnings)
	assert.Len(t, byGroup, 2)
	assert.Len(t, byGroup["G1"], 2)
	assert.Equal(t, BucketMorning, byGroup["G1"][0].Bucket)
	assert.Equal(t, BucketMorning, byGroup["G1"][1].Bucket)
	assert.Equal(t, BucketAfternoon, byGroup["G2"][0].Bucket)
}

func TestClassifySessionsUnparseableStartSkipped(t *testing.T) {
	schedules := []models.CourseSchedule{
		{ID: "A", Course: "Maths", GroupID: "G1", FromTime: "09:00:00"},
		{ID: "B", Course: "Physics", GroupID: "G1", FromTime: "morning"},
	}

	byGroup, warnings := classifySessions(schedules, DefaultCutoff)

	// The bad schedule is reported, not fatal; the rest still classify.
	assert.Len(t, byGroup["G1"], 1)
	assert.Equal(t, "A", byGroup["G1"][0].Schedule.ID)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "schedule B")
}

func TestClassifySessionsEmpty(t *testing.T) {
	byGroup, warnings := classifySessions(nil, DefaultCutoff)

	assert.Empty(t, byGroup)
	assert.Empty(t, warnings)
}

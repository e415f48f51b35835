package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"srkr.edu.in/campus/attendance/model"
)

func writeReplayFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daily.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write replay file: %v", err)
	}
	return path
}

func TestRunPipelineEmptyPayload(t *testing.T) {
	opts := SyncOptions{
		Date:       testDate,
		SourceFile: writeReplayFile(t, `{"attendance": []}`),
	}

	// An empty feed short-circuits before any database access.
	res, err := runPipeline(nil, nil, opts, "2025-01-06")

	assert.NoError(t, err)
	assert.Equal(t, model.SyncSuccess, res.Status)
	assert.Zero(t, res.RecordsUpdated)
	assert.Zero(t, res.RecordsInserted)
	assert.Zero(t, res.DuplicatesRepaired)
	assert.Zero(t, res.UnmappedStudents)
	assert.Equal(t, "No attendance data returned from external system.", res.Details)
}

func TestRunPipelineNoClientConfigured(t *testing.T) {
	res, err := runPipeline(nil, nil, SyncOptions{Date: testDate}, "2025-01-06")

	assert.Nil(t, res)
	assert.ErrorContains(t, err, "no external attendance client configured")
}

func TestFetchPayloadPrefersReplayFile(t *testing.T) {
	opts := SyncOptions{
		Date:       testDate,
		SourceFile: writeReplayFile(t, `{"attendance": [{"student_id": "EXT-1", "student_name": "Anil Kumar"}]}`),
	}

	payload, err := fetchPayload(nil, opts)

	assert.NoError(t, err)
	if assert.Len(t, payload.Attendance, 1) {
		assert.Equal(t, "EXT-1", payload.Attendance[0].StudentID)
	}
}

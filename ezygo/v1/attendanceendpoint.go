package v1

import (
	"encoding/json"
	"fmt"
	"os"
)

// BucketStatusDTO carries the feed's opinion for one half-day. Anything
// other than Present/Absent (or a missing key) means "no opinion".
type BucketStatusDTO struct {
	Attendance string `json:"attendance"`
}

type StudentDayDTO struct {
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Morning     *BucketStatusDTO `json:"morning,omitempty"`
	Afternoon   *BucketStatusDTO `json:"afternoon,omitempty"`
}

type DailyAttendanceDTO struct {
	Attendance []StudentDayDTO `json:"attendance"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

// Daily fetches the day's attendance payload. date is yyyy-MM-dd.
// An empty Attendance list is a valid response, not an error.
func (e *AttendanceEndpoint) Daily(date string) (*DailyAttendanceDTO, error) {
	resp, err := e.transport.Get("/api/attendance/daily", map[string]string{"date": date})
	if err != nil {
		return nil, err
	}

	var result DailyAttendanceDTO
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("malformed attendance payload: %w", err)
	}

	return &result, nil
}

// ReadDailyFile parses a previously captured payload from disk, for
// deterministic replays of a sync run.
func ReadDailyFile(path string) (*DailyAttendanceDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	var result DailyAttendanceDTO
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed attendance payload in %s: %w", path, err)
	}

	return &result, nil
}

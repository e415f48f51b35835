package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnlyUnmarshal(t *testing.T) {
	type request struct {
		SyncDate DateOnly `json:"sync_date"`
	}

	tests := []struct {
		name    string
		body    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "valid date",
			body: `{"sync_date": "2025-01-06"}`,
			want: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			// Callers may omit the date to mean "today"; the zero time
			// carries that through to the engine.
			name: "omitted date is zero",
			body: `{}`,
			want: time.Time{},
		},
		{
			name: "empty string is zero",
			body: `{"sync_date": ""}`,
			want: time.Time{},
		},
		{
			name:    "wrong layout rejected",
			body:    `{"sync_date": "06-01-2025"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req request
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, req.SyncDate.Time)
		})
	}
}

func TestDateOnlyMarshal(t *testing.T) {
	d := DateOnly{Time: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-01-06"`, string(b))

	b, err = json.Marshal(DateOnly{})
	assert.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected time.Duration
		wantErr  bool
	}{
		{
			name:     "HH:MM:SS string",
			input:    "09:30:15",
			expected: 9*time.Hour + 30*time.Minute + 15*time.Second,
		},
		{
			name:     "HH:MM string",
			input:    "14:05",
			expected: 14*time.Hour + 5*time.Minute,
		},
		{
			name:     "midnight",
			input:    "00:00:00",
			expected: 0,
		},
		{
			name:     "duration since midnight",
			input:    13 * time.Hour,
			expected: 13 * time.Hour,
		},
		{
			name:     "native time value",
			input:    time.Date(2025, 1, 6, 12, 55, 0, 0, time.UTC),
			expected: 12*time.Hour + 55*time.Minute,
		},
		{
			name:    "garbage string",
			input:   "half past nine",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "duration out of range",
			input:   25 * time.Hour,
			wantErr: true,
		},
		{
			name:    "unsupported type",
			input:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyBucket(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		cutoff   time.Duration
		expected Bucket
	}{
		{
			name:     "one second before default cutoff",
			start:    "12:59:59",
			expected: BucketMorning,
		},
		{
			name:     "exactly at default cutoff",
			start:    "13:00:00",
			expected: BucketAfternoon,
		},
		{
			name:     "early morning",
			start:    "07:45:00",
			expected: BucketMorning,
		},
		{
			name:     "late evening",
			start:    "18:30:00",
			expected: BucketAfternoon,
		},
		{
			name:     "custom cutoff moves the boundary",
			start:    "12:30:00",
			cutoff:   12 * time.Hour,
			expected: BucketAfternoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyBucket(tt.start, tt.cutoff)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyBucketUnparseable(t *testing.T) {
	_, err := ClassifyBucket("not a time", 0)
	assert.Error(t, err)
}

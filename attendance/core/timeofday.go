package core

import (
	"fmt"
	"time"
)

type Bucket string

const (
	BucketMorning   Bucket = "Morning"
	BucketAfternoon Bucket = "Afternoon"
)

// DefaultCutoff is the morning/afternoon boundary. A session starting at
// the cutoff exactly is afternoon.
const DefaultCutoff = 13 * time.Hour

// ParseTimeOfDay normalizes a session start time into a duration since
// midnight. Accepts "HH:MM:SS"/"HH:MM" strings, a duration since
// midnight, or a time.Time (date part ignored).
func ParseTimeOfDay(v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		if t < 0 || t >= 24*time.Hour {
			return 0, fmt.Errorf("time of day out of range: %v", t)
		}
		return t, nil
	case time.Time:
		return time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second, nil
	case string:
		return parseClock(t)
	}
	return 0, fmt.Errorf("unsupported time of day value: %T", v)
}

func parseClock(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ParseTimeOfDay(t)
		}
	}
	return 0, fmt.Errorf("unrecognised time of day: %q", s)
}

// ClassifyBucket buckets a session by its start time. The boundary is
// start-time based: a session starting 12:55 and running past the
// cutoff is still morning.
func ClassifyBucket(startTime any, cutoff time.Duration) (Bucket, error) {
	tod, err := ParseTimeOfDay(startTime)
	if err != nil {
		return "", err
	}
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	if tod < cutoff {
		return BucketMorning, nil
	}
	return BucketAfternoon, nil
}

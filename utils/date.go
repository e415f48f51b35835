package utils

import "time"

// IST is the campus timezone (UTC+5:30, no DST).
var IST = time.FixedZone("IST", 5*3600+30*60)

func ISTNow() time.Time {
	return time.Now().In(IST)
}

// Today is the current campus date at midnight UTC, matching how
// date-only columns are stored.
func Today() time.Time {
	now := ISTNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return t
}

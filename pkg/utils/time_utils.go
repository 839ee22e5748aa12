// utils/timeutil.go
package utils

import (
	"fmt"
	"time"
)

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// minuteLayout is ISO8601 without seconds or zone, as Open-Meteo reports times.
const minuteLayout = "2006-01-02T15:04"

// ParseMinuteTime reads "2024-05-01T12:00" in loc, accepting full RFC3339 too.
// A nil loc means UTC.
func ParseMinuteTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(minuteLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

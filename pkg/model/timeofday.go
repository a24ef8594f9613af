package model

import (
	"fmt"
	"time"
)

// TimeOfDay is the offset from midnight.
type TimeOfDay time.Duration

const timeOfDayLayout = "15:04:05"

// DateOf returns t truncated to midnight in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SplitTimestamp splits t into its date and time of day.
func SplitTimestamp(t time.Time) (time.Time, TimeOfDay) {
	date := DateOf(t)
	return date, TimeOfDay(t.Sub(date))
}

// OffsetTimestamp returns start shifted by secs, rounded to microseconds
// which is the resolution the data sources keep.
func OffsetTimestamp(start time.Time, secs float64) time.Time {
	return start.Add(Seconds(secs)).Round(time.Microsecond)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Sub(DateOf(t))), nil
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d",
		int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(data []byte) error {
	v, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

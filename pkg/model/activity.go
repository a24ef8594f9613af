package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrTelemetryLength = errors.New("telemetry series differ in length")

type Activity struct {
	Date      time.Time  `json:"date"`
	Time      TimeOfDay  `json:"time"`
	Duration  float64    `json:"duration"` // unit: seconds
	Route     string     `json:"route"`
	Telemetry *Telemetry `json:"-"`
}

func (a *Activity) Start() time.Time {
	return a.Date.Add(time.Duration(a.Time))
}

func (a *Activity) End() time.Time {
	return a.Start().Add(Seconds(a.Duration))
}

// Telemetry holds the recorded samples of an activity, ordered by Seconds.
type Telemetry struct {
	Seconds   []float64 `json:"seconds"`
	Latitude  []float64 `json:"latitude"`
	Longitude []float64 `json:"longitude"`
}

func (t *Telemetry) Len() int {
	return len(t.Seconds)
}

func (t *Telemetry) Validate() error {
	if len(t.Latitude) != len(t.Seconds) || len(t.Longitude) != len(t.Seconds) {
		return fmt.Errorf("%w: seconds=%d latitude=%d longitude=%d",
			ErrTelemetryLength, len(t.Seconds), len(t.Latitude), len(t.Longitude))
	}
	return nil
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Seconds converts fractional seconds into a time.Duration
func Seconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

package model

import (
	"time"

	"github.com/aarondl/opt/null"
)

// IntervalRecord is one recorded attempt of one route segment.
// Season-scoped records carry Date and Time, activity-scoped records
// carry Start and Stop (elapsed seconds into the activity) instead.
type IntervalRecord struct {
	Name          string            `json:"name"`
	Date          time.Time         `json:"date"`
	Time          TimeOfDay         `json:"time"`
	Duration      float64           `json:"duration"`
	Distance      float64           `json:"distance"`
	ElevationGain float64           `json:"elevationGain"`
	ElevationLoss float64           `json:"elevationLoss"`
	AvgPower      null.Val[float64] `json:"avgPower"`
	AvgHeartRate  null.Val[float64] `json:"avgHeartRate"`
	AvgSpeed      float64           `json:"avgSpeed"`
	AvgCadence    null.Val[float64] `json:"avgCadence"`
	BikeStress    null.Val[float64] `json:"bikeStress"`
	VAM           float64           `json:"vam"`
	Start         float64           `json:"start,omitempty"`
	Stop          float64           `json:"stop,omitempty"`
}

// Timestamp combines Date and Time.
func (r *IntervalRecord) Timestamp() time.Time {
	return r.Date.Add(time.Duration(r.Time))
}

// Sensor converts a raw channel value into a sensor reading.
// Data sources report a missing sensor as 0.
func Sensor(v float64) null.Val[float64] {
	if v == 0 {
		return null.Val[float64]{}
	}
	return null.From(v)
}

// Present reports whether the channel carries a real reading.
func Present(v null.Val[float64]) bool {
	val, ok := v.Get()
	return ok && val > 0
}

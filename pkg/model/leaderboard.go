package model

import (
	"time"

	"github.com/aarondl/opt/null"
)

// Attempt is one row of a segment leaderboard, ordered by duration.
type Attempt struct {
	Date          time.Time         `json:"date"`
	Time          TimeOfDay         `json:"time"`
	Duration      float64           `json:"duration"`
	AvgPower      null.Val[float64] `json:"avgPower"`
	AvgHeartRate  null.Val[float64] `json:"avgHeartRate"`
	AvgSpeed      float64           `json:"avgSpeed"`
	AvgCadence    null.Val[float64] `json:"avgCadence"`
	BikeStress    null.Val[float64] `json:"bikeStress"`
	VAM           float64           `json:"vam"`
	IsCurrent     bool              `json:"isCurrent"`
	DeltaDuration float64           `json:"deltaDuration"` // to fastest attempt
	DeltaPercent  float64           `json:"deltaPercent"`
}

// Averages are computed over all attempts of a segment.
// Sensor channels only take attempts into account where the sensor was present.
type Averages struct {
	Duration     float64           `json:"duration"`
	AvgPower     null.Val[float64] `json:"avgPower"`
	AvgHeartRate null.Val[float64] `json:"avgHeartRate"`
	AvgSpeed     float64           `json:"avgSpeed"`
	AvgCadence   null.Val[float64] `json:"avgCadence"`
	BikeStress   null.Val[float64] `json:"bikeStress"`
}

type SegmentInfo struct {
	Distance      float64 `json:"distance"`
	ElevationGain float64 `json:"elevationGain"`
	ElevationLoss float64 `json:"elevationLoss"`
}

type Entry struct {
	Name          string      `json:"name"`
	NumAttempts   int         `json:"numAttempts"`
	Rank          int         `json:"rank"`
	RankPercent   float64     `json:"rankPercent"`
	Averages      Averages    `json:"averages"`
	Info          SegmentInfo `json:"info"`
	Attempts      []Attempt   `json:"attempts"`
	FirstAttempt  time.Time   `json:"firstAttempt"`
	LastAttempt   time.Time   `json:"lastAttempt"`
	DeltaDuration float64     `json:"deltaDuration"` // slowest - fastest
	DeltaPercent  float64     `json:"deltaPercent"`
	Trace         []Point     `json:"trace"`
	HasPower      int         `json:"hasPower"`
	HasHeartRate  int         `json:"hasHeartRate"`
	HasCadence    int         `json:"hasCadence"`
	Current       time.Time   `json:"current"` // timestamp of the current attempt
}

type Overview struct {
	NumSegments int       `json:"numSegments"`
	SeasonName  string    `json:"seasonName"`
	OutOfSeason bool      `json:"outOfSeason"`
	Route       string    `json:"route"`
	Date        time.Time `json:"date"`
}

type Leaderboard struct {
	Overview Overview `json:"overview"`
	Entries  []*Entry `json:"entries"`
}

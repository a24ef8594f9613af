package model

import (
	"errors"
	"time"
)

var ErrInvalidSeason = errors.New("season start is after season end")

// Season is the athlete defined date range used to select comparable attempts.
type Season struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (s *Season) Validate() error {
	if s.Start.After(s.End) {
		return ErrInvalidSeason
	}
	return nil
}

package service

import (
	"fmt"
	"time"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

type FailureKind int

const (
	// KindLoadFailure covers every failure not listed below
	KindLoadFailure FailureKind = iota
	KindSeasonNotConfigured
	KindNoMatchedSegments
	KindInconsistentData
)

const DateFormat = "02.01.2006"

func (k FailureKind) String() string {
	switch k {
	case KindSeasonNotConfigured:
		return "SeasonNotConfigured"
	case KindNoMatchedSegments:
		return "NoMatchedSegments"
	case KindInconsistentData:
		return "InconsistentData"
	default:
		return "LoadFailure"
	}
}

func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Failure is reported instead of a leaderboard.
// Route and Date are only set for KindNoMatchedSegments.
type Failure struct {
	Kind       FailureKind `json:"kind"`
	Message    string      `json:"message"`
	Resolution string      `json:"resolution,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	Route      string      `json:"route,omitempty"`
	Date       time.Time   `json:"date,omitzero"`
	Err        error       `json:"-"`
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func seasonNotConfigured(err error) *Failure {
	return &Failure{
		Kind:       KindSeasonNotConfigured,
		Message:    "Failed to load route segments",
		Resolution: "Please select a season in Trends View first",
		Err:        err,
	}
}

func noMatchedSegments(activity *model.Activity, err error) *Failure {
	ret := &Failure{
		Kind:  KindNoMatchedSegments,
		Route: activity.Route,
		Date:  activity.Date,
		Err:   err,
	}
	if activity.Route != "" {
		ret.Message = fmt.Sprintf("No route segments found for activity %q (%s)",
			activity.Route, activity.Date.Format(DateFormat))
	} else {
		ret.Message = fmt.Sprintf("No route segments found for selected activity (%s)",
			activity.Date.Format(DateFormat))
	}
	return ret
}

func inconsistentData(err error) *Failure {
	return &Failure{
		Kind:       KindInconsistentData,
		Message:    "Season data does not contain the selected activity",
		Resolution: "Please refresh the season intervals",
		Detail:     err.Error(),
		Err:        err,
	}
}

func loadFailure(err error) *Failure {
	return &Failure{
		Kind:    KindLoadFailure,
		Message: "Failed to load segments",
		Detail:  fmt.Sprintf("%+v", err),
		Err:     err,
	}
}

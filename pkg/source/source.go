// Package source defines how the leaderboard inputs are retrieved.
package source

import (
	"context"
	"errors"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// DefaultIntervalType selects the intervals created for route segments.
const DefaultIntervalType = "ROUTE"

var ErrSeasonNotConfigured = errors.New("no season configured")

// Source provides the data of one activity and its season.
type Source interface {
	// Season returns the selected season or ErrSeasonNotConfigured
	Season(ctx context.Context) (*model.Season, error)
	// ActivityMetadata returns the activity without telemetry
	ActivityMetadata(ctx context.Context) (*model.Activity, error)
	// SeasonIntervals returns the intervals of all activities in the season.
	SeasonIntervals(ctx context.Context, intervalType string) ([]model.IntervalRecord, error)
	// ActivityIntervals returns the intervals of the activity including start/stop offsets.
	ActivityIntervals(ctx context.Context, intervalType string) ([]model.IntervalRecord, error)
	ActivityTelemetry(ctx context.Context) (*model.Telemetry, error)
}

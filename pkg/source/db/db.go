// Package db provides the leaderboard inputs of a stored activity.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/repository"
	activityrepos "github.com/mpapenbr/gc-segments/pkg/repository/activity"
	intervalrepos "github.com/mpapenbr/gc-segments/pkg/repository/interval"
	seasonrepos "github.com/mpapenbr/gc-segments/pkg/repository/season"
	"github.com/mpapenbr/gc-segments/pkg/source"
)

var ErrActivityNotFound = errors.New("activity not found")

type Source struct {
	conn       repository.Querier
	activityID int
	season     *model.Season
}

var _ source.Source = (*Source)(nil)

func New(conn repository.Querier, activityID int) *Source {
	return &Source{conn: conn, activityID: activityID}
}

func (s *Source) Season(ctx context.Context) (*model.Season, error) {
	if s.season != nil {
		return s.season, nil
	}
	season, err := seasonrepos.LoadSelected(ctx, s.conn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, source.ErrSeasonNotConfigured
	}
	if err != nil {
		return nil, err
	}
	s.season = season
	return season, nil
}

func (s *Source) ActivityMetadata(ctx context.Context) (*model.Activity, error) {
	ret, err := activityrepos.LoadByID(ctx, s.conn, s.activityID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrActivityNotFound, s.activityID)
	}
	return ret, err
}

func (s *Source) SeasonIntervals(ctx context.Context, intervalType string) (
	[]model.IntervalRecord, error,
) {
	season, err := s.Season(ctx)
	if err != nil {
		return nil, err
	}
	return intervalrepos.LoadBySeason(ctx, s.conn, season, intervalType)
}

func (s *Source) ActivityIntervals(ctx context.Context, intervalType string) (
	[]model.IntervalRecord, error,
) {
	return intervalrepos.LoadByActivity(ctx, s.conn, s.activityID, intervalType)
}

func (s *Source) ActivityTelemetry(ctx context.Context) (*model.Telemetry, error) {
	return activityrepos.LoadTelemetry(ctx, s.conn, s.activityID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/processing/segment"
	"github.com/mpapenbr/gc-segments/pkg/source"
)

type (
	LeaderboardService struct {
		src          source.Source
		intervalType string
		processor    *segment.Processor
		l            *log.Logger
	}
	LeaderboardOption func(s *LeaderboardService)
)

func WithIntervalType(intervalType string) LeaderboardOption {
	return func(s *LeaderboardService) {
		s.intervalType = intervalType
	}
}

func WithProcessor(p *segment.Processor) LeaderboardOption {
	return func(s *LeaderboardService) {
		s.processor = p
	}
}

func WithLogger(l *log.Logger) LeaderboardOption {
	return func(s *LeaderboardService) {
		s.l = l
	}
}

func NewLeaderboardService(src source.Source, opts ...LeaderboardOption) *LeaderboardService {
	ret := &LeaderboardService{
		src:          src,
		intervalType: source.DefaultIntervalType,
		l:            log.Default().Named("service.leaderboard"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.processor == nil {
		ret.processor = segment.NewProcessor()
	}
	return ret
}

// Compute loads the inputs and computes the leaderboard of the activity.
// Any error returned is a *Failure.
func (s *LeaderboardService) Compute(ctx context.Context) (*model.Leaderboard, error) {
	l := s.l.With(log.String("run", uuid.NewString()))
	start := time.Now()

	in, err := s.load(ctx)
	if err != nil {
		l.Warn("could not load leaderboard data", log.ErrorField(err))
		return nil, err
	}
	loaded := time.Now()

	lb, err := s.processor.Process(in)
	switch {
	case errors.Is(err, segment.ErrNoMatchedSegments):
		return nil, noMatchedSegments(in.Activity, err)
	case errors.Is(err, segment.ErrCurrentAttemptMissing):
		l.Error("inconsistent season data", log.ErrorField(err))
		return nil, inconsistentData(err)
	case err != nil:
		l.Error("could not compute leaderboard", log.ErrorField(err))
		return nil, loadFailure(err)
	}
	l.Info("leaderboard computed",
		log.Int("segments", lb.Overview.NumSegments),
		log.Bool("outOfSeason", lb.Overview.OutOfSeason),
		log.Duration("retrieveData", loaded.Sub(start)),
		log.Duration("processData", time.Since(loaded)))
	return lb, nil
}

func (s *LeaderboardService) load(ctx context.Context) (*segment.Input, error) {
	in := &segment.Input{}
	var err error
	if in.Season, err = s.src.Season(ctx); err != nil {
		if errors.Is(err, source.ErrSeasonNotConfigured) {
			return nil, seasonNotConfigured(err)
		}
		return nil, loadFailure(fmt.Errorf("load season: %w", err))
	}
	if err = in.Season.Validate(); err != nil {
		return nil, loadFailure(fmt.Errorf("season %q: %w", in.Season.Name, err))
	}
	if in.Activity, err = s.src.ActivityMetadata(ctx); err != nil {
		return nil, loadFailure(fmt.Errorf("load activity: %w", err))
	}
	in.ActivityIntervals, err = s.src.ActivityIntervals(ctx, s.intervalType)
	if err != nil {
		return nil, loadFailure(fmt.Errorf("load activity intervals: %w", err))
	}
	if len(in.ActivityIntervals) == 0 {
		return nil, noMatchedSegments(in.Activity, segment.ErrNoMatchedSegments)
	}
	in.SeasonIntervals, err = s.src.SeasonIntervals(ctx, s.intervalType)
	if err != nil {
		return nil, loadFailure(fmt.Errorf("load season intervals: %w", err))
	}
	if in.Activity.Telemetry, err = s.src.ActivityTelemetry(ctx); err != nil {
		return nil, loadFailure(fmt.Errorf("load telemetry: %w", err))
	}
	if err = in.Activity.Telemetry.Validate(); err != nil {
		return nil, loadFailure(err)
	}
	return in, nil
}

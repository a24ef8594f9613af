package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/model"
	activityrepos "github.com/mpapenbr/gc-segments/pkg/repository/activity"
	intervalrepos "github.com/mpapenbr/gc-segments/pkg/repository/interval"
	seasonrepos "github.com/mpapenbr/gc-segments/pkg/repository/season"
	"github.com/mpapenbr/gc-segments/pkg/source"
)

type (
	Importer struct {
		intervalType string
		l            *log.Logger
	}
	ImportOption func(imp *Importer)
	TxBeginner   interface {
		Begin(ctx context.Context) (pgx.Tx, error)
	}
	ImportResult struct {
		SeasonID   int
		ActivityID int
		// number of activities created for season intervals of other activities
		History int
	}
)

func WithImportIntervalType(intervalType string) ImportOption {
	return func(imp *Importer) {
		imp.intervalType = intervalType
	}
}

func WithImportLogger(l *log.Logger) ImportOption {
	return func(imp *Importer) {
		imp.l = l
	}
}

func NewImporter(opts ...ImportOption) *Importer {
	ret := &Importer{
		intervalType: source.DefaultIntervalType,
		l:            log.Default().Named("service.import"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Import stores the data provided by src in a single transaction.
// The season becomes the selected season. Season intervals that don't belong
// to the activity are stored as intervals of history activities, one per
// distinct start timestamp.
func (imp *Importer) Import(ctx context.Context, db TxBeginner, src source.Source) (
	*ImportResult, error,
) {
	ret := &ImportResult{}
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		season, err := src.Season(ctx)
		if err != nil {
			return err
		}
		if err = season.Validate(); err != nil {
			return err
		}
		if ret.SeasonID, err = seasonrepos.Create(ctx, tx, season); err != nil {
			return fmt.Errorf("create season: %w", err)
		}
		if _, err = seasonrepos.Select(ctx, tx, ret.SeasonID); err != nil {
			return fmt.Errorf("select season: %w", err)
		}

		activity, err := src.ActivityMetadata(ctx)
		if err != nil {
			return err
		}
		if activity.Telemetry, err = src.ActivityTelemetry(ctx); err != nil {
			return err
		}
		if ret.ActivityID, err = activityrepos.Create(ctx, tx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		actIntervals, err := src.ActivityIntervals(ctx, imp.intervalType)
		if err != nil {
			return err
		}
		for i := range actIntervals {
			if err = intervalrepos.Create(
				ctx, tx, ret.ActivityID, imp.intervalType, &actIntervals[i]); err != nil {
				return fmt.Errorf("create interval %q: %w", actIntervals[i].Name, err)
			}
		}

		seasonIntervals, err := src.SeasonIntervals(ctx, imp.intervalType)
		if err != nil {
			return err
		}
		ret.History, err = imp.storeHistory(ctx, tx, activity, actIntervals, seasonIntervals)
		return err
	})
	if err != nil {
		return nil, err
	}
	imp.l.Info("import done",
		log.Int("season", ret.SeasonID),
		log.Int("activity", ret.ActivityID),
		log.Int("history", ret.History))
	return ret, nil
}

func (imp *Importer) storeHistory(
	ctx context.Context,
	tx pgx.Tx,
	activity *model.Activity,
	actIntervals, seasonIntervals []model.IntervalRecord,
) (int, error) {
	type key struct {
		name string
		ts   int64 // unix micros
	}
	own := make(map[key]bool, len(actIntervals))
	for i := range actIntervals {
		ts := model.OffsetTimestamp(activity.Start(), actIntervals[i].Start)
		own[key{actIntervals[i].Name, ts.UnixMicro()}] = true
	}

	history := make(map[int64]int)
	for i := range seasonIntervals {
		r := seasonIntervals[i]
		ts := r.Timestamp()
		if own[key{r.Name, ts.UnixMicro()}] {
			continue
		}
		id, ok := history[ts.UnixMicro()]
		if !ok {
			a := &model.Activity{Route: activity.Route, Duration: r.Duration}
			a.Date, a.Time = model.SplitTimestamp(ts)
			var err error
			if id, err = activityrepos.Create(ctx, tx, a); err != nil {
				return 0, fmt.Errorf("create history activity: %w", err)
			}
			history[ts.UnixMicro()] = id
			imp.l.Debug("created history activity", log.Time("start", ts), log.Int("id", id))
		}
		r.Start, r.Stop = 0, r.Duration
		if err := intervalrepos.Create(ctx, tx, id, imp.intervalType, &r); err != nil {
			return 0, fmt.Errorf("create history interval %q: %w", r.Name, err)
		}
	}
	return len(history), nil
}

package segment

import (
	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/model"
)

type (
	Input struct {
		Season            *model.Season
		Activity          *model.Activity
		SeasonIntervals   []model.IntervalRecord
		ActivityIntervals []model.IntervalRecord
	}
	Processor struct {
		l *log.Logger
	}
	ProcessorOption func(p *Processor)
)

func WithLogger(l *log.Logger) ProcessorOption {
	return func(p *Processor) {
		p.l = l
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{l: log.Default().Named("segment")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Process computes the leaderboard for the activity of the input.
// Either the complete leaderboard or an error is returned.
func (p *Processor) Process(in *Input) (*model.Leaderboard, error) {
	if len(in.ActivityIntervals) == 0 {
		return nil, ErrNoMatchedSegments
	}
	overview := model.Overview{
		SeasonName: in.Season.Name,
		Route:      in.Activity.Route,
		Date:       in.Activity.Date,
	}
	pool := in.SeasonIntervals
	if IsOutOfSeason(in.Season, in.Activity.Start(), in.Activity.End()) {
		pool = ExtendSeason(pool, in.Activity.Start(), in.ActivityIntervals)
		overview.OutOfSeason = true
		p.l.Debug("activity out of season, extended pool",
			log.String("season", in.Season.Name),
			log.Int("added", len(in.ActivityIntervals)),
			log.Int("pool", len(pool)))
	}

	segments, err := Match(pool, in.ActivityIntervals, in.Activity)
	if err != nil {
		return nil, err
	}
	entries := make([]*model.Entry, 0, len(segments))
	for _, seg := range segments {
		entry, err := Rank(seg)
		if err != nil {
			return nil, err
		}
		p.l.Debug("ranked segment",
			log.String("name", entry.Name),
			log.Int("rank", entry.Rank),
			log.Int("attempts", entry.NumAttempts))
		entries = append(entries, entry)
	}
	return Assemble(overview, entries), nil
}

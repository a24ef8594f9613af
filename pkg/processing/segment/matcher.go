package segment

import (
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

type (
	// Row is an interval of the matching pool.
	// Only rows of the current activity carry a trace.
	Row struct {
		model.IntervalRecord
		IsCurrent bool
		Trace     []model.Point
	}
	Segment struct {
		Name string
		Rows []*Row // in pool order
	}
	attemptKey struct {
		name string
		ts   int64 // unix micros
	}
)

func keyOf(name string, ts time.Time) attemptKey {
	return attemptKey{name: name, ts: ts.UnixMicro()}
}

// Match groups the pool rows by segment name, restricted to the segments the
// activity attempted. A row is flagged current if the activity has an interval
// with the same name, date and time.
func Match(
	pool []model.IntervalRecord,
	activityIntervals []model.IntervalRecord,
	activity *model.Activity,
) ([]*Segment, error) {
	if len(activityIntervals) == 0 {
		return nil, ErrNoMatchedSegments
	}
	start := activity.Start()
	current := make(map[attemptKey]*model.IntervalRecord)
	names := make(map[string]struct{})
	for i := range activityIntervals {
		item := &activityIntervals[i]
		names[item.Name] = struct{}{}
		key := keyOf(item.Name, model.OffsetTimestamp(start, item.Start))
		if _, ok := current[key]; !ok {
			current[key] = item
		}
	}

	rows := make([]*Row, 0)
	for i := range pool {
		if _, ok := names[pool[i].Name]; !ok {
			continue
		}
		row := &Row{IntervalRecord: pool[i]}
		if item, ok := current[keyOf(row.Name, row.Timestamp())]; ok {
			row.IsCurrent = true
			row.Trace = ExtractTrace(item.Start, item.Stop, activity.Telemetry)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoMatchedSegments
	}

	byName := lo.GroupBy(rows, func(r *Row) string { return r.Name })
	order := lo.Uniq(lo.Map(rows, func(r *Row, _ int) string { return r.Name }))
	return lo.Map(order, func(name string, _ int) *Segment {
		return &Segment{Name: name, Rows: byName[name]}
	}), nil
}

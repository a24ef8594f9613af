package segment

import (
	"time"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// IsOutOfSeason reports whether the activity starts before or ends after
// the season. Only calendar dates are compared.
func IsOutOfSeason(season *model.Season, activityStart, activityEnd time.Time) bool {
	return model.DateOf(activityStart).Before(model.DateOf(season.Start)) ||
		model.DateOf(activityEnd).After(model.DateOf(season.End))
}

// ExtendSeason appends the activity intervals to a copy of pool.
// Date and time of the appended rows are derived from the activity start
// and the start offset of the interval. Intervals already contained in pool
// (same name and timestamp) are not appended again.
func ExtendSeason(
	pool []model.IntervalRecord,
	activityStart time.Time,
	activityIntervals []model.IntervalRecord,
) []model.IntervalRecord {
	known := make(map[attemptKey]struct{}, len(pool))
	for i := range pool {
		known[keyOf(pool[i].Name, pool[i].Timestamp())] = struct{}{}
	}
	ret := make([]model.IntervalRecord, 0, len(pool)+len(activityIntervals))
	ret = append(ret, pool...)
	for _, item := range activityIntervals {
		ts := model.OffsetTimestamp(activityStart, item.Start)
		if _, ok := known[keyOf(item.Name, ts)]; ok {
			continue
		}
		item.Date, item.Time = model.SplitTimestamp(ts)
		ret = append(ret, item)
	}
	return ret
}

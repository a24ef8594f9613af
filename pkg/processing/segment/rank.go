package segment

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

// Rank computes the leaderboard entry of a segment.
// Attempts are ordered by duration; attempts with equal duration keep their
// pool order. The rank is the position of the first current row in that order.
func Rank(seg *Segment) (*model.Entry, error) {
	rows := slices.Clone(seg.Rows)
	slices.SortStableFunc(rows, func(a, b *Row) int {
		return cmp.Compare(a.Duration, b.Duration)
	})
	idx := slices.IndexFunc(rows, func(r *Row) bool { return r.IsCurrent })
	if idx < 0 {
		return nil, fmt.Errorf("segment %q: %w", seg.Name, ErrCurrentAttemptMissing)
	}
	current := rows[idx]
	num := len(rows)
	minDuration := rows[0].Duration
	maxDuration := rows[num-1].Duration

	entry := &model.Entry{
		Name:          seg.Name,
		NumAttempts:   num,
		Rank:          idx + 1,
		RankPercent:   float64(idx+1) / float64(num) * 100,
		DeltaDuration: maxDuration - minDuration,
		DeltaPercent:  percentOf(maxDuration-minDuration, minDuration),
		Trace:         current.Trace,
		Current:       current.Timestamp(),
		Info: model.SegmentInfo{
			Distance:      mean(rows, func(r *Row) float64 { return r.Distance }),
			ElevationGain: mean(rows, func(r *Row) float64 { return r.ElevationGain }),
			ElevationLoss: mean(rows, func(r *Row) float64 { return r.ElevationLoss }),
		},
		FirstAttempt: lo.MinBy(rows, func(a, b *Row) bool { return a.Date.Before(b.Date) }).Date,
		LastAttempt:  lo.MaxBy(rows, func(a, b *Row) bool { return a.Date.After(b.Date) }).Date,
	}
	if entry.Trace == nil {
		entry.Trace = make([]model.Point, 0)
	}

	avg := model.Averages{
		Duration: mean(rows, func(r *Row) float64 { return r.Duration }),
		AvgSpeed: mean(rows, func(r *Row) float64 { return r.AvgSpeed }),
	}
	avg.AvgPower, entry.HasPower = sensorMean(rows, func(r *Row) null.Val[float64] { return r.AvgPower })
	avg.AvgHeartRate, entry.HasHeartRate = sensorMean(rows,
		func(r *Row) null.Val[float64] { return r.AvgHeartRate })
	avg.AvgCadence, entry.HasCadence = sensorMean(rows,
		func(r *Row) null.Val[float64] { return r.AvgCadence })
	avg.BikeStress, _ = sensorMean(rows, func(r *Row) null.Val[float64] { return r.BikeStress })
	entry.Averages = avg

	entry.Attempts = lo.Map(rows, func(r *Row, _ int) model.Attempt {
		return model.Attempt{
			Date:          r.Date,
			Time:          r.Time,
			Duration:      r.Duration,
			AvgPower:      r.AvgPower,
			AvgHeartRate:  r.AvgHeartRate,
			AvgSpeed:      r.AvgSpeed,
			AvgCadence:    r.AvgCadence,
			BikeStress:    r.BikeStress,
			VAM:           r.VAM,
			IsCurrent:     r.IsCurrent,
			DeltaDuration: r.Duration - minDuration,
			DeltaPercent:  percentOf(r.Duration-minDuration, minDuration),
		}
	})
	return entry, nil
}

// percentOf returns 0 for a zero base
func percentOf(delta, base float64) float64 {
	if base == 0 {
		return 0
	}
	return 100 * delta / base
}

func mean(rows []*Row, get func(r *Row) float64) float64 {
	return lo.SumBy(rows, get) / float64(len(rows))
}

// sensorMean averages the rows where the sensor was present.
// It also returns the number of these rows.
func sensorMean(rows []*Row, get func(r *Row) null.Val[float64]) (null.Val[float64], int) {
	present := lo.Filter(rows, func(r *Row, _ int) bool { return model.Present(get(r)) })
	if len(present) == 0 {
		return null.Val[float64]{}, 0
	}
	sum := lo.SumBy(present, func(r *Row) float64 { return get(r).GetOr(0) })
	return null.From(sum / float64(len(present))), len(present)
}

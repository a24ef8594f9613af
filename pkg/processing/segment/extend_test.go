package segment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/gc-segments/pkg/model"
	bd "github.com/mpapenbr/gc-segments/testsupport/basedata"
)

func TestIsOutOfSeason(t *testing.T) {
	season := bd.SampleSeason()
	at := func(s string) time.Time {
		//nolint:errcheck // test data
		ts, _ := time.Parse(time.DateTime, s)
		return ts
	}
	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside", "2024-05-01 10:00:00", "2024-05-01 11:00:00", false},
		{"first day", "2024-01-01 00:10:00", "2024-01-01 01:00:00", false},
		{"last day", "2024-12-31 20:00:00", "2024-12-31 23:59:00", false},
		{"before start", "2023-12-31 10:00:00", "2023-12-31 11:00:00", true},
		{"ends after season", "2024-12-31 23:30:00", "2025-01-01 00:30:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutOfSeason(season, at(tt.start), at(tt.end)))
		})
	}
}

func TestExtendSeason(t *testing.T) {
	activity := outOfSeasonActivity()
	pool := []model.IntervalRecord{
		bd.SeasonInterval("Climb", "2024-03-01", "09:00:00", 120),
	}
	actIntervals := []model.IntervalRecord{
		bd.ActivityInterval("Climb", 600, 100),
		bd.ActivityInterval("Hill", 1200.5, 30),
	}
	got := ExtendSeason(pool, activity.Start(), actIntervals)

	assert.Len(t, pool, 1)
	assert.Len(t, got, len(pool)+len(actIntervals))
	assert.Equal(t, pool[0], got[0])
	assert.Equal(t, bd.TestDate("2023-12-15"), got[1].Date)
	assert.Equal(t, bd.TestTimeOfDay("10:10:00"), got[1].Time)
	assert.Equal(t, "Hill", got[2].Name)
	assert.Equal(t, model.TimeOfDay(10*time.Hour+20*time.Minute+500*time.Millisecond), got[2].Time)
	// the source records are left untouched
	assert.True(t, actIntervals[0].Date.IsZero())
}

func TestExtendSeason_SkipsKnownRows(t *testing.T) {
	activity := outOfSeasonActivity()
	climb := bd.ActivityInterval("Climb", 600, 100)
	pool := []model.IntervalRecord{
		bd.SeasonInterval("Climb", "2024-03-01", "09:00:00", 120),
		bd.CurrentOf(activity, climb),
	}
	actIntervals := []model.IntervalRecord{climb, bd.ActivityInterval("Hill", 1200, 30)}
	got := ExtendSeason(pool, activity.Start(), actIntervals)

	assert.Len(t, got, 3)
	assert.Equal(t, "Hill", got[2].Name)
}

func TestAssemble(t *testing.T) {
	base := bd.TestDate("2024-05-01")
	entries := []*model.Entry{
		{Name: "B", Rank: 1, Current: base.Add(2 * time.Hour)},
		{Name: "C", Rank: 3, Current: base.Add(time.Hour)},
		{Name: "A", Rank: 2, Current: base.Add(2 * time.Hour)},
	}
	lb := Assemble(model.Overview{Route: "r"}, entries)
	assert.Equal(t, 3, lb.Overview.NumSegments)
	assert.Equal(t, "r", lb.Overview.Route)
	got := make([]string, 0)
	for _, e := range lb.Entries {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, got)
	assert.Equal(t, "B", entries[0].Name)
}

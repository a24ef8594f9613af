package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/gc-segments/pkg/model"
	bd "github.com/mpapenbr/gc-segments/testsupport/basedata"
)

func TestFindIndex(t *testing.T) {
	secs := []float64{0, 10, 20, 30}
	tests := []struct {
		name string
		sec  float64
		want int
	}{
		{"exact", 20, 2},
		{"between", 11, 2},
		{"first", 0, 0},
		{"before first", -5, 0},
		{"beyond last", 31, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindIndex(tt.sec, secs))
		})
	}
}

func TestExtractTrace(t *testing.T) {
	tel := &model.Telemetry{
		Seconds:   []float64{0, 10, 20, 30},
		Latitude:  []float64{1, 2, 3, 4},
		Longitude: []float64{5, 6, 7, 8},
	}
	tests := []struct {
		name        string
		start, stop float64
		want        []model.Point
	}{
		{
			name: "inclusive range", start: 5, stop: 20,
			want: []model.Point{{Lat: 2, Lon: 6}, {Lat: 3, Lon: 7}},
		},
		{
			name: "stop beyond data", start: 10, stop: 99,
			want: []model.Point{},
		},
		{
			name: "both beyond data", start: 50, stop: 99,
			want: []model.Point{{Lat: 1, Lon: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ExtractTrace(tt.start, tt.stop, tel)); diff != "" {
				t.Errorf("ExtractTrace() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractTrace_NoTelemetry(t *testing.T) {
	assert.Empty(t, ExtractTrace(0, 10, nil))
	assert.Empty(t, ExtractTrace(0, 10, &model.Telemetry{}))
}

func TestMatch_CurrentCarriesTrace(t *testing.T) {
	activity := bd.SampleActivity()
	actInterval := bd.ActivityInterval("Climb", 600, 110)
	pool := []model.IntervalRecord{
		bd.SeasonInterval("Climb", "2024-03-01", "09:00:00", 120),
		bd.SeasonInterval("Other", "2024-03-01", "09:00:00", 120),
		bd.CurrentOf(activity, actInterval),
	}
	segments, err := Match(pool, []model.IntervalRecord{actInterval}, activity)
	assert.NoError(t, err)
	assert.Len(t, segments, 1)
	rows := segments[0].Rows
	assert.Len(t, rows, 2)
	assert.False(t, rows[0].IsCurrent)
	assert.Nil(t, rows[0].Trace)
	assert.True(t, rows[1].IsCurrent)
	// samples every 10s: 600..710 inclusive
	assert.Len(t, rows[1].Trace, 12)
	assert.Equal(t, model.Point{
		Lat: activity.Telemetry.Latitude[60],
		Lon: activity.Telemetry.Longitude[60],
	}, rows[1].Trace[0])
}

//nolint:funlen // ok for tests
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/processing/segment"
	"github.com/mpapenbr/gc-segments/pkg/source"
	"github.com/mpapenbr/gc-segments/pkg/source/file"
	bd "github.com/mpapenbr/gc-segments/testsupport/basedata"
)

// memSource serves fixed data. Errors configured by the test are returned
// from the corresponding method.
type memSource struct {
	season            *model.Season
	activity          *model.Activity
	seasonIntervals   []model.IntervalRecord
	activityIntervals []model.IntervalRecord
	telemetry         *model.Telemetry
	seasonErr         error
	intervalsErr      error
}

var _ source.Source = (*memSource)(nil)

func (m *memSource) Season(ctx context.Context) (*model.Season, error) {
	return m.season, m.seasonErr
}

func (m *memSource) ActivityMetadata(ctx context.Context) (*model.Activity, error) {
	a := *m.activity
	a.Telemetry = nil
	return &a, nil
}

func (m *memSource) SeasonIntervals(ctx context.Context, _ string) ([]model.IntervalRecord, error) {
	return m.seasonIntervals, m.intervalsErr
}

func (m *memSource) ActivityIntervals(ctx context.Context, _ string) ([]model.IntervalRecord, error) {
	return m.activityIntervals, nil
}

func (m *memSource) ActivityTelemetry(ctx context.Context) (*model.Telemetry, error) {
	return m.telemetry, nil
}

func sampleSource() *memSource {
	activity := bd.SampleActivity()
	climb := bd.ActivityInterval("Climb", 600, 110)
	return &memSource{
		season:   bd.SampleSeason(),
		activity: activity,
		seasonIntervals: []model.IntervalRecord{
			bd.SeasonInterval("Climb", "2024-03-01", "09:00:00", 120),
			bd.CurrentOf(activity, climb),
		},
		activityIntervals: []model.IntervalRecord{climb},
		telemetry:         activity.Telemetry,
	}
}

func TestCompute_FileSource(t *testing.T) {
	src, err := file.Open("../source/file/testdata/export.json")
	require.NoError(t, err)
	lb, err := NewLeaderboardService(src).Compute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, lb.Overview.NumSegments)
	assert.False(t, lb.Overview.OutOfSeason)
	assert.Equal(t, "Hometrail", lb.Overview.Route)

	climb := lb.Entries[0]
	assert.Equal(t, "Climb", climb.Name)
	assert.Equal(t, 3, climb.NumAttempts)
	assert.Equal(t, 2, climb.Rank)
	assert.Equal(t, 3, climb.HasHeartRate)
	assert.Equal(t, 2, climb.HasPower)
	assert.Equal(t, 2, climb.HasCadence)
	power, ok := climb.Averages.AvgPower.Get()
	require.True(t, ok)
	assert.InDelta(t, 256.0, power, 1e-9)
	// telemetry every 30s, 600..720
	assert.Len(t, climb.Trace, 5)

	sprint := lb.Entries[1]
	assert.Equal(t, "Sprint", sprint.Name)
	assert.Equal(t, 2, sprint.Rank)
	assert.Equal(t, 0, sprint.HasHeartRate)
	assert.Equal(t, 2.0, sprint.DeltaDuration)
}

func TestCompute_Failures(t *testing.T) {
	loadErr := errors.New("connection lost")
	tests := []struct {
		name       string
		modify     func(m *memSource)
		wantKind   FailureKind
		wantMsg    string
		wantErr    error
		wantDetail bool
	}{
		{
			name:     "season missing",
			modify:   func(m *memSource) { m.seasonErr = source.ErrSeasonNotConfigured },
			wantKind: KindSeasonNotConfigured,
			wantMsg:  "Failed to load route segments",
			wantErr:  source.ErrSeasonNotConfigured,
		},
		{
			name:     "no activity intervals",
			modify:   func(m *memSource) { m.activityIntervals = nil },
			wantKind: KindNoMatchedSegments,
			wantMsg:  `No route segments found for activity "Hometrail" (01.05.2024)`,
			wantErr:  segment.ErrNoMatchedSegments,
		},
		{
			name: "no activity intervals without route",
			modify: func(m *memSource) {
				m.activityIntervals = nil
				m.activity.Route = ""
			},
			wantKind: KindNoMatchedSegments,
			wantMsg:  "No route segments found for selected activity (01.05.2024)",
			wantErr:  segment.ErrNoMatchedSegments,
		},
		{
			name: "nothing in common",
			modify: func(m *memSource) {
				m.seasonIntervals = []model.IntervalRecord{
					bd.SeasonInterval("Other", "2024-03-01", "09:00:00", 120),
				}
			},
			wantKind: KindNoMatchedSegments,
			wantErr:  segment.ErrNoMatchedSegments,
			wantMsg:  `No route segments found for activity "Hometrail" (01.05.2024)`,
		},
		{
			name:     "current attempt missing",
			modify:   func(m *memSource) { m.seasonIntervals = m.seasonIntervals[:1] },
			wantKind: KindInconsistentData,
			wantErr:  segment.ErrCurrentAttemptMissing,
			wantMsg:  "Season data does not contain the selected activity",
		},
		{
			name:       "load failure",
			modify:     func(m *memSource) { m.intervalsErr = loadErr },
			wantKind:   KindLoadFailure,
			wantErr:    loadErr,
			wantMsg:    "Failed to load segments",
			wantDetail: true,
		},
		{
			name: "invalid season",
			modify: func(m *memSource) {
				m.season.Start, m.season.End = m.season.End, m.season.Start
			},
			wantKind:   KindLoadFailure,
			wantErr:    model.ErrInvalidSeason,
			wantMsg:    "Failed to load segments",
			wantDetail: true,
		},
		{
			name: "broken telemetry",
			modify: func(m *memSource) {
				m.telemetry = &model.Telemetry{Seconds: []float64{1}}
			},
			wantKind:   KindLoadFailure,
			wantErr:    model.ErrTelemetryLength,
			wantMsg:    "Failed to load segments",
			wantDetail: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := sampleSource()
			tt.modify(src)
			lb, err := NewLeaderboardService(src).Compute(context.Background())
			assert.Nil(t, lb)
			var f *Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Equal(t, tt.wantMsg, f.Message)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantDetail {
				assert.NotEmpty(t, f.Detail)
			}
		})
	}
}

func TestCompute_NoMatchedCarriesActivity(t *testing.T) {
	src := sampleSource()
	src.activityIntervals = nil
	_, err := NewLeaderboardService(src).Compute(context.Background())
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "Hometrail", f.Route)
	assert.Equal(t, bd.TestDate("2024-05-01"), f.Date)
}

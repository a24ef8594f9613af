//nolint:funlen // ok for tests
package file

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/source"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	src, err := Open("testdata/export.json")
	require.NoError(t, err)

	season, err := src.Season(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024", season.Name)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), season.Start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), season.End)

	activity, err := src.ActivityMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hometrail", activity.Route)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), activity.Start())
	assert.Equal(t, 3600.0, activity.Duration)

	seasonIntervals, err := src.SeasonIntervals(ctx, source.DefaultIntervalType)
	require.NoError(t, err)
	require.Len(t, seasonIntervals, 5)
	first := seasonIntervals[0]
	assert.Equal(t, "Climb", first.Name)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), first.Timestamp())
	assert.Equal(t, 120.0, first.Duration)
	assert.Equal(t, model.Sensor(250), first.AvgPower)
	// zero values mark missing sensors
	assert.True(t, seasonIntervals[1].AvgHeartRate.IsNull())
	assert.True(t, seasonIntervals[2].AvgPower.IsNull())

	actIntervals, err := src.ActivityIntervals(ctx, source.DefaultIntervalType)
	require.NoError(t, err)
	require.Len(t, actIntervals, 2)
	assert.Equal(t, 600.0, actIntervals[0].Start)
	assert.Equal(t, 710.0, actIntervals[0].Stop)
	assert.Equal(t, "Sprint", actIntervals[1].Name)

	tel, err := src.ActivityTelemetry(ctx)
	require.NoError(t, err)
	require.NoError(t, tel.Validate())
	assert.Equal(t, 121, tel.Len())
	assert.Equal(t, 30.0, tel.Seconds[1])
}

func TestSource_UnknownIntervalType(t *testing.T) {
	src, err := Open("testdata/export.json")
	require.NoError(t, err)
	got, err := src.ActivityIntervals(context.Background(), "USER")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSource_Errors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		doc     string
		call    func(s *Source) error
		wantErr error
	}{
		{
			name: "no season",
			doc:  `{"activity":{}}`,
			call: func(s *Source) error {
				_, err := s.Season(ctx)
				return err
			},
			wantErr: source.ErrSeasonNotConfigured,
		},
		{
			name: "column length",
			doc:  `{"activityIntervals":{"ROUTE":{"name":["a","b"],"start":[1],"stop":[2,3],"Duration":[1,1]}}}`,
			call: func(s *Source) error {
				_, err := s.ActivityIntervals(ctx, "ROUTE")
				return err
			},
			wantErr: ErrColumnLength,
		},
		{
			name: "missing column",
			doc:  `{"activityIntervals":{"ROUTE":{"name":["a"],"start":[1],"Duration":[1]}}}`,
			call: func(s *Source) error {
				_, err := s.ActivityIntervals(ctx, "ROUTE")
				return err
			},
			wantErr: ErrMissingSection,
		},
		{
			name: "missing name column",
			doc:  `{"activityIntervals":{"ROUTE":{"start":[1],"stop":[2],"Duration":[1]}}}`,
			call: func(s *Source) error {
				_, err := s.ActivityIntervals(ctx, "ROUTE")
				return err
			},
			wantErr: ErrMissingSection,
		},
		{
			name: "not a number",
			doc:  `{"telemetry":{"seconds":["x"],"latitude":[1],"longitude":[2]}}`,
			call: func(s *Source) error {
				_, err := s.ActivityTelemetry(ctx)
				return err
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "missing activity",
			doc:  `{}`,
			call: func(s *Source) error {
				_, err := s.ActivityMetadata(ctx)
				return err
			},
			wantErr: ErrMissingSection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.ErrorIs(t, tt.call(src), tt.wantErr)
		})
	}
}

func TestNew_InvalidDocument(t *testing.T) {
	_, err := New(strings.NewReader(`[1,2]`))
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = New(strings.NewReader(`{`))
	assert.Error(t, err)
}

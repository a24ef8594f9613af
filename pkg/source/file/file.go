// Package file provides a source reading a JSON export of an activity.
//
// The export mirrors the column oriented tables of the host application:
//
//	{
//	  "season": {"name": "2024", "start": "2024-01-01", "end": "2024-12-31"},
//	  "activity": {"date": "2024-05-01", "time": "10:00:00", "Duration": 3600, "Route": "Hometrail"},
//	  "seasonIntervals": {"ROUTE": {"name": [...], "date": [...], "time": [...], "Duration": [...], ...}},
//	  "activityIntervals": {"ROUTE": {"name": [...], "start": [...], "stop": [...], "Duration": [...], ...}},
//	  "telemetry": {"seconds": [...], "latitude": [...], "longitude": [...]}
//	}
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/source"
)

var (
	ErrMissingSection = errors.New("missing section")
	ErrColumnLength   = errors.New("column length mismatch")
	ErrInvalidValue   = errors.New("invalid value")
)

var (
	seasonPath    = jp.MustParseString("$.season")
	activityPath  = jp.MustParseString("$.activity")
	telemetryPath = jp.MustParseString("$.telemetry")
)

func intervalsPath(scope, intervalType string) jp.Expr {
	return jp.R().C(scope).C(intervalType)
}

type Source struct {
	doc any
	l   *log.Logger
}

var _ source.Source = (*Source)(nil)

func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return New(f)
}

func New(r io.Reader) (*Source, error) {
	doc, err := oj.Load(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse export: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: export is not an object", ErrInvalidValue)
	}
	return &Source{doc: doc, l: log.Default().Named("source.file")}, nil
}

func (s *Source) Season(ctx context.Context) (*model.Season, error) {
	obj, ok := seasonPath.First(s.doc).(map[string]any)
	if !ok {
		return nil, source.ErrSeasonNotConfigured
	}
	ret := &model.Season{Name: stringValue(obj["name"])}
	var err error
	if ret.Start, err = dateValue(obj["start"]); err != nil {
		return nil, fmt.Errorf("season start: %w", err)
	}
	if ret.End, err = dateValue(obj["end"]); err != nil {
		return nil, fmt.Errorf("season end: %w", err)
	}
	return ret, nil
}

func (s *Source) ActivityMetadata(ctx context.Context) (*model.Activity, error) {
	obj, ok := activityPath.First(s.doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: activity", ErrMissingSection)
	}
	ret := &model.Activity{Route: stringValue(obj["Route"])}
	var err error
	if ret.Date, err = dateValue(obj["date"]); err != nil {
		return nil, fmt.Errorf("activity date: %w", err)
	}
	if ret.Time, err = timeValue(obj["time"]); err != nil {
		return nil, fmt.Errorf("activity time: %w", err)
	}
	if ret.Duration, err = floatValue(obj["Duration"]); err != nil {
		return nil, fmt.Errorf("activity duration: %w", err)
	}
	return ret, nil
}

func (s *Source) SeasonIntervals(
	ctx context.Context,
	intervalType string,
) ([]model.IntervalRecord, error) {
	t, err := s.table(intervalsPath("seasonIntervals", intervalType), "name", "date", "time", "Duration")
	if err != nil {
		return nil, fmt.Errorf("season intervals: %w", err)
	}
	ret := make([]model.IntervalRecord, t.rows)
	for i := range ret {
		if err := t.record(i, &ret[i]); err != nil {
			return nil, fmt.Errorf("season intervals row %d: %w", i, err)
		}
		if ret[i].Date, err = dateValue(t.value("date", i)); err != nil {
			return nil, fmt.Errorf("season intervals row %d: %w", i, err)
		}
		if ret[i].Time, err = timeValue(t.value("time", i)); err != nil {
			return nil, fmt.Errorf("season intervals row %d: %w", i, err)
		}
	}
	s.l.Debug("season intervals loaded",
		log.String("type", intervalType), log.Int("rows", len(ret)))
	return ret, nil
}

func (s *Source) ActivityIntervals(
	ctx context.Context,
	intervalType string,
) ([]model.IntervalRecord, error) {
	t, err := s.table(intervalsPath("activityIntervals", intervalType), "name", "start", "stop", "Duration")
	if err != nil {
		return nil, fmt.Errorf("activity intervals: %w", err)
	}
	ret := make([]model.IntervalRecord, t.rows)
	for i := range ret {
		if err := t.record(i, &ret[i]); err != nil {
			return nil, fmt.Errorf("activity intervals row %d: %w", i, err)
		}
		if ret[i].Start, err = floatValue(t.value("start", i)); err != nil {
			return nil, fmt.Errorf("activity intervals row %d: %w", i, err)
		}
		if ret[i].Stop, err = floatValue(t.value("stop", i)); err != nil {
			return nil, fmt.Errorf("activity intervals row %d: %w", i, err)
		}
	}
	s.l.Debug("activity intervals loaded",
		log.String("type", intervalType), log.Int("rows", len(ret)))
	return ret, nil
}

func (s *Source) ActivityTelemetry(ctx context.Context) (*model.Telemetry, error) {
	t, err := s.table(telemetryPath, "seconds", "latitude", "longitude")
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	ret := &model.Telemetry{
		Seconds:   make([]float64, t.rows),
		Latitude:  make([]float64, t.rows),
		Longitude: make([]float64, t.rows),
	}
	for i := 0; i < t.rows; i++ {
		if ret.Seconds[i], err = floatValue(t.value("seconds", i)); err != nil {
			return nil, fmt.Errorf("telemetry row %d: %w", i, err)
		}
		if ret.Latitude[i], err = floatValue(t.value("latitude", i)); err != nil {
			return nil, fmt.Errorf("telemetry row %d: %w", i, err)
		}
		if ret.Longitude[i], err = floatValue(t.value("longitude", i)); err != nil {
			return nil, fmt.Errorf("telemetry row %d: %w", i, err)
		}
	}
	return ret, nil
}

// table resolves a column table. A missing table is treated as empty.
func (s *Source) table(x jp.Expr, required ...string) (*table, error) {
	obj, ok := x.First(s.doc).(map[string]any)
	if !ok {
		return &table{}, nil
	}
	ret := &table{cols: make(map[string][]any)}
	for key, v := range obj {
		col, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: column %s is not a list", ErrInvalidValue, key)
		}
		ret.cols[key] = col
	}
	hasRows := lo.SomeBy(lo.Values(ret.cols), func(col []any) bool { return len(col) > 0 })
	for _, key := range required {
		if _, ok := ret.cols[key]; !ok && hasRows {
			return nil, fmt.Errorf("%w: column %s", ErrMissingSection, key)
		}
	}
	ret.rows = len(ret.cols[required[0]])
	for key, col := range ret.cols {
		if len(col) != ret.rows {
			return nil, fmt.Errorf("%w: column %s has %d rows, expected %d",
				ErrColumnLength, key, len(col), ret.rows)
		}
	}
	return ret, nil
}

type table struct {
	cols map[string][]any
	rows int
}

// value returns nil for absent columns
func (t *table) value(key string, row int) any {
	if col, ok := t.cols[key]; ok {
		return col[row]
	}
	return nil
}

// record fills the columns shared by season and activity intervals.
func (t *table) record(row int, r *model.IntervalRecord) error {
	r.Name = stringValue(t.value("name", row))
	if r.Name == "" {
		return fmt.Errorf("%w: empty segment name", ErrInvalidValue)
	}
	var err error
	if r.Duration, err = floatValue(t.value("Duration", row)); err != nil {
		return err
	}
	opt := func(key string) float64 {
		v, convErr := floatValue(t.value(key, row))
		if convErr != nil && err == nil {
			err = fmt.Errorf("%s: %w", key, convErr)
		}
		return v
	}
	r.Distance = opt("Distance")
	r.ElevationGain = opt("Elevation_Gain")
	r.ElevationLoss = opt("Elevation_Loss")
	r.AvgPower = model.Sensor(opt("Average_Power"))
	r.AvgHeartRate = model.Sensor(opt("Average_Heart_Rate"))
	r.AvgSpeed = opt("Average_Speed")
	r.AvgCadence = model.Sensor(opt("Average_Cadence"))
	r.BikeStress = model.Sensor(opt("BikeStress"))
	r.VAM = opt("VAM")
	return err
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// floatValue treats nil as 0
func floatValue(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidValue, v)
	}
}

func dateValue(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %v is not a date", ErrInvalidValue, v)
	}
	return time.Parse(time.DateOnly, s)
}

func timeValue(v any) (model.TimeOfDay, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %v is not a time", ErrInvalidValue, v)
	}
	return model.ParseTimeOfDay(s)
}

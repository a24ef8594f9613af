package basedata

import (
	"time"

	"github.com/mpapenbr/gc-segments/pkg/model"
)

type IntervalOption func(r *model.IntervalRecord)

func TestDate(s string) time.Time {
	//nolint:errcheck // test data is valid
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestTimeOfDay(s string) model.TimeOfDay {
	//nolint:errcheck // test data is valid
	t, _ := model.ParseTimeOfDay(s)
	return t
}

func SampleSeason() *model.Season {
	return &model.Season{
		Name:  "2024",
		Start: TestDate("2024-01-01"),
		End:   TestDate("2024-12-31"),
	}
}

// SampleTelemetry provides one sample per 10 seconds for one hour.
func SampleTelemetry() *model.Telemetry {
	ret := &model.Telemetry{}
	for i := 0; i <= 360; i++ {
		ret.Seconds = append(ret.Seconds, float64(i*10))
		ret.Latitude = append(ret.Latitude, 48.0+float64(i)*0.001)
		ret.Longitude = append(ret.Longitude, 11.0+float64(i)*0.001)
	}
	return ret
}

// SampleActivity starts 2024-05-01 10:00:00 and lasts one hour.
func SampleActivity() *model.Activity {
	return &model.Activity{
		Date:      TestDate("2024-05-01"),
		Time:      TestTimeOfDay("10:00:00"),
		Duration:  3600,
		Route:     "Hometrail",
		Telemetry: SampleTelemetry(),
	}
}

// SeasonInterval creates a season scoped interval.
func SeasonInterval(name, date, tod string, duration float64, opts ...IntervalOption) model.IntervalRecord {
	ret := model.IntervalRecord{
		Name:          name,
		Date:          TestDate(date),
		Time:          TestTimeOfDay(tod),
		Duration:      duration,
		Distance:      1,
		ElevationGain: 50,
		ElevationLoss: 5,
		AvgSpeed:      3600 / duration,
		VAM:           50 / duration * 3600,
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

// ActivityInterval creates an activity scoped interval starting at start
// seconds into the activity.
func ActivityInterval(name string, start, duration float64, opts ...IntervalOption) model.IntervalRecord {
	ret := model.IntervalRecord{
		Name:          name,
		Start:         start,
		Stop:          start + duration,
		Duration:      duration,
		Distance:      1,
		ElevationGain: 50,
		ElevationLoss: 5,
		AvgSpeed:      3600 / duration,
		VAM:           50 / duration * 3600,
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

// CurrentOf returns the season interval matching the activity interval
// of the given activity.
func CurrentOf(activity *model.Activity, r model.IntervalRecord) model.IntervalRecord {
	r.Date, r.Time = model.SplitTimestamp(model.OffsetTimestamp(activity.Start(), r.Start))
	r.Start, r.Stop = 0, 0
	return r
}

func WithPower(v float64) IntervalOption {
	return func(r *model.IntervalRecord) {
		r.AvgPower = model.Sensor(v)
	}
}

func WithHeartRate(v float64) IntervalOption {
	return func(r *model.IntervalRecord) {
		r.AvgHeartRate = model.Sensor(v)
	}
}

func WithCadence(v float64) IntervalOption {
	return func(r *model.IntervalRecord) {
		r.AvgCadence = model.Sensor(v)
	}
}

func WithBikeStress(v float64) IntervalOption {
	return func(r *model.IntervalRecord) {
		r.BikeStress = model.Sensor(v)
	}
}

func WithDistance(v float64) IntervalOption {
	return func(r *model.IntervalRecord) {
		r.Distance = v
	}
}

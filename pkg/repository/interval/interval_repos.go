//nolint:whitespace // can't make both editor and linter happy
package interval

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/repository"
)

// Create stores an activity scoped interval record.
func Create(
	ctx context.Context,
	conn repository.Querier,
	activityID int,
	intervalType string,
	r *model.IntervalRecord,
) error {
	_, err := conn.Exec(ctx, `
	insert into interval (
		activity_id, interval_type, name, start_offset, stop_offset,
		duration, distance, elevation_gain, elevation_loss, avg_speed, vam,
		avg_power, avg_heart_rate, avg_cadence, bike_stress
	) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		activityID, intervalType, r.Name, r.Start, r.Stop,
		r.Duration, r.Distance, r.ElevationGain, r.ElevationLoss, r.AvgSpeed, r.VAM,
		repository.SensorArg(r.AvgPower),
		repository.SensorArg(r.AvgHeartRate),
		repository.SensorArg(r.AvgCadence),
		repository.SensorArg(r.BikeStress),
	)
	return err
}

// LoadByActivity returns the intervals of one activity ordered by start offset.
// Date and Time of the records are left empty.
func LoadByActivity(
	ctx context.Context,
	conn repository.Querier,
	activityID int,
	intervalType string,
) ([]model.IntervalRecord, error) {
	rows, err := conn.Query(ctx, selector+`
	where i.activity_id=$1 and i.interval_type=$2
	order by i.start_offset, i.id
	`, activityID, intervalType)
	if err != nil {
		return nil, err
	}
	return collect(rows, false)
}

// LoadBySeason returns the intervals of all activities that started within
// the season. Date and Time are the activity start shifted by the start offset.
func LoadBySeason(
	ctx context.Context,
	conn repository.Querier,
	season *model.Season,
	intervalType string,
) ([]model.IntervalRecord, error) {
	rows, err := conn.Query(ctx, selector+`
	where i.interval_type=$1
	and a.start_ts >= $2 and a.start_ts < $3
	order by a.start_ts, i.start_offset, i.id
	`, intervalType, season.Start, model.DateOf(season.End).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return collect(rows, true)
}

const selector = `
	select a.start_ts, i.name, i.start_offset, i.stop_offset,
	i.duration, i.distance, i.elevation_gain, i.elevation_loss, i.avg_speed, i.vam,
	i.avg_power, i.avg_heart_rate, i.avg_cadence, i.bike_stress
	from interval i join activity a on a.id=i.activity_id
	`

func collect(rows pgx.Rows, seasonScope bool) ([]model.IntervalRecord, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.IntervalRecord, error) {
		var item model.IntervalRecord
		var start time.Time
		var power, heartRate, cadence, stress *float64
		if err := row.Scan(
			&start, &item.Name, &item.Start, &item.Stop,
			&item.Duration, &item.Distance, &item.ElevationGain, &item.ElevationLoss,
			&item.AvgSpeed, &item.VAM,
			&power, &heartRate, &cadence, &stress,
		); err != nil {
			return item, err
		}
		item.AvgPower = repository.SensorColumn(power)
		item.AvgHeartRate = repository.SensorColumn(heartRate)
		item.AvgCadence = repository.SensorColumn(cadence)
		item.BikeStress = repository.SensorColumn(stress)
		if seasonScope {
			item.Date, item.Time = model.SplitTimestamp(
				model.OffsetTimestamp(start, item.Start))
			item.Start, item.Stop = 0, 0
		}
		return item, nil
	})
}

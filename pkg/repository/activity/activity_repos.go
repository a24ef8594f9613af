//nolint:whitespace // can't make both editor and linter happy
package activity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/repository"
)

// Create stores the activity including its telemetry (if any).
func Create(ctx context.Context, conn repository.Querier, a *model.Activity) (int, error) {
	var id int
	err := conn.QueryRow(ctx, `
	insert into activity (start_ts, duration, route) values ($1,$2,$3)
	returning id
	`, a.Start(), a.Duration, a.Route).Scan(&id)
	if err != nil {
		return 0, err
	}
	if a.Telemetry != nil {
		if err := CreateTelemetry(ctx, conn, id, a.Telemetry); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func CreateTelemetry(
	ctx context.Context,
	conn repository.Querier,
	activityID int,
	t *model.Telemetry,
) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := conn.Exec(ctx, `
	insert into telemetry (activity_id, seconds, latitude, longitude)
	values ($1,$2,$3,$4)
	`, activityID, t.Seconds, t.Latitude, t.Longitude)
	return err
}

// LoadByID loads the activity metadata without telemetry.
func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Activity, error,
) {
	row := conn.QueryRow(ctx,
		"select start_ts, duration, route from activity where id=$1", id)
	var item model.Activity
	var start time.Time
	if err := row.Scan(&start, &item.Duration, &item.Route); err != nil {
		return nil, err
	}
	item.Date, item.Time = model.SplitTimestamp(start)
	return &item, nil
}

// LoadTelemetry returns empty telemetry if none was recorded.
func LoadTelemetry(ctx context.Context, conn repository.Querier, activityID int) (
	*model.Telemetry, error,
) {
	row := conn.QueryRow(ctx, `
	select seconds, latitude, longitude from telemetry where activity_id=$1
	`, activityID)
	var item model.Telemetry
	err := row.Scan(&item.Seconds, &item.Latitude, &item.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return &model.Telemetry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// deletes an entry from the database, returns number of rows deleted.
// Telemetry and intervals of the activity are removed as well.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from activity where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

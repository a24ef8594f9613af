//nolint:whitespace // can't make both editor and linter happy
package season

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/repository"
)

// Create stores the season and returns its id.
func Create(ctx context.Context, conn repository.Querier, s *model.Season) (int, error) {
	var id int
	err := conn.QueryRow(ctx, `
	insert into season (name, start_date, end_date) values ($1,$2,$3)
	returning id
	`, s.Name, s.Start, s.End).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Select marks the season as the one used for leaderboards.
// Returns the number of affected seasons, 0 if the id is unknown.
func Select(ctx context.Context, conn repository.Querier, id int) (int, error) {
	if _, err := conn.Exec(ctx,
		"update season set selected=false where selected and id<>$1", id); err != nil {
		return 0, err
	}
	cmdTag, err := conn.Exec(ctx, "update season set selected=true where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// LoadSelected returns pgx.ErrNoRows if no season is selected.
func LoadSelected(ctx context.Context, conn repository.Querier) (*model.Season, error) {
	return load(conn.QueryRow(ctx, selector+" where selected"))
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Season, error,
) {
	return load(conn.QueryRow(ctx, selector+" where id=$1", id))
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from season where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

const selector = `select name, start_date, end_date from season`

func load(row pgx.Row) (*model.Season, error) {
	var item model.Season
	if err := row.Scan(&item.Name, &item.Start, &item.End); err != nil {
		return nil, err
	}
	return &item, nil
}

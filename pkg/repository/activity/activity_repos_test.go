//nolint:funlen,errcheck // ok for this test code
package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/gc-segments/pkg/model"
	bd "github.com/mpapenbr/gc-segments/testsupport/basedata"
	"github.com/mpapenbr/gc-segments/testsupport/testdb"
)

func TestCreateAndLoad(t *testing.T) {
	pool := testdb.InitTestDB()
	ctx := context.Background()
	sample := bd.SampleActivity()

	id, err := Create(ctx, pool, sample)
	assert.NilError(t, err)

	got, err := LoadByID(ctx, pool, id)
	assert.NilError(t, err)
	assert.Assert(t, got.Telemetry == nil)
	assert.Equal(t, got.Route, "Hometrail")
	assert.Equal(t, got.Duration, 3600.0)
	assert.Assert(t, got.Start().Equal(sample.Start()))

	tel, err := LoadTelemetry(ctx, pool, id)
	assert.NilError(t, err)
	if diff := cmp.Diff(sample.Telemetry, tel); diff != "" {
		t.Errorf("LoadTelemetry() mismatch (-want +got):\n%s", diff)
	}

	_, err = LoadByID(ctx, pool, id+1)
	assert.Assert(t, errors.Is(err, pgx.ErrNoRows))
}

func TestLoadTelemetry_NoneRecorded(t *testing.T) {
	pool := testdb.InitTestDB()
	ctx := context.Background()
	a := bd.SampleActivity()
	a.Telemetry = nil

	id, err := Create(ctx, pool, a)
	assert.NilError(t, err)
	tel, err := LoadTelemetry(ctx, pool, id)
	assert.NilError(t, err)
	assert.Equal(t, tel.Len(), 0)
}

func TestCreate_InvalidTelemetry(t *testing.T) {
	pool := testdb.InitTestDB()
	ctx := context.Background()
	a := bd.SampleActivity()
	a.Telemetry = &model.Telemetry{Seconds: []float64{0, 1}, Latitude: []float64{1}}

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := Create(ctx, tx, a)
		return err
	})
	assert.Assert(t, errors.Is(err, model.ErrTelemetryLength))
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDB()
	ctx := context.Background()
	id, err := Create(ctx, pool, bd.SampleActivity())
	assert.NilError(t, err)

	n, err := DeleteByID(ctx, pool, id)
	assert.NilError(t, err)
	assert.Equal(t, n, 1)

	// telemetry is gone as well
	tel, err := LoadTelemetry(ctx, pool, id)
	assert.NilError(t, err)
	assert.Equal(t, tel.Len(), 0)

	n, err = DeleteByID(ctx, pool, id)
	assert.NilError(t, err)
	assert.Equal(t, n, 0)
}

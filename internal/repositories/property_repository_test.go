package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

/* ------------------------------------------------------------------
   Minimal DB/Tx fakes. Embedding the pgx.Tx interface keeps the fake
   small; only the methods CreateWithLocation touches are overridden.
------------------------------------------------------------------ */

type scanFunc func(dest ...interface{}) error

func (f scanFunc) Scan(dest ...interface{}) error { return f(dest...) }

type fakeTx struct {
	pgx.Tx
	rows []pgx.Row
	next int

	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	r := t.rows[t.next]
	t.next++
	return r
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	panic("not used")
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	panic("not used")
}

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	panic("not used")
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return d.tx, nil
}

func locationInsertRow(id int64) pgx.Row {
	return scanFunc(func(dest ...interface{}) error {
		*(dest[0].(*int64)) = id
		return nil
	})
}

func TestCreateWithLocationCommitsBothRows(t *testing.T) {
	posted := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	tx := &fakeTx{rows: []pgx.Row{
		locationInsertRow(10),
		scanFunc(func(dest ...interface{}) error {
			*(dest[0].(*int64)) = 77
			*(dest[1].(*time.Time)) = posted
			return nil
		}),
	}}
	repo := NewPropertyRepository(&fakeDB{tx: tx})

	loc := &models.Location{Address: "123 Main St"}
	p := &models.Property{Name: "Sunny Loft", PropertyType: models.PropertyTypeApartment}

	err := repo.CreateWithLocation(context.Background(), loc, p)
	require.NoError(t, err)
	require.True(t, tx.committed)
	require.False(t, tx.rolledBack)

	require.Equal(t, int64(10), loc.ID)
	require.Equal(t, int64(10), p.LocationID)
	require.Equal(t, int64(77), p.ID)
	require.Equal(t, posted, p.PostedDate)
	require.Same(t, loc, p.Location)
}

func TestCreateWithLocationRollsBackOnPropertyInsertFailure(t *testing.T) {
	insertErr := errors.New("enum value out of range")
	tx := &fakeTx{rows: []pgx.Row{
		locationInsertRow(10),
		scanFunc(func(dest ...interface{}) error { return insertErr }),
	}}
	repo := NewPropertyRepository(&fakeDB{tx: tx})

	loc := &models.Location{Address: "123 Main St"}
	p := &models.Property{Name: "Sunny Loft"}

	err := repo.CreateWithLocation(context.Background(), loc, p)
	require.ErrorIs(t, err, insertErr)
	require.False(t, tx.committed)
	require.True(t, tx.rolledBack, "the location insert must not survive a failed property insert")
}

func TestCreateWithLocationRollsBackOnLocationInsertFailure(t *testing.T) {
	insertErr := errors.New("null value in column")
	tx := &fakeTx{rows: []pgx.Row{
		scanFunc(func(dest ...interface{}) error { return insertErr }),
	}}
	repo := NewPropertyRepository(&fakeDB{tx: tx})

	err := repo.CreateWithLocation(context.Background(), &models.Location{}, &models.Property{})
	require.ErrorIs(t, err, insertErr)
	require.False(t, tx.committed)
	require.True(t, tx.rolledBack)
}

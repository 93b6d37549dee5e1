package repositories

import (
	"context"
)

// LocationRepository covers the maintenance surface of the Location table.
// Location creation happens inside PropertyRepository.CreateWithLocation so
// the two inserts share a transaction.
type LocationRepository interface {
	// DeleteOrphans removes Location rows no Property references. Such
	// rows can only come from historical, pre-transactional writes.
	DeleteOrphans(ctx context.Context) (int64, error)
}

type locationRepo struct {
	db DB
}

func NewLocationRepository(db DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        DELETE FROM "Location" l
        WHERE NOT EXISTS (SELECT 1 FROM "Property" p WHERE p."locationId" = l.id)
    `)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

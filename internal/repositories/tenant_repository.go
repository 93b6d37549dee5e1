package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

type TenantRepository interface {
	GetByCognitoID(ctx context.Context, cognitoID string) (*models.Tenant, error)
	Create(ctx context.Context, t *models.Tenant) error
	Update(ctx context.Context, t *models.Tenant) error

	ListFavorites(ctx context.Context, tenantID int64) ([]*models.Property, error)
	HasFavorite(ctx context.Context, tenantID, propertyID int64) (bool, error)
	AddFavorite(ctx context.Context, tenantID, propertyID int64) error
	RemoveFavorite(ctx context.Context, tenantID, propertyID int64) error

	// ListCurrentResidences returns properties the tenant holds a lease on.
	ListCurrentResidences(ctx context.Context, cognitoID string) ([]*models.Property, error)
}

type tenantRepo struct {
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, "cognitoId", name, email, "phoneNumber"
        FROM "Tenant" WHERE "cognitoId" = $1
    `, cognitoID)

	var t models.Tenant
	err := row.Scan(&t.ID, &t.CognitoID, &t.Name, &t.Email, &t.PhoneNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO "Tenant" ("cognitoId", name, email, "phoneNumber")
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, t.CognitoID, t.Name, t.Email, t.PhoneNumber).Scan(&t.ID)
}

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE "Tenant" SET name = $1, email = $2, "phoneNumber" = $3
        WHERE "cognitoId" = $4
    `, t.Name, t.Email, t.PhoneNumber, t.CognitoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// The favorites join table is Prisma's implicit m:n table: "A" references
// Property.id, "B" references Tenant.id.

func (r *tenantRepo) ListFavorites(ctx context.Context, tenantID int64) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+`
        JOIN "_TenantFavorites" f ON f."A" = p.id
        WHERE f."B" = $1
    `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *tenantRepo) HasFavorite(ctx context.Context, tenantID, propertyID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM "_TenantFavorites" WHERE "A" = $1 AND "B" = $2)
    `, propertyID, tenantID).Scan(&exists)
	return exists, err
}

func (r *tenantRepo) AddFavorite(ctx context.Context, tenantID, propertyID int64) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO "_TenantFavorites" ("A", "B") VALUES ($1, $2)
    `, propertyID, tenantID)
	return err
}

// RemoveFavorite deletes the association unconditionally; removing an
// absent favorite is indistinguishable from removing a present one.
func (r *tenantRepo) RemoveFavorite(ctx context.Context, tenantID, propertyID int64) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM "_TenantFavorites" WHERE "A" = $1 AND "B" = $2
    `, propertyID, tenantID)
	return err
}

func (r *tenantRepo) ListCurrentResidences(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+`
        WHERE p.id IN (SELECT "propertyId" FROM "Lease" WHERE "tenantCognitoId" = $1)
    `, cognitoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

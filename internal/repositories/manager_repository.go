package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

type ManagerRepository interface {
	GetByCognitoID(ctx context.Context, cognitoID string) (*models.Manager, error)
	Create(ctx context.Context, m *models.Manager) error
	Update(ctx context.Context, m *models.Manager) error
}

type managerRepo struct {
	db DB
}

func NewManagerRepository(db DB) ManagerRepository {
	return &managerRepo{db: db}
}

func (r *managerRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*models.Manager, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, "cognitoId", name, email, "phoneNumber"
        FROM "Manager" WHERE "cognitoId" = $1
    `, cognitoID)

	var m models.Manager
	err := row.Scan(&m.ID, &m.CognitoID, &m.Name, &m.Email, &m.PhoneNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *managerRepo) Create(ctx context.Context, m *models.Manager) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO "Manager" ("cognitoId", name, email, "phoneNumber")
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, m.CognitoID, m.Name, m.Email, m.PhoneNumber).Scan(&m.ID)
}

func (r *managerRepo) Update(ctx context.Context, m *models.Manager) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE "Manager" SET name = $1, email = $2, "phoneNumber" = $3
        WHERE "cognitoId" = $4
    `, m.Name, m.Email, m.PhoneNumber, m.CognitoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

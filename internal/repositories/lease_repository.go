package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

type LeaseRepository interface {
	ListAll(ctx context.Context) ([]*models.Lease, error)
	ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Lease, error)
	ListPayments(ctx context.Context, leaseID int64) ([]*models.Payment, error)
}

type leaseRepo struct {
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) ListAll(ctx context.Context) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, baseSelectLease()+` ORDER BY "startDate"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeases(rows)
}

func (r *leaseRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, baseSelectLease()+` WHERE "propertyId" = $1 ORDER BY "startDate"`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeases(rows)
}

func (r *leaseRepo) ListPayments(ctx context.Context, leaseID int64) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, "amountDue", "amountPaid", "dueDate", "paymentDate", "paymentStatus"::text, "leaseId"
        FROM "Payment" WHERE "leaseId" = $1 ORDER BY "dueDate"
    `, leaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		var p models.Payment
		var status string
		if err := rows.Scan(&p.ID, &p.AmountDue, &p.AmountPaid, &p.DueDate, &p.PaymentDate, &status, &p.LeaseID); err != nil {
			return nil, err
		}
		p.PaymentStatus = models.PaymentStatus(status)
		out = append(out, &p)
	}
	return out, rows.Err()
}

func baseSelectLease() string {
	return `
        SELECT id, "startDate", "endDate", rent, deposit, "propertyId", "tenantCognitoId"
        FROM "Lease"
    `
}

func collectLeases(rows pgx.Rows) ([]*models.Lease, error) {
	var out []*models.Lease
	for rows.Next() {
		var l models.Lease
		if err := rows.Scan(&l.ID, &l.StartDate, &l.EndDate, &l.Rent, &l.Deposit, &l.PropertyID, &l.TenantCognitoID); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

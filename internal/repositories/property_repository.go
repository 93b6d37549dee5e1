package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	// CreateWithLocation inserts the Location row and the Property row in a
	// single transaction; a failed property insert leaves no orphaned
	// location behind.
	CreateWithLocation(ctx context.Context, loc *models.Location, p *models.Property) error

	GetByID(ctx context.Context, id int64) (*models.Property, error)
	Search(ctx context.Context, filter PropertyFilter) ([]*models.Property, error)
	ListByManagerCognitoID(ctx context.Context, cognitoID string) ([]*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) CreateWithLocation(ctx context.Context, loc *models.Location, p *models.Property) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
        INSERT INTO "Location" (address, city, state, country, "postalCode", coordinates)
        VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326))
        RETURNING id
    `,
		loc.Address,
		loc.City,
		loc.State,
		loc.Country,
		loc.PostalCode,
		loc.Coordinates.Longitude,
		loc.Coordinates.Latitude,
	).Scan(&loc.ID)
	if err != nil {
		return err
	}

	p.LocationID = loc.ID
	err = tx.QueryRow(ctx, `
        INSERT INTO "Property" (
            name, description, "pricePerMonth", "securityDeposit", "applicationFee",
            "photoUrls", amenities, highlights,
            "isPetsAllowed", "isParkingIncluded",
            beds, baths, "squareFeet", "propertyType",
            "locationId", "managerCognitoId"
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7::"Amenity"[], $8::"Highlight"[],
            $9, $10,
            $11, $12, $13, $14::"PropertyType",
            $15, $16
        )
        RETURNING id, "postedDate"
    `,
		p.Name,
		p.Description,
		p.PricePerMonth,
		p.SecurityDeposit,
		p.ApplicationFee,
		p.PhotoUrls,
		p.Amenities,
		p.Highlights,
		p.IsPetsAllowed,
		p.IsParkingIncluded,
		p.Beds,
		p.Baths,
		p.SquareFeet,
		string(p.PropertyType),
		p.LocationID,
		p.ManagerCognitoID,
	).Scan(&p.ID, &p.PostedDate)
	if err != nil {
		return err
	}

	p.Location = loc
	return tx.Commit(ctx)
}

func (r *propertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+` WHERE p.id = $1`, id)
	return scanPropertyWithLocation(row)
}

func (r *propertyRepo) Search(ctx context.Context, filter PropertyFilter) ([]*models.Property, error) {
	where, args := filter.BuildWhere()

	rows, err := r.db.Query(ctx, baseSelectProperty()+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertyRepo) ListByManagerCognitoID(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+` WHERE p."managerCognitoId" = $1 ORDER BY p."postedDate"`, cognitoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

// The base query always joins Property to its Location; the stored PostGIS
// point is projected back to plain longitude/latitude here so callers never
// see the native spatial encoding.
func baseSelectProperty() string {
	return `
        SELECT
            p.id, p.name, p.description,
            p."pricePerMonth", p."securityDeposit", p."applicationFee",
            p."photoUrls", p.amenities::text[], p.highlights::text[],
            p."isPetsAllowed", p."isParkingIncluded",
            p.beds, p.baths, p."squareFeet",
            p."propertyType"::text, p."postedDate",
            p."locationId", p."managerCognitoId",
            l.id, l.address, l.city, l.state, l.country, l."postalCode",
            ST_X(l.coordinates::geometry), ST_Y(l.coordinates::geometry)
        FROM "Property" p
        JOIN "Location" l ON p."locationId" = l.id
    `
}

func scanPropertyWithLocation(row pgx.Row) (*models.Property, error) {
	var p models.Property
	var l models.Location
	var propertyType string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PricePerMonth,
		&p.SecurityDeposit,
		&p.ApplicationFee,
		&p.PhotoUrls,
		&p.Amenities,
		&p.Highlights,
		&p.IsPetsAllowed,
		&p.IsParkingIncluded,
		&p.Beds,
		&p.Baths,
		&p.SquareFeet,
		&propertyType,
		&p.PostedDate,
		&p.LocationID,
		&p.ManagerCognitoID,
		&l.ID,
		&l.Address,
		&l.City,
		&l.State,
		&l.Country,
		&l.PostalCode,
		&l.Coordinates.Longitude,
		&l.Coordinates.Latitude,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.PropertyType = models.PropertyType(propertyType)
	p.Location = &l
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]*models.Property, error) {
	var out []*models.Property
	for rows.Next() {
		p, err := scanPropertyWithLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

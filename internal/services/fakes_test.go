package services

import (
	"context"
	"fmt"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/models"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/repositories"
	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

func init() {
	utils.InitLogger("rental-api-test")
}

/* ------------------------------------------------------------------
   In-memory fakes for the repository and adapter interfaces.
------------------------------------------------------------------ */

type fakePropertyRepo struct {
	properties map[int64]*models.Property

	createCalls int
	createErr   error
	searchOut   []*models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[int64]*models.Property{}}
}

func (f *fakePropertyRepo) CreateWithLocation(ctx context.Context, loc *models.Location, p *models.Property) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	loc.ID = int64(len(f.properties) + 1000)
	p.ID = int64(len(f.properties) + 1)
	p.LocationID = loc.ID
	p.Location = loc
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) Search(ctx context.Context, filter repositories.PropertyFilter) ([]*models.Property, error) {
	return f.searchOut, nil
}

func (f *fakePropertyRepo) ListByManagerCognitoID(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.properties {
		if p.ManagerCognitoID == cognitoID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeManagerRepo struct {
	managers map[string]*models.Manager
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{managers: map[string]*models.Manager{}}
}

func (f *fakeManagerRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*models.Manager, error) {
	return f.managers[cognitoID], nil
}

func (f *fakeManagerRepo) Create(ctx context.Context, m *models.Manager) error {
	f.managers[m.CognitoID] = m
	return nil
}

func (f *fakeManagerRepo) Update(ctx context.Context, m *models.Manager) error {
	f.managers[m.CognitoID] = m
	return nil
}

type fakeTenantRepo struct {
	tenants    map[string]*models.Tenant
	favorites  map[string]bool // "tenantID/propertyID"
	residences map[string][]*models.Property

	removeCalls int
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:    map[string]*models.Tenant{},
		favorites:  map[string]bool{},
		residences: map[string][]*models.Property{},
	}
}

func favKey(tenantID, propertyID int64) string {
	return fmt.Sprintf("%d/%d", tenantID, propertyID)
}

func (f *fakeTenantRepo) GetByCognitoID(ctx context.Context, cognitoID string) (*models.Tenant, error) {
	return f.tenants[cognitoID], nil
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	f.tenants[t.CognitoID] = t
	return nil
}

func (f *fakeTenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	f.tenants[t.CognitoID] = t
	return nil
}

func (f *fakeTenantRepo) ListFavorites(ctx context.Context, tenantID int64) ([]*models.Property, error) {
	var out []*models.Property
	for key, present := range f.favorites {
		if !present {
			continue
		}
		var tid, pid int64
		fmt.Sscanf(key, "%d/%d", &tid, &pid)
		if tid == tenantID {
			out = append(out, &models.Property{ID: pid})
		}
	}
	return out, nil
}

func (f *fakeTenantRepo) HasFavorite(ctx context.Context, tenantID, propertyID int64) (bool, error) {
	return f.favorites[favKey(tenantID, propertyID)], nil
}

func (f *fakeTenantRepo) AddFavorite(ctx context.Context, tenantID, propertyID int64) error {
	f.favorites[favKey(tenantID, propertyID)] = true
	return nil
}

func (f *fakeTenantRepo) RemoveFavorite(ctx context.Context, tenantID, propertyID int64) error {
	f.removeCalls++
	delete(f.favorites, favKey(tenantID, propertyID))
	return nil
}

func (f *fakeTenantRepo) ListCurrentResidences(ctx context.Context, cognitoID string) ([]*models.Property, error) {
	return f.residences[cognitoID], nil
}

type fakeGeocoder struct {
	point utils.Point
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, addr utils.Address) (utils.Point, error) {
	f.calls++
	return f.point, f.err
}

type fakeStorage struct {
	urls  []string
	err   error
	calls int
}

func (f *fakeStorage) UploadPhotos(ctx context.Context, photos []utils.PhotoUpload) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.urls != nil {
		return f.urls, nil
	}
	urls := make([]string, len(photos))
	for i, p := range photos {
		urls[i] = "https://bucket.s3.amazonaws.com/properties/" + p.Filename
	}
	return urls, nil
}

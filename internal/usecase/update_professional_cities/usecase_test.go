package update_professional_cities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
	cityRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/city"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
)

const testTenant = "tenant-1"

type fakeProfRepo struct{ byID map[string]*domain.Professional }

func (f *fakeProfRepo) GetByID(_ context.Context, _, id string) (*domain.Professional, error) {
	prof, ok := f.byID[id]
	if !ok {
		return nil, profRepo.ErrProfessionalNotFound
	}
	return prof, nil
}

type fakeCityRepo struct{ byID map[string]*domain.City }

func (f *fakeCityRepo) GetByID(_ context.Context, _, id string) (*domain.City, error) {
	city, ok := f.byID[id]
	if !ok {
		return nil, cityRepo.ErrCityNotFound
	}
	return city, nil
}

type fakeLinkRepo struct {
	links    []domain.ProfessionalCityLink
	replaced *[]string // набор из последнего ReplaceForProfessional
}

func (f *fakeLinkRepo) ListByProfessional(_ context.Context, _, professionalID string) ([]domain.ProfessionalCityLink, error) {
	result := make([]domain.ProfessionalCityLink, 0)
	for _, link := range f.links {
		if link.ProfessionalID == professionalID {
			result = append(result, link)
		}
	}
	return result, nil
}

func (f *fakeLinkRepo) ReplaceForProfessional(_ context.Context, tenantID, professionalID string, cityIDs []string) error {
	f.replaced = &cityIDs

	kept := make([]domain.ProfessionalCityLink, 0)
	for _, link := range f.links {
		if link.ProfessionalID != professionalID {
			kept = append(kept, link)
		}
	}
	for _, cityID := range cityIDs {
		kept = append(kept, domain.ProfessionalCityLink{
			TenantID:       tenantID,
			ProfessionalID: professionalID,
			CityID:         cityID,
		})
	}
	f.links = kept
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(links *fakeLinkRepo) *UseCase {
	return NewUseCase(
		&fakeProfRepo{byID: map[string]*domain.Professional{
			"p1": {ID: "p1", Name: "Ana Souza"},
		}},
		&fakeCityRepo{byID: map[string]*domain.City{
			"c1": {ID: "c1", Name: "Rio de Janeiro", State: "RJ", Active: true},
			"c2": {ID: "c2", Name: "São Paulo", State: "SP", Active: true},
		}},
		links,
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_ReplacesCitySet(t *testing.T) {
	links := &fakeLinkRepo{links: []domain.ProfessionalCityLink{
		{TenantID: testTenant, ProfessionalID: "p1", CityID: "c1"},
	}}
	uc := newTestUseCase(links)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		ProfessionalID: "p1",
		CityIDs:        []string{"c1", "c2"},
	})

	require.NoError(t, err)
	require.NotNil(t, links.replaced)
	assert.Equal(t, []string{"c1", "c2"}, *links.replaced)
	assert.Equal(t, "p1", resp.ProfessionalID)
	assert.Equal(t, []string{"c1", "c2"}, resp.CityIDs)
}

func TestExecute_EmptySetRemovesAllCities(t *testing.T) {
	links := &fakeLinkRepo{links: []domain.ProfessionalCityLink{
		{TenantID: testTenant, ProfessionalID: "p1", CityID: "c1"},
		{TenantID: testTenant, ProfessionalID: "p1", CityID: "c2"},
	}}
	uc := newTestUseCase(links)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		ProfessionalID: "p1",
		CityIDs:        nil,
	})

	require.NoError(t, err)
	require.NotNil(t, links.replaced)
	assert.Empty(t, *links.replaced)
	assert.Empty(t, resp.CityIDs)
}

func TestExecute_DeduplicatesCityIDs(t *testing.T) {
	links := &fakeLinkRepo{}
	uc := newTestUseCase(links)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		ProfessionalID: "p1",
		CityIDs:        []string{"c1", "c2", "c1"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, *links.replaced)
	assert.Equal(t, []string{"c1", "c2"}, resp.CityIDs)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	links := &fakeLinkRepo{}
	uc := newTestUseCase(links)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		ProfessionalID: "ghost",
		CityIDs:        []string{"c1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, links.replaced)
}

func TestExecute_UnknownCityRejectsWholeSet(t *testing.T) {
	links := &fakeLinkRepo{links: []domain.ProfessionalCityLink{
		{TenantID: testTenant, ProfessionalID: "p1", CityID: "c1"},
	}}
	uc := newTestUseCase(links)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		ProfessionalID: "p1",
		CityIDs:        []string{"c1", "ghost"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.Contains(t, err.Error(), "ghost")
	// Набор не тронут: проверки выполняются до замены
	assert.Nil(t, links.replaced)
}

func TestExecute_ValidatesInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing tenant", req: &Request{ProfessionalID: "p1"}},
		{name: "missing professional", req: &Request{TenantID: testTenant}},
		{name: "empty city id in set", req: &Request{TenantID: testTenant, ProfessionalID: "p1", CityIDs: []string{"c1", ""}}},
	}

	links := &fakeLinkRepo{}
	uc := newTestUseCase(links)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Nil(t, links.replaced)
}

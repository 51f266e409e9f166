package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

func testCities() []domain.City {
	return []domain.City{
		{ID: "c1", Name: "Rio de Janeiro", State: "RJ", Active: true},
		{ID: "c2", Name: "São Paulo", State: "SP", Active: true},
		{ID: "c3", Name: "Niterói", State: "RJ", Active: false},
	}
}

func TestEligibilityIndex_CanServe(t *testing.T) {
	ix := NewEligibilityIndex([]domain.ProfessionalCityLink{
		{ProfessionalID: "p1", CityID: "c1"},
		{ProfessionalID: "p1", CityID: "c2"},
		{ProfessionalID: "p2", CityID: "c2"},
	}, testCities())

	assert.True(t, ix.CanServe("p1", "c1"))
	assert.True(t, ix.CanServe("p1", "c2"))
	assert.False(t, ix.CanServe("p2", "c1"))
	assert.False(t, ix.CanServe("p3", "c1"))
}

func TestEligibilityIndex_CanServe_IgnoresActiveFlag(t *testing.T) {
	// Membership проверяется по таблице связей, флаг active города не участвует
	ix := NewEligibilityIndex([]domain.ProfessionalCityLink{
		{ProfessionalID: "p1", CityID: "c3"},
	}, testCities())

	assert.True(t, ix.CanServe("p1", "c3"))
}

func TestEligibilityIndex_CitiesFor_FiltersInactive(t *testing.T) {
	ix := NewEligibilityIndex([]domain.ProfessionalCityLink{
		{ProfessionalID: "p1", CityID: "c1"},
		{ProfessionalID: "p1", CityID: "c3"},
	}, testCities())

	cities := ix.CitiesFor("p1")
	require.Len(t, cities, 1)
	assert.Equal(t, "Rio de Janeiro", cities[0].Name)
}

func TestEligibilityIndex_CitiesFor_PreservesCityOrder(t *testing.T) {
	ix := NewEligibilityIndex([]domain.ProfessionalCityLink{
		{ProfessionalID: "p1", CityID: "c2"},
		{ProfessionalID: "p1", CityID: "c1"},
	}, testCities())

	cities := ix.CitiesFor("p1")
	require.Len(t, cities, 2)
	assert.Equal(t, "c1", cities[0].ID)
	assert.Equal(t, "c2", cities[1].ID)
}

func TestEligibilityIndex_CitiesFor_NoLinks(t *testing.T) {
	ix := NewEligibilityIndex(nil, testCities())

	cities := ix.CitiesFor("p1")
	require.NotNil(t, cities)
	assert.Empty(t, cities)
}

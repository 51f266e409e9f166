package move_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

const testTenant = "tenant-1"

type fakeApptRepo struct {
	byID    map[string]*domain.Appointment
	day     []*domain.Appointment
	updated *domain.Appointment
}

func (f *fakeApptRepo) GetByID(_ context.Context, _, id string) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeApptRepo) GetByDate(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return f.day, nil
}

func (f *fakeApptRepo) Update(_ context.Context, appt *domain.Appointment) error {
	f.updated = appt
	return nil
}

type fakeProfRepo struct {
	byID map[string]*domain.Professional
}

func (f *fakeProfRepo) GetByID(_ context.Context, _, id string) (*domain.Professional, error) {
	prof, ok := f.byID[id]
	if !ok {
		return nil, profRepo.ErrProfessionalNotFound
	}
	return prof, nil
}

type fakeServiceRepo struct {
	services []domain.Service
}

func (f *fakeServiceRepo) List(_ context.Context, _ string) ([]domain.Service, error) {
	return f.services, nil
}

type fakeCityRepo struct {
	cities []domain.City
}

func (f *fakeCityRepo) List(_ context.Context, _ string, _ bool) ([]domain.City, error) {
	return f.cities, nil
}

type fakeLinkRepo struct {
	links []domain.ProfessionalCityLink
}

func (f *fakeLinkRepo) ListByTenant(_ context.Context, _ string) ([]domain.ProfessionalCityLink, error) {
	return f.links, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate(hour, minute int) time.Time {
	return time.Date(2025, time.October, 15, hour, minute, 0, 0, time.UTC)
}

func testAppointment(id, profID, cityID string, hour, minute int) *domain.Appointment {
	return &domain.Appointment{
		ID:               id,
		TenantID:         testTenant,
		ClientID:         "client-1",
		ClientName:       "Mariana Costa",
		ProfessionalID:   profID,
		ProfessionalName: "Ana Souza",
		ServiceID:        "svc-1",
		ServiceName:      "Limpeza de Pele Profunda",
		CityID:           cityID,
		CityName:         "Rio de Janeiro",
		Date:             testDate(hour, minute),
		Status:           domain.StatusConfirmed,
	}
}

func newTestUseCase(appts *fakeApptRepo) *UseCase {
	profs := &fakeProfRepo{byID: map[string]*domain.Professional{
		"p1": {ID: "p1", TenantID: testTenant, Name: "Ana Souza", Status: domain.ProfessionalActive},
		"p2": {ID: "p2", TenantID: testTenant, Name: "Bruno Lima", Status: domain.ProfessionalActive},
		"p3": {ID: "p3", TenantID: testTenant, Name: "Clara Dias", Status: domain.ProfessionalActive},
	}}
	services := &fakeServiceRepo{services: []domain.Service{
		{ID: "svc-1", TenantID: testTenant, Name: "Limpeza de Pele Profunda", DurationMinutes: 60},
	}}
	cities := &fakeCityRepo{cities: []domain.City{
		{ID: "c1", TenantID: testTenant, Name: "Rio de Janeiro", State: "RJ", Active: true},
		{ID: "c2", TenantID: testTenant, Name: "São Paulo", State: "SP", Active: true},
	}}
	links := &fakeLinkRepo{links: []domain.ProfessionalCityLink{
		{ID: "l1", TenantID: testTenant, ProfessionalID: "p1", CityID: "c1"},
		{ID: "l2", TenantID: testTenant, ProfessionalID: "p2", CityID: "c1"},
		{ID: "l3", TenantID: testTenant, ProfessionalID: "p3", CityID: "c2"},
	}}

	return NewUseCase(appts, profs, services, cities, links, fakeTxManager{}, nopLogger{})
}

func TestExecute_MovesAppointmentToNewProfessionalAndSlot(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source},
		day:  []*domain.Appointment{source},
	}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p2",
		StartTime:      types.TimeString("10:30"),
	})

	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, "p2", resp.ProfessionalID)
	assert.Equal(t, "Bruno Lima", resp.ProfessionalName)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)

	require.NotNil(t, appts.updated)
	assert.Equal(t, "p2", appts.updated.ProfessionalID)
	assert.Equal(t, testDate(10, 30), appts.updated.Date)
	// День и остальные поля не меняются
	assert.Equal(t, source.ClientName, appts.updated.ClientName)
	assert.Equal(t, source.ServiceID, appts.updated.ServiceID)
}

func TestExecute_NoOpWhenTargetMatchesSource(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source},
		day:  []*domain.Appointment{source},
	}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p1",
		StartTime:      types.TimeString("09:00"),
	})

	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Nil(t, appts.updated, "no-op must not touch storage")
}

func TestExecute_RejectsIneligibleProfessional(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source},
		day:  []*domain.Appointment{source},
	}
	uc := newTestUseCase(appts)

	// p3 обслуживает только c2
	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p3",
		StartTime:      types.TimeString("10:30"),
	})

	require.ErrorIs(t, err, ErrProfessionalNotEligible)
	assert.Contains(t, err.Error(), "Rio de Janeiro")
	assert.Nil(t, appts.updated)
}

func TestExecute_RejectsOccupiedDestination(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	blocker := testAppointment("a2", "p2", "c1", 10, 30)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source, "a2": blocker},
		day:  []*domain.Appointment{source, blocker},
	}
	uc := newTestUseCase(appts)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p2",
		StartTime:      types.TimeString("10:30"),
	})

	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Nil(t, appts.updated)
}

func TestExecute_AllowsDropOnShadowSlot(t *testing.T) {
	// 60-минутная запись в 10:00 затеняет 10:30, но тень не блокирует
	// перемещение: проверяется только стартовый слот цели
	source := testAppointment("a1", "p1", "c1", 9, 0)
	long := testAppointment("a2", "p2", "c1", 10, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source, "a2": long},
		day:  []*domain.Appointment{source, long},
	}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p2",
		StartTime:      types.TimeString("10:30"),
	})

	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, testDate(10, 30), appts.updated.Date)
}

func TestExecute_RejectsSlotOutsideGrid(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source},
		day:  []*domain.Appointment{source},
	}
	uc := newTestUseCase(appts)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "p2",
		StartTime:      types.TimeString("21:00"),
	})

	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	appts := &fakeApptRepo{byID: map[string]*domain.Appointment{}}
	uc := newTestUseCase(appts)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "missing",
		ProfessionalID: "p2",
		StartTime:      types.TimeString("10:30"),
	})

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	source := testAppointment("a1", "p1", "c1", 9, 0)
	appts := &fakeApptRepo{
		byID: map[string]*domain.Appointment{"a1": source},
		day:  []*domain.Appointment{source},
	}
	uc := newTestUseCase(appts)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		AppointmentID:  "a1",
		ProfessionalID: "ghost",
		StartTime:      types.TimeString("10:30"),
	})

	require.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"empty tenant", &Request{AppointmentID: "a1", ProfessionalID: "p1", StartTime: "10:00"}},
		{"empty appointment", &Request{TenantID: testTenant, ProfessionalID: "p1", StartTime: "10:00"}},
		{"empty professional", &Request{TenantID: testTenant, AppointmentID: "a1", StartTime: "10:00"}},
		{"empty time", &Request{TenantID: testTenant, AppointmentID: "a1", ProfessionalID: "p1"}},
		{"malformed time", &Request{TenantID: testTenant, AppointmentID: "a1", ProfessionalID: "p1", StartTime: "25:99"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/pkg/ptr"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

const testTenant = "tenant-1"

type fakeApptRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentFilter
}

func (f *fakeApptRepo) GetByDate(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter

	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if !appt.SameDay(filter.Date) {
			continue
		}
		if filter.ProfessionalID != nil && appt.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		if filter.CityID != nil && appt.CityID != *filter.CityID {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

type fakeProfRepo struct{ professionals []domain.Professional }

func (f *fakeProfRepo) List(_ context.Context, _ string, onlyActive bool) ([]domain.Professional, error) {
	if !onlyActive {
		return f.professionals, nil
	}
	active := make([]domain.Professional, 0)
	for _, p := range f.professionals {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active, nil
}

type fakeServiceRepo struct{ services []domain.Service }

func (f *fakeServiceRepo) List(_ context.Context, _ string) ([]domain.Service, error) {
	return f.services, nil
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type capturingLogger struct{ warns []string }

func (l *capturingLogger) Info(string, ...interface{})                  {}
func (l *capturingLogger) Warn(format string, _ ...interface{})         { l.warns = append(l.warns, format) }
func (l *capturingLogger) Error(string, ...interface{})                 {}

func boardDate() time.Time {
	return time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
}

func boardAppointment(id, profID, cityID, serviceID string, hour, minute int) *domain.Appointment {
	return &domain.Appointment{
		ID:             id,
		TenantID:       testTenant,
		ClientName:     "Mariana Costa",
		ProfessionalID: profID,
		ServiceID:      serviceID,
		ServiceName:    "Limpeza de Pele Profunda",
		CityID:         cityID,
		CityName:       "Rio de Janeiro",
		Date:           time.Date(2025, time.October, 15, hour, minute, 0, 0, time.UTC),
		Status:         domain.StatusConfirmed,
	}
}

func newTestUseCase(appts *fakeApptRepo) *UseCase {
	uc := NewUseCase(
		appts,
		&fakeProfRepo{professionals: []domain.Professional{
			{ID: "p1", Name: "Ana Souza", Status: domain.ProfessionalActive},
			{ID: "p2", Name: "Bruno Lima", Status: domain.ProfessionalActive},
			{ID: "p3", Name: "Inativa Silva", Status: domain.ProfessionalInactive},
		}},
		&fakeServiceRepo{services: []domain.Service{
			{ID: "svc-60", Name: "Limpeza de Pele Profunda", DurationMinutes: 60},
			{ID: "svc-30", Name: "Design de Sobrancelhas", DurationMinutes: 30},
		}},
		&capturingLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: boardDate()}
	return uc
}

func cellAt(t *testing.T, col ProfessionalColumn, slot string) Cell {
	t.Helper()
	for _, cell := range col.Cells {
		if cell.Time == types.TimeString(slot) {
			return cell
		}
	}
	t.Fatalf("slot %s not found in column %s", slot, col.ProfessionalID)
	return Cell{}
}

func columnFor(t *testing.T, resp *Response, profID string) ProfessionalColumn {
	t.Helper()
	for _, col := range resp.Columns {
		if col.ProfessionalID == profID {
			return col
		}
	}
	t.Fatalf("column %s not found", profID)
	return ProfessionalColumn{}
}

func TestExecute_BuildsFullGridForActiveProfessionals(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	resp, err := uc.Execute(context.Background(), &Request{TenantID: testTenant, Date: boardDate()})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Len(t, resp.Slots, 24)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("19:30"), resp.Slots[23])

	// Неактивные профессионалы на доску не попадают
	require.Len(t, resp.Columns, 2)
	for _, col := range resp.Columns {
		assert.Len(t, col.Cells, 24)
		for _, cell := range col.Cells {
			assert.Equal(t, CellFree, cell.State)
		}
	}
}

func TestExecute_MarksAppointmentAndShadowCells(t *testing.T) {
	appts := &fakeApptRepo{appointments: []*domain.Appointment{
		boardAppointment("a1", "p1", "c1", "svc-60", 10, 0),
	}}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: testTenant, Date: boardDate()})

	require.NoError(t, err)
	col := columnFor(t, resp, "p1")

	start := cellAt(t, col, "10:00")
	assert.Equal(t, CellAppointment, start.State)
	require.NotNil(t, start.Appointment)
	assert.Equal(t, "a1", start.Appointment.ID)
	assert.Equal(t, 60, start.Appointment.DurationMinutes)

	// 60-минутная услуга затеняет ровно один следующий слот
	assert.Equal(t, CellShadow, cellAt(t, col, "10:30").State)
	assert.Equal(t, CellFree, cellAt(t, col, "11:00").State)

	// Чужая колонка не затрагивается
	other := columnFor(t, resp, "p2")
	assert.Equal(t, CellFree, cellAt(t, other, "10:00").State)
}

func TestExecute_UnknownServiceFallsBackToDefaultDuration(t *testing.T) {
	appts := &fakeApptRepo{appointments: []*domain.Appointment{
		boardAppointment("a1", "p1", "c1", "svc-ghost", 9, 0),
	}}
	uc := newTestUseCase(appts)
	logger := &capturingLogger{}
	uc.logger = logger

	resp, err := uc.Execute(context.Background(), &Request{TenantID: testTenant, Date: boardDate()})

	require.NoError(t, err)
	col := columnFor(t, resp, "p1")
	assert.Equal(t, CellAppointment, cellAt(t, col, "09:00").State)
	assert.Equal(t, CellShadow, cellAt(t, col, "09:30").State)
	assert.Equal(t, 60, cellAt(t, col, "09:00").Appointment.DurationMinutes)
	assert.NotEmpty(t, logger.warns)
}

func TestExecute_ProfessionalFilterNarrowsColumns(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:       testTenant,
		Date:           boardDate(),
		ProfessionalID: ptr.Ptr("p2"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Columns, 1)
	assert.Equal(t, "p2", resp.Columns[0].ProfessionalID)
}

func TestExecute_CityFilterReachesRepository(t *testing.T) {
	appts := &fakeApptRepo{appointments: []*domain.Appointment{
		boardAppointment("a1", "p1", "c1", "svc-30", 10, 0),
		boardAppointment("a2", "p1", "c2", "svc-30", 11, 0),
	}}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: testTenant,
		Date:     boardDate(),
		CityID:   ptr.Ptr("c1"),
	})

	require.NoError(t, err)
	require.NotNil(t, appts.lastFilter.CityID)
	assert.Equal(t, "c1", *appts.lastFilter.CityID)

	col := columnFor(t, resp, "p1")
	assert.Equal(t, CellAppointment, cellAt(t, col, "10:00").State)
	assert.Equal(t, CellFree, cellAt(t, col, "11:00").State)
}

func TestExecute_ZeroDateDefaultsToToday(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: testTenant})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
}

func TestExecute_RequiresTenant(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	_, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

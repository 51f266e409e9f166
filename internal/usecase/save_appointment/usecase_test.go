package save_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/internal/domain"
	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	cityRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/city"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/service"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

const testTenant = "tenant-1"

type fakeApptRepo struct {
	store     map[string]*domain.Appointment
	created   *domain.Appointment
	updated   *domain.Appointment
	updateErr error
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.CreatedAt = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeApptRepo) Update(_ context.Context, appt *domain.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *appt
	f.updated = &stored
	if f.store == nil {
		f.store = map[string]*domain.Appointment{}
	}
	f.store[appt.ID] = &stored
	return nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, _, id string) (*domain.Appointment, error) {
	appt, ok := f.store[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

type fakeProfRepo struct{ byID map[string]*domain.Professional }

func (f *fakeProfRepo) GetByID(_ context.Context, _, id string) (*domain.Professional, error) {
	prof, ok := f.byID[id]
	if !ok {
		return nil, profRepo.ErrProfessionalNotFound
	}
	return prof, nil
}

type fakeServiceRepo struct{ byID map[string]*domain.Service }

func (f *fakeServiceRepo) GetByID(_ context.Context, _, id string) (*domain.Service, error) {
	svc, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeCityRepo struct{ byID map[string]*domain.City }

func (f *fakeCityRepo) GetByID(_ context.Context, _, id string) (*domain.City, error) {
	city, ok := f.byID[id]
	if !ok {
		return nil, cityRepo.ErrCityNotFound
	}
	return city, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedIDGenerator struct{ id string }

func (g fixedIDGenerator) NewID() string { return g.id }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(appts *fakeApptRepo) *UseCase {
	uc := NewUseCase(
		appts,
		&fakeProfRepo{byID: map[string]*domain.Professional{
			"p1": {ID: "p1", Name: "Ana Souza"},
		}},
		&fakeServiceRepo{byID: map[string]*domain.Service{
			"svc-1": {ID: "svc-1", Name: "Limpeza de Pele Profunda", DurationMinutes: 60},
		}},
		&fakeCityRepo{byID: map[string]*domain.City{
			"c1": {ID: "c1", Name: "Rio de Janeiro", Active: true},
		}},
		fakeTxManager{},
		nopLogger{},
	)
	uc.idGenerator = fixedIDGenerator{id: "generated-id"}
	return uc
}

func validRequest() *Request {
	return &Request{
		TenantID:       testTenant,
		ClientID:       "client-1",
		ClientName:     "Mariana Costa",
		ProfessionalID: "p1",
		ServiceID:      "svc-1",
		CityID:         "c1",
		Date:           time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("14:30"),
	}
}

func TestExecute_CreateAssignsIDAndDenormalizesNames(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "generated-id", resp.ID)
	assert.Equal(t, "Ana Souza", resp.ProfessionalName)
	assert.Equal(t, "Limpeza de Pele Profunda", resp.ServiceName)
	assert.Equal(t, "Rio de Janeiro", resp.CityName)
	assert.Equal(t, types.TimeString("14:30"), resp.StartTime)

	require.NotNil(t, appts.created)
	assert.Equal(t, time.Date(2025, time.October, 15, 14, 30, 0, 0, time.UTC), appts.created.Date)
	assert.Equal(t, domain.StatusConfirmed, appts.created.Status)
}

func TestExecute_MissingReferenceYieldsEmptyName(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(appts)

	req := validRequest()
	req.ProfessionalID = "ghost"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "", resp.ProfessionalName)
	assert.Equal(t, "Limpeza de Pele Profunda", resp.ServiceName)
}

func TestExecute_UpdateReplacesFields(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(appts)

	req := validRequest()
	req.AppointmentID = "a1"
	req.Status = "pending"
	req.Notes = "cliente pediu horário da tarde"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, "a1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "cliente pediu horário da tarde", resp.Notes)

	require.NotNil(t, appts.updated)
	assert.Equal(t, "a1", appts.updated.ID)
}

func TestExecute_UpdateNotFound(t *testing.T) {
	appts := &fakeApptRepo{updateErr: apptRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(appts)

	req := validRequest()
	req.AppointmentID = "missing"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_EmptyStatusDefaultsToConfirmed(t *testing.T) {
	appts := &fakeApptRepo{}
	uc := newTestUseCase(appts)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_RejectsUnknownStatus(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	req := validRequest()
	req.Status = "no-show"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_RejectsSlotOutsideGrid(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	req := validRequest()
	req.StartTime = types.TimeString("07:30")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_RejectsMisalignedStartTime(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	req := validRequest()
	req.StartTime = types.TimeString("14:15")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_ValidatesRequiredFields(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	mutations := map[string]func(*Request){
		"tenant":       func(r *Request) { r.TenantID = "" },
		"client":       func(r *Request) { r.ClientID = "" },
		"professional": func(r *Request) { r.ProfessionalID = "" },
		"service":      func(r *Request) { r.ServiceID = "" },
		"city":         func(r *Request) { r.CityID = "" },
		"date":         func(r *Request) { r.Date = time.Time{} },
		"startTime":    func(r *Request) { r.StartTime = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RejectsOversizedNotes(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{})

	req := validRequest()
	notes := make([]byte, domain.MaxNotesLength+1)
	for i := range notes {
		notes[i] = 'x'
	}
	req.Notes = string(notes)

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}

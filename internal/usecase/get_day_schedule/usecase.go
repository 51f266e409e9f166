package get_day_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/internal/schedule"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// UseCase use case для построения дневной доски расписания
type UseCase struct {
	apptRepo     AppointmentRepository
	profRepo     ProfessionalRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	profRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		profRepo:     profRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит дневную доску: полная сетка слотов и колонка на каждого
// активного профессионала, ячейки размечены как запись, тень или свободно.
// Фильтр по городу сужает записи на доске, фильтр по профессионалу сужает колонки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now()
	}

	uc.logger.Info("GetDaySchedule: tenant=%s, date=%s", req.TenantID, date.Format(domain.DateFormat))

	// 1. Записи дня с фильтрами, прижатыми к запросу в БД
	appointments, err := uc.apptRepo.GetByDate(ctx, domain.AppointmentFilter{
		TenantID:       req.TenantID,
		Date:           date,
		ProfessionalID: req.ProfessionalID,
		CityID:         req.CityID,
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 2. Колонки строятся только по активным профессионалам
	professionals, err := uc.profRepo.List(ctx, req.TenantID, true)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}
	if req.ProfessionalID != nil {
		professionals = filterProfessional(professionals, *req.ProfessionalID)
	}

	services, err := uc.serviceRepo.List(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	grid := schedule.DefaultGrid()
	resolver := schedule.NewOccupancyResolver(grid, appointments, services)
	uc.warnUnknownServices(resolver, appointments)

	// 3. Разметка ячеек
	columns := make([]ProfessionalColumn, 0, len(professionals))
	for _, prof := range professionals {
		columns = append(columns, uc.buildColumn(resolver, grid, date, prof))
	}

	response := &Response{
		Date:    date.Format(domain.DateFormat),
		Slots:   slotList(grid.Slots()),
		Columns: columns,
	}

	uc.logger.Info("GetDaySchedule: built board with %d columns, %d appointments", len(columns), len(appointments))
	return response, nil
}

// buildColumn размечает ячейки одного профессионала
func (uc *UseCase) buildColumn(
	resolver *schedule.OccupancyResolver,
	grid schedule.Grid,
	date time.Time,
	prof domain.Professional,
) ProfessionalColumn {
	cells := make([]Cell, 0, grid.Len())

	for _, slot := range grid.Slots() {
		cell := Cell{Time: slot.Time, State: CellFree}

		if appt := resolver.AppointmentAt(date, slot, prof.ID); appt != nil {
			cell.State = CellAppointment
			cell.Appointment = &AppointmentCell{
				ID:              appt.ID,
				ClientName:      appt.ClientName,
				ServiceID:       appt.ServiceID,
				ServiceName:     appt.ServiceName,
				CityID:          appt.CityID,
				CityName:        appt.CityName,
				Status:          string(appt.Status),
				DurationMinutes: resolver.ServiceDuration(appt.ServiceID),
				Notes:           appt.Notes,
			}
		} else if resolver.IsShadowOccupied(date, slot, prof.ID) {
			cell.State = CellShadow
		}

		cells = append(cells, cell)
	}

	return ProfessionalColumn{
		ProfessionalID:   prof.ID,
		ProfessionalName: prof.Name,
		Specialization:   prof.Specialization,
		AvatarURL:        prof.AvatarURL,
		Cells:            cells,
	}
}

// warnUnknownServices логирует записи, для которых длительность услуги
// неизвестна и подставлен дефолт
func (uc *UseCase) warnUnknownServices(resolver *schedule.OccupancyResolver, appointments []*domain.Appointment) {
	for _, appt := range appointments {
		if !resolver.HasService(appt.ServiceID) {
			uc.logger.Warn("GetDaySchedule: unknown service id=%s on appointment id=%s, using default duration %d min",
				appt.ServiceID, appt.ID, domain.DefaultServiceDurationMinutes)
		}
	}
}

// filterProfessional оставляет только запрошенного профессионала
func filterProfessional(professionals []domain.Professional, id string) []domain.Professional {
	for _, prof := range professionals {
		if prof.ID == id {
			return []domain.Professional{prof}
		}
	}
	return nil
}

// slotList извлекает времена слотов сетки
func slotList(slots []domain.TimeSlot) []types.TimeString {
	times := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		times = append(times, slot.Time)
	}
	return times
}

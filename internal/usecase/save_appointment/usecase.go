package save_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendaflow/scheduling-service/internal/domain"
	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	cityRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/city"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/service"
	"github.com/agendaflow/scheduling-service/internal/schedule"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// UseCase use case для сохранения записи из формы (создание и обновление)
type UseCase struct {
	apptRepo    AppointmentRepository
	profRepo    ProfessionalRepository
	serviceRepo ServiceRepository
	cityRepo    CityRepository
	txManager   TransactionManager
	idGenerator IDGenerator
	logger      Logger
}

// UUIDGenerator генератор идентификаторов для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	profRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	cityRepo CityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		profRepo:    profRepo,
		serviceRepo: serviceRepo,
		cityRepo:    cityRepo,
		txManager:   txManager,
		idGenerator: UUIDGenerator{},
		logger:      logger,
	}
}

// Execute сохраняет запись из формы.
//
// Порядок шагов:
//  1. валидация обязательных полей и статуса;
//  2. привязка времени начала к слоту сетки;
//  3. денормализация имён из справочников (отсутствующий справочник
//     даёт пустое имя, не ошибку);
//  4. создание с новым UUID либо обновление всех полей по ID.
//
// Занятость слота при сохранении формы не проверяется: форма может
// сознательно ставить две записи в один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	isCreate := req.AppointmentID == ""
	uc.logger.Info("SaveAppointment: tenant=%s, create=%t, professional=%s, date=%s, time=%s",
		req.TenantID, isCreate, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveAppointment: validation failed: %v", err)
		return nil, err
	}

	status, err := resolveStatus(req.Status)
	if err != nil {
		uc.logger.Warn("SaveAppointment: invalid status=%s", req.Status)
		return nil, err
	}

	// 2. Время начала должно попадать в рабочую сетку
	grid := schedule.DefaultGrid()
	slot, ok := grid.SlotAt(req.StartTime)
	if !ok {
		uc.logger.Warn("SaveAppointment: slot %s is outside the grid", req.StartTime)
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Денормализация имён из справочников
		professionalName := uc.resolveProfessionalName(txCtx, req.TenantID, req.ProfessionalID)
		serviceName := uc.resolveServiceName(txCtx, req.TenantID, req.ServiceID)
		cityName := uc.resolveCityName(txCtx, req.TenantID, req.CityID)

		appt := &domain.Appointment{
			ID:               req.AppointmentID,
			TenantID:         req.TenantID,
			ClientID:         req.ClientID,
			ClientName:       req.ClientName,
			ProfessionalID:   req.ProfessionalID,
			ProfessionalName: professionalName,
			ServiceID:        req.ServiceID,
			ServiceName:      serviceName,
			CityID:           req.CityID,
			CityName:         cityName,
			Date:             combineDateAndSlot(req.Date, slot),
			Status:           status,
			Notes:            req.Notes,
		}

		// 4. Создание либо обновление
		if isCreate {
			appt.ID = uc.idGenerator.NewID()

			created, err := uc.apptRepo.Create(txCtx, appt)
			if err != nil {
				uc.logger.Error("SaveAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}
			result = created
			return nil
		}

		if err := uc.apptRepo.Update(txCtx, appt); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("SaveAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("SaveAppointment: failed to update appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		updated, err := uc.apptRepo.GetByID(txCtx, req.TenantID, req.AppointmentID)
		if err != nil {
			uc.logger.Error("SaveAppointment: failed to reread appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to reread appointment: %v", ErrInternal, err)
		}
		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveAppointment: saved appointment id=%s (create=%t)", result.ID, isCreate)

	return &Response{
		ID:               result.ID,
		ClientID:         result.ClientID,
		ClientName:       result.ClientName,
		ProfessionalID:   result.ProfessionalID,
		ProfessionalName: result.ProfessionalName,
		ServiceID:        result.ServiceID,
		ServiceName:      result.ServiceName,
		CityID:           result.CityID,
		CityName:         result.CityName,
		Date:             result.Date,
		StartTime:        types.NewTimeString(result.Date),
		Status:           string(result.Status),
		Notes:            result.Notes,
		Created:          isCreate,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// resolveProfessionalName возвращает имя профессионала или пустую строку
func (uc *UseCase) resolveProfessionalName(ctx context.Context, tenantID, id string) string {
	professional, err := uc.profRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if !errors.Is(err, profRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("SaveAppointment: failed to resolve professional id=%s: %v", id, err)
		}
		return ""
	}
	return professional.Name
}

// resolveServiceName возвращает название услуги или пустую строку
func (uc *UseCase) resolveServiceName(ctx context.Context, tenantID, id string) string {
	service, err := uc.serviceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if !errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("SaveAppointment: failed to resolve service id=%s: %v", id, err)
		}
		return ""
	}
	return service.Name
}

// resolveCityName возвращает название города или пустую строку
func (uc *UseCase) resolveCityName(ctx context.Context, tenantID, id string) string {
	city, err := uc.cityRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if !errors.Is(err, cityRepo.ErrCityNotFound) {
			uc.logger.Warn("SaveAppointment: failed to resolve city id=%s: %v", id, err)
		}
		return ""
	}
	return city.Name
}

// combineDateAndSlot собирает итоговый timestamp из календарного дня и слота
func combineDateAndSlot(date time.Time, slot domain.TimeSlot) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		slot.Hour, slot.Minute, 0, 0,
		date.Location(),
	)
}

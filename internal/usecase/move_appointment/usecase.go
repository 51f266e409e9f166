package move_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendaflow/scheduling-service/internal/domain"
	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	"github.com/agendaflow/scheduling-service/internal/schedule"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// UseCase use case для перемещения записи в новый слот
type UseCase struct {
	apptRepo    AppointmentRepository
	profRepo    ProfessionalRepository
	serviceRepo ServiceRepository
	cityRepo    CityRepository
	linkRepo    LinkRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	profRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	cityRepo CityRepository,
	linkRepo LinkRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		profRepo:    profRepo,
		serviceRepo: serviceRepo,
		cityRepo:    cityRepo,
		linkRepo:    linkRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет перемещение записи в целевой слот целевого профессионала.
// Использует сериализуемую транзакцию: снимок дня блокируется на чтении,
// две конкурирующие попытки занять один слот не могут пройти обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveAppointment: tenant=%s, appointment=%s, professional=%s, time=%s",
		req.TenantID, req.AppointmentID, req.ProfessionalID, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *schedule.MoveResult

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем перемещаемую запись
		source, err := uc.apptRepo.GetByID(txCtx, req.TenantID, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("MoveAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("MoveAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Получаем целевого профессионала для денормализации имени
		professional, err := uc.profRepo.GetByID(txCtx, req.TenantID, req.ProfessionalID)
		if err != nil {
			if errors.Is(err, profRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("MoveAppointment: professional id=%s not found", req.ProfessionalID)
				return ErrProfessionalNotFound
			}
			uc.logger.Error("MoveAppointment: failed to get professional id=%s: %v", req.ProfessionalID, err)
			return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}

		// 2.3. Получаем снимок дня с блокировкой (FOR UPDATE)
		dayAppointments, err := uc.apptRepo.GetByDate(txCtx, domain.AppointmentFilter{
			TenantID: req.TenantID,
			Date:     source.Date,
		})
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to get day snapshot: %v", err)
			return fmt.Errorf("%w: failed to get day snapshot: %v", ErrInternal, err)
		}

		// 2.4. Загружаем справочные данные для движка
		services, err := uc.serviceRepo.List(txCtx, req.TenantID)
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		cities, err := uc.cityRepo.List(txCtx, req.TenantID, false)
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to list cities: %v", err)
			return fmt.Errorf("%w: failed to list cities: %v", ErrInternal, err)
		}

		links, err := uc.linkRepo.ListByTenant(txCtx, req.TenantID)
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to list city links: %v", err)
			return fmt.Errorf("%w: failed to list city links: %v", ErrInternal, err)
		}

		// 2.5. Выполняем перемещение на снимке дня
		engine := schedule.NewEngine(
			schedule.DefaultGrid(),
			schedule.NewEligibilityIndex(links, cities),
			services,
		)

		moveResult, err := engine.Move(dayAppointments, schedule.MoveRequest{
			AppointmentID:    req.AppointmentID,
			ProfessionalID:   req.ProfessionalID,
			ProfessionalName: professional.Name,
			Slot:             domain.TimeSlot{Time: req.StartTime},
		})
		if err != nil {
			return uc.mapEngineError(err, req)
		}

		// 2.6. No-op: цель совпала с источником, запись не трогаем
		if !moveResult.Changed {
			uc.logger.Info("MoveAppointment: appointment id=%s already at target, no-op", req.AppointmentID)
			result = moveResult
			return nil
		}

		// 2.7. Сохраняем перемещённую запись
		if err := uc.apptRepo.Update(txCtx, moveResult.Appointment); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("MoveAppointment: appointment id=%s not found during update", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("MoveAppointment: failed to update appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = moveResult
		return nil
	})

	if err != nil {
		return nil, err
	}

	moved := result.Appointment
	if result.Changed {
		uc.logger.Info("MoveAppointment: moved appointment id=%s to professional=%s time=%s",
			moved.ID, moved.ProfessionalID, moved.Date.Format(domain.TimeFormat))
	}

	return &Response{
		ID:               moved.ID,
		ClientID:         moved.ClientID,
		ClientName:       moved.ClientName,
		ProfessionalID:   moved.ProfessionalID,
		ProfessionalName: moved.ProfessionalName,
		ServiceID:        moved.ServiceID,
		ServiceName:      moved.ServiceName,
		CityID:           moved.CityID,
		CityName:         moved.CityName,
		Date:             moved.Date,
		StartTime:        types.NewTimeString(moved.Date),
		Status:           string(moved.Status),
		Notes:            moved.Notes,
		Changed:          result.Changed,
		CreatedAt:        moved.CreatedAt,
		UpdatedAt:        moved.UpdatedAt,
	}, nil
}

// mapEngineError конвертирует ошибки движка в ошибки usecase
func (uc *UseCase) mapEngineError(err error, req *Request) error {
	switch {
	case errors.Is(err, schedule.ErrAppointmentNotFound):
		uc.logger.Warn("MoveAppointment: appointment id=%s not in day snapshot", req.AppointmentID)
		return ErrAppointmentNotFound
	case errors.Is(err, schedule.ErrSlotNotInGrid):
		uc.logger.Warn("MoveAppointment: slot %s is outside the grid", req.StartTime)
		return fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	case errors.Is(err, schedule.ErrProfessionalNotEligible):
		uc.logger.Warn("MoveAppointment: professional id=%s not eligible: %v", req.ProfessionalID, err)
		return fmt.Errorf("%w: %v", ErrProfessionalNotEligible, err)
	case errors.Is(err, schedule.ErrDestinationOccupied):
		uc.logger.Warn("MoveAppointment: slot %s occupied for professional id=%s", req.StartTime, req.ProfessionalID)
		return fmt.Errorf("%w: %s", ErrSlotOccupied, req.StartTime)
	default:
		uc.logger.Error("MoveAppointment: engine error: %v", err)
		return fmt.Errorf("%w: engine error: %v", ErrInternal, err)
	}
}

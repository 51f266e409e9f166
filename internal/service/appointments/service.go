package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	"github.com/agendaflow/scheduling-service/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает запись по ID в рамках тенанта
func (s *Service) GetByID(ctx context.Context, tenantID, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s tenant=%s", id, tenantID)

	appt, err := s.apptRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи за календарный день
// Опционально фильтрует по профессионалу и городу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for tenant=%s date=%s", req.TenantID, req.Date.Format("2006-01-02"))

	appts, err := s.apptRepo.GetByDate(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for tenant=%s", len(appts), req.TenantID)
	return models.FromDomainAppointmentList(appts), nil
}

// Delete удаляет запись по ID в рамках тенанта
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s tenant=%s", id, tenantID)

	if err := s.apptRepo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

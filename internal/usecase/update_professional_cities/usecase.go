package update_professional_cities

import (
	"context"
	"errors"
	"fmt"

	cityRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/city"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
)

// UseCase use case замены набора городов профессионала.
// Так работает диалог управления городами: форма присылает полный
// набор, старые связи удаляются, выбранные создаются заново.
type UseCase struct {
	profRepo  ProfessionalRepository
	cityRepo  CityRepository
	linkRepo  LinkRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profRepo ProfessionalRepository,
	cityRepo CityRepository,
	linkRepo LinkRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		profRepo:  profRepo,
		cityRepo:  cityRepo,
		linkRepo:  linkRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute заменяет набор городов профессионала целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateProfessionalCities: tenant=%s, professional=%s, cities=%d",
		req.TenantID, req.ProfessionalID, len(req.CityIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateProfessionalCities: validation failed: %v", err)
		return nil, err
	}

	cityIDs := dedupeCityIDs(req.CityIDs)

	var response *Response

	// 2. Проверки и замена выполняются в одной транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Профессионал должен существовать
		if _, err := uc.profRepo.GetByID(txCtx, req.TenantID, req.ProfessionalID); err != nil {
			if errors.Is(err, profRepo.ErrProfessionalNotFound) {
				return ErrProfessionalNotFound
			}
			return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}

		// 2.2. Каждый город из набора должен существовать
		for _, cityID := range cityIDs {
			if _, err := uc.cityRepo.GetByID(txCtx, req.TenantID, cityID); err != nil {
				if errors.Is(err, cityRepo.ErrCityNotFound) {
					return fmt.Errorf("%w: id=%s", ErrCityNotFound, cityID)
				}
				return fmt.Errorf("%w: failed to get city id=%s: %v", ErrInternal, cityID, err)
			}
		}

		// 2.3. Замена набора связей
		if err := uc.linkRepo.ReplaceForProfessional(txCtx, req.TenantID, req.ProfessionalID, cityIDs); err != nil {
			return fmt.Errorf("%w: failed to replace city links: %v", ErrInternal, err)
		}

		// 2.4. Перечитываем сохранённый набор для ответа
		links, err := uc.linkRepo.ListByProfessional(txCtx, req.TenantID, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to list city links: %v", ErrInternal, err)
		}

		saved := make([]string, 0, len(links))
		for _, link := range links {
			saved = append(saved, link.CityID)
		}

		response = &Response{
			ProfessionalID: req.ProfessionalID,
			CityIDs:        saved,
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, ErrProfessionalNotFound) {
			uc.logger.Warn("UpdateProfessionalCities: professional id=%s not found", req.ProfessionalID)
			return nil, txErr
		}
		if errors.Is(txErr, ErrCityNotFound) {
			uc.logger.Warn("UpdateProfessionalCities: %v", txErr)
			return nil, txErr
		}
		uc.logger.Error("UpdateProfessionalCities: transaction failed: %v", txErr)
		return nil, txErr
	}

	uc.logger.Info("UpdateProfessionalCities: professional=%s now serves %d cities",
		req.ProfessionalID, len(response.CityIDs))

	return response, nil
}

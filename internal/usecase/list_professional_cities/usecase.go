package list_professional_cities

import (
	"context"
	"errors"
	"fmt"

	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	"github.com/agendaflow/scheduling-service/internal/schedule"
)

// UseCase use case сужения списка городов после смены профессионала в форме
type UseCase struct {
	profRepo ProfessionalRepository
	cityRepo CityRepository
	linkRepo LinkRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profRepo ProfessionalRepository,
	cityRepo CityRepository,
	linkRepo LinkRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		profRepo: profRepo,
		cityRepo: cityRepo,
		linkRepo: linkRepo,
		logger:   logger,
	}
}

// Execute возвращает активные города, которые обслуживает профессионал,
// и город, который форма должна выбрать: прежний, если он остался
// доступен; единственный доступный, если он один; иначе никакой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListProfessionalCities: tenant=%s, professional=%s, current=%s",
		req.TenantID, req.ProfessionalID, req.CurrentCityID)

	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.ProfessionalID == "" {
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	// 1. Профессионал должен существовать
	if _, err := uc.profRepo.GetByID(ctx, req.TenantID, req.ProfessionalID); err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("ListProfessionalCities: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("ListProfessionalCities: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 2. Собираем индекс доступности по связям профессионала
	links, err := uc.linkRepo.ListByProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("ListProfessionalCities: failed to list links: %v", err)
		return nil, fmt.Errorf("%w: failed to list city links: %v", ErrInternal, err)
	}

	cities, err := uc.cityRepo.List(ctx, req.TenantID, false)
	if err != nil {
		uc.logger.Error("ListProfessionalCities: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: failed to list cities: %v", ErrInternal, err)
	}

	eligible := schedule.NewEligibilityIndex(links, cities).CitiesFor(req.ProfessionalID)

	items := make([]CityItem, 0, len(eligible))
	for _, city := range eligible {
		items = append(items, CityItem{ID: city.ID, Name: city.Name, State: city.State})
	}

	// 3. Правило выбора города формой
	selected := ""
	switch {
	case req.CurrentCityID != "" && containsCity(items, req.CurrentCityID):
		selected = req.CurrentCityID
	case len(items) == 1:
		selected = items[0].ID
	}

	uc.logger.Info("ListProfessionalCities: professional=%s has %d eligible cities, selected=%q",
		req.ProfessionalID, len(items), selected)

	return &Response{Cities: items, SelectedCityID: selected}, nil
}

func containsCity(items []CityItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

package schedule

import "github.com/agendaflow/scheduling-service/internal/domain"

// EligibilityIndex отвечает на вопрос «может ли профессионал обслуживать
// город» за O(1) после O(n) построения по таблице связей.
type EligibilityIndex struct {
	// professionalID -> множество cityID из таблицы связей
	links map[string]map[string]struct{}
	// города справочника в исходном порядке
	cities []domain.City
}

// NewEligibilityIndex строит индекс по связям профессионал-город.
// Таблица связей служит источником истины для membership; флаг active города
// учитывается только при выдаче списков для отображения.
func NewEligibilityIndex(links []domain.ProfessionalCityLink, cities []domain.City) *EligibilityIndex {
	ix := &EligibilityIndex{
		links:  make(map[string]map[string]struct{}),
		cities: cities,
	}

	for _, link := range links {
		set, ok := ix.links[link.ProfessionalID]
		if !ok {
			set = make(map[string]struct{})
			ix.links[link.ProfessionalID] = set
		}
		set[link.CityID] = struct{}{}
	}

	return ix
}

// CanServe возвращает true, если существует связь профессионал-город.
// Проверяется только membership, без учета флага active.
func (ix *EligibilityIndex) CanServe(professionalID, cityID string) bool {
	set, ok := ix.links[professionalID]
	if !ok {
		return false
	}
	_, ok = set[cityID]
	return ok
}

// CitiesFor возвращает активные города, привязанные к профессионалу,
// в порядке справочника. Профессионал без связей получает пустой список
// и не может быть записан ни в одном городе.
func (ix *EligibilityIndex) CitiesFor(professionalID string) []domain.City {
	set, ok := ix.links[professionalID]
	if !ok {
		return []domain.City{}
	}

	result := make([]domain.City, 0, len(set))
	for _, city := range ix.cities {
		if !city.Active {
			continue
		}
		if _, linked := set[city.ID]; linked {
			result = append(result, city)
		}
	}

	return result
}

package update_professional_cities

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	for _, cityID := range req.CityIDs {
		if cityID == "" {
			return fmt.Errorf("%w: cityIDs must not contain empty values", ErrInvalidInput)
		}
	}

	return nil
}

// dedupeCityIDs убирает повторы, сохраняя порядок первого вхождения.
// Таблица связей держит UNIQUE по паре профессионал-город.
func dedupeCityIDs(cityIDs []string) []string {
	seen := make(map[string]struct{}, len(cityIDs))
	result := make([]string, 0, len(cityIDs))
	for _, cityID := range cityIDs {
		if _, ok := seen[cityID]; ok {
			continue
		}
		seen[cityID] = struct{}{}
		result = append(result, cityID)
	}
	return result
}

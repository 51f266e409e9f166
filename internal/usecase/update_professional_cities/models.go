package update_professional_cities

// Request модель запроса на замену набора городов профессионала.
// CityIDs заменяют текущий набор целиком; пустой список снимает
// профессионала со всех городов.
type Request struct {
	TenantID       string
	ProfessionalID string
	CityIDs        []string
}

// Response модель ответа с сохранённым набором городов
type Response struct {
	ProfessionalID string
	CityIDs        []string
}

package list_professional_cities

// Request модель запроса городов профессионала.
// CurrentCityID содержит город, выбранный в форме до смены профессионала
// (пустая строка, когда город ещё не выбран).
type Request struct {
	TenantID       string
	ProfessionalID string
	CurrentCityID  string
}

// CityItem город, доступный для выбора в форме
type CityItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Response модель ответа: доступные города и город, который форма
// должна выбрать после смены профессионала
type Response struct {
	Cities []CityItem `json:"cities"`

	// SelectedCityID прежний город, если он всё ещё доступен;
	// единственный доступный город, если он один; иначе пустая строка
	SelectedCityID string `json:"selectedCityId"`
}

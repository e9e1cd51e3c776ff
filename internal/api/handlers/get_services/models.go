package get_services

import "github.com/m04kA/SMC-SalonDashboard/internal/domain"

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Gender          string  `json:"gender,omitempty"`
	Bookable        bool    `json:"bookable"`
}

// ServicesResponse список услуг салона
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomain конвертирует каталог в HTTP response
func FromDomain(services []domain.ServiceOffering) *ServicesResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ServiceResponse{
			ID:              services[i].ID,
			Name:            services[i].Name,
			Category:        services[i].Category,
			DurationMinutes: services[i].DurationMinutes,
			Price:           services[i].Price,
			Gender:          services[i].Gender,
			Bookable:        services[i].IsBookable(),
		}
	}
	return &ServicesResponse{Services: out}
}

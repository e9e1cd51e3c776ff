package domain

// Gender applicability tags of salon services
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

// ServiceOffering represents a salon service as published by the remote API.
// Read-only for the dashboard.
type ServiceOffering struct {
	ID              string
	Name            string
	Category        string
	DurationMinutes int
	Price           float64
	Gender          string
}

// IsBookable returns true if the service can be chained into an appointment
func (s *ServiceOffering) IsBookable() bool {
	return s.ID != "" && s.DurationMinutes > 0 && s.Price >= 0
}

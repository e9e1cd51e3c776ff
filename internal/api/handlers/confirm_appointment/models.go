package confirm_appointment

import "github.com/m04kA/SMC-SalonDashboard/internal/domain"

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Date      string  `json:"date,omitempty"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Amount    float64 `json:"amount"`
	ULID      string  `json:"ulid,omitempty"`
}

// FromDomain конвертирует запись сервера в HTTP response
func FromDomain(a *domain.ServerAppointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        a.ID,
		Status:    a.Status,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Amount:    a.Amount,
		ULID:      a.ULID,
	}
}

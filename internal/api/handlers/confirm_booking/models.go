package confirm_booking

import (
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	confirmBooking "github.com/m04kA/SMC-SalonDashboard/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	AppointmentID string   `json:"appointmentId"`
	Status        string   `json:"status,omitempty"`
	ULID          string   `json:"ulid,omitempty"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	TotalDuration int      `json:"totalDuration"`
	TotalPrice    float64  `json:"totalPrice"`
	Services      []string `json:"services"`
	Warning       string   `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(sessionID string, sess *domain.SessionContext) *confirmBooking.Request {
	return &confirmBooking.Request{
		SessionID: sessionID,
		Session:   sess,
		Contact: confirmBooking.Contact{
			Name:   r.Name,
			Mobile: r.Mobile,
			Email:  r.Email,
			Notes:  r.Notes,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	out := &ConfirmBookingResponse{
		Date:          resp.Start.Format(domain.DateFormat),
		StartTime:     resp.Start.Format(domain.DisplayTimeFormat),
		EndTime:       resp.End.Format(domain.DisplayTimeFormat),
		TotalDuration: resp.TotalDuration,
		TotalPrice:    resp.TotalPrice,
		Services:      resp.ServiceNames,
		Warning:       resp.Warning,
	}
	if resp.Appointment != nil {
		out.AppointmentID = resp.Appointment.ID
		out.Status = resp.Appointment.Status
		out.ULID = resp.Appointment.ULID
	}
	if out.Services == nil {
		out.Services = []string{}
	}
	return out
}

package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// Contact контактные данные клиента
type Contact struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required,len=10,number"`
	Email  string `json:"email" validate:"omitempty,email"`
	Notes  string `json:"notes"`
}

// Request модель запроса на подтверждение записи
type Request struct {
	SessionID string
	Session   *domain.SessionContext
	Contact   Contact
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment   *domain.ServerAppointment
	Start         time.Time
	End           time.Time
	TotalDuration int
	TotalPrice    float64
	ServiceNames  []string
	Warning       string // предупреждение проверки вместимости, запись при этом создана
}

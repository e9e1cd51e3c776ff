package add_service

import (
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// Request модель запроса на добавление услуги в цепочку
type Request struct {
	SessionID string
	Session   *domain.SessionContext
	ServiceID string
}

// Response состояние записи после добавления
type Response struct {
	State bookingsession.State
}

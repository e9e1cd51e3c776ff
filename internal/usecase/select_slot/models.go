package select_slot

import (
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// Request модель запроса на выбор стартового слота
type Request struct {
	SessionID string
	Session   *domain.SessionContext
	SlotID    string
}

// Response состояние записи после выбора слота
type Response struct {
	State bookingsession.State
}

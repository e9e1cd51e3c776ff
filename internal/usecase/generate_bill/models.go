package generate_bill

import (
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
)

// Request модель запроса на отправку счета
type Request struct {
	Session       *domain.SessionContext
	AppointmentID string
}

// Response результат запроса и состояние строки записи после него
type Response struct {
	AppointmentID string
	Result        domain.BillResult
	Status        billstatus.Entry
}

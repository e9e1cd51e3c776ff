package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// Request модель запроса на получение слотов салона
type Request struct {
	Session *domain.SessionContext
	Date    time.Time // Дата (без времени) в часовом поясе салона
}

// Response модель ответа со списком слотов
type Response struct {
	Date           time.Time
	Slots          []domain.TimeSlot
	AvailableCount int
}

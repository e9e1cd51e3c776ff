package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/classifier"
)

// Request модель запроса списка записей
type Request struct {
	Session  *domain.SessionContext
	Username string // передается в API как фильтр
	Mobile   string // передается в API как фильтр
	View     classifier.View
}

// Response модель ответа.
// Stats считается по всем полученным записям, Summary и Records - по отфильтрованным.
type Response struct {
	Stats     classifier.Stats
	Summary   classifier.Summary
	Records   []domain.AppointmentRecord
	Reference time.Time
	Retryable bool
}

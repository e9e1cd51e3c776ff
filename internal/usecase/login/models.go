package login

import "github.com/m04kA/SMC-SalonDashboard/internal/domain"

// Request модель запроса входа по одноразовому коду
type Request struct {
	Mobile string
	Code   string
}

// Response созданная сессия дашборда
type Response struct {
	Session  *domain.Session
	HasSalon bool // false - токен без идентификатора салона, салонные разделы недоступны
}

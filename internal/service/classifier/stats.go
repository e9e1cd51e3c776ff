// Package classifier классифицирует и фильтрует списки записей салона.
// Все функции чистые: nil или пустой вход дает пустой результат.
package classifier

import "github.com/m04kA/SMC-SalonDashboard/internal/domain"

// Stats счетчики записей по категориям статуса
type Stats struct {
	Total     int
	Confirmed int
	Cancelled int
	Declined  int
	Pending   int
	NoShow    int
}

// Summary агрегаты для карточек дашборда
type Summary struct {
	Stats
	Revenue         float64
	BookedMinutes   int
	UniqueCustomers int
}

// Classify считает записи по категориям статуса без учета регистра.
// Записи с неизвестным статусом учитываются только в Total.
func Classify(records []domain.AppointmentRecord) Stats {
	var stats Stats
	for i := range records {
		stats.Total++
		switch records[i].Category() {
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCancelled:
			stats.Cancelled++
		case domain.StatusDeclined:
			stats.Declined++
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusNoShow:
			stats.NoShow++
		}
	}
	return stats
}

// Summarize дополняет Stats выручкой, суммарной длительностью и числом клиентов
func Summarize(records []domain.AppointmentRecord) Summary {
	summary := Summary{Stats: Classify(records)}
	customers := make(map[string]struct{}, len(records))

	for i := range records {
		summary.Revenue += records[i].Amount
		summary.BookedMinutes += records[i].DurationMinutes

		key := records[i].Customer.Mobile
		if key == "" {
			key = records[i].Customer.Username
		}
		if key != "" {
			customers[key] = struct{}{}
		}
	}
	summary.UniqueCustomers = len(customers)

	return summary
}

package get_appointments

import (
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/classifier"
	listAppointments "github.com/m04kA/SMC-SalonDashboard/internal/usecase/list_appointments"
)

// StatsResponse счетчики по статусам
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	NoShow    int `json:"noShow"`
}

// SummaryResponse агрегаты отфильтрованного списка
type SummaryResponse struct {
	StatsResponse
	Revenue         float64 `json:"revenue"`
	BookedMinutes   int     `json:"bookedMinutes"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

// AppointmentResponse строка списка записей
type AppointmentResponse struct {
	ID              string   `json:"id"`
	Date            string   `json:"date,omitempty"`
	LongDate        string   `json:"longDate,omitempty"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Amount          float64  `json:"amount"`
	Status          string   `json:"status"`
	Category        string   `json:"category"`
	Upcoming        bool     `json:"upcoming"`
	Username        string   `json:"username"`
	Mobile          string   `json:"mobile"`
	Services        []string `json:"services"`
	ULID            string   `json:"ulid,omitempty"`
}

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Stats        StatsResponse         `json:"stats"`
	Summary      SummaryResponse       `json:"summary"`
	Appointments []AppointmentResponse `json:"appointments"`
	Retryable    bool                  `json:"retryable,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// ToUseCaseRequest разбирает query параметры tab, q, period, start, end, username, mobile
func ToUseCaseRequest(sess *domain.SessionContext, query url.Values, loc *time.Location) (*listAppointments.Request, error) {
	tab, err := classifier.ParseTab(query.Get("tab"))
	if err != nil {
		return nil, err
	}

	period, err := classifier.ParsePeriod(query.Get("period"), query.Get("start"), query.Get("end"), loc)
	if err != nil {
		return nil, err
	}

	return &listAppointments.Request{
		Session:  sess,
		Username: strings.TrimSpace(query.Get("username")),
		Mobile:   strings.TrimSpace(query.Get("mobile")),
		View: classifier.View{
			Tab:    tab,
			Query:  query.Get("q"),
			Period: period,
		},
	}, nil
}

func fromStats(s classifier.Stats) StatsResponse {
	return StatsResponse{
		Total:     s.Total,
		Confirmed: s.Confirmed,
		Cancelled: s.Cancelled,
		Declined:  s.Declined,
		Pending:   s.Pending,
		NoShow:    s.NoShow,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAppointments.Response) *AppointmentsResponse {
	out := &AppointmentsResponse{
		Stats: fromStats(resp.Stats),
		Summary: SummaryResponse{
			StatsResponse:   fromStats(resp.Summary.Stats),
			Revenue:         resp.Summary.Revenue,
			BookedMinutes:   resp.Summary.BookedMinutes,
			UniqueCustomers: resp.Summary.UniqueCustomers,
		},
		Appointments: make([]AppointmentResponse, 0, len(resp.Records)),
		Retryable:    resp.Retryable,
	}

	for i := range resp.Records {
		rec := &resp.Records[i]
		services := make([]string, 0, len(rec.Services))
		for _, s := range rec.Services {
			services = append(services, s.DisplayName())
		}

		item := AppointmentResponse{
			ID:              rec.ID,
			LongDate:        rec.LongDate(),
			StartTime:       rec.StartTime,
			EndTime:         rec.EndTime,
			DurationMinutes: rec.DurationMinutes,
			Amount:          rec.Amount,
			Status:          rec.Status,
			Category:        string(rec.Category()),
			Upcoming:        classifier.IsUpcoming(*rec, resp.Reference),
			Username:        rec.Customer.Username,
			Mobile:          rec.Customer.Mobile,
			Services:        services,
			ULID:            rec.ULID,
		}
		if !rec.Date.IsZero() {
			item.Date = rec.Date.Format(domain.DateFormat)
		}
		out.Appointments = append(out.Appointments, item)
	}
	return out
}

package salonapi

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// SignUpRequest тело POST /sign_up
type SignUpRequest struct {
	Mobile       string `json:"mobile"`
	ReferralCode string `json:"referral_code"`
	Name         string `json:"name"`
}

// SignUpResult ответ на регистрацию
type SignUpResult struct {
	Message string
}

// VerifyResult ответ POST /verify
type VerifyResult struct {
	Token string
	Name  string
}

// AppointmentFilters необязательные фильтры списка записей
type AppointmentFilters struct {
	Username string
	Mobile   string
}

// CreateAppointmentPayload тело POST /appointments
type CreateAppointmentPayload struct {
	SalonID    string   `json:"salon_id"`
	SlotID     string   `json:"slot_id"`
	Date       string   `json:"date"`
	ServiceIDs []string `json:"service_ids"`
	Name       string   `json:"name"`
	Mobile     string   `json:"mobile"`
	Email      string   `json:"email,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// messageResponse общий вид ответа с сообщением
type messageResponse struct {
	Message string      `json:"message"`
	Error   string      `json:"error"`
	Errors  interface{} `json:"errors"`
}

func (m messageResponse) text() string {
	switch {
	case m.Message != "":
		return m.Message
	case m.Error != "":
		return m.Error
	}

	switch errs := m.Errors.(type) {
	case string:
		return errs
	case []interface{}:
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			if s, ok := e.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]interface{}:
		parts := make([]string, 0, len(errs))
		for field, v := range errs {
			switch val := v.(type) {
			case string:
				parts = append(parts, field+" "+val)
			case []interface{}:
				for _, item := range val {
					if s, ok := item.(string); ok {
						parts = append(parts, field+" "+s)
					}
				}
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

type verifyResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	User        struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
}

type salonServiceDTO struct {
	ID       flexString `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Duration flexInt    `json:"duration"`
	Price    flexFloat  `json:"price"`
	Gender   string     `json:"gender"`
}

func (s salonServiceDTO) toDomain() domain.ServiceOffering {
	return domain.ServiceOffering{
		ID:              string(s.ID),
		Name:            s.Name,
		Category:        s.Category,
		DurationMinutes: int(s.Duration),
		Price:           float64(s.Price),
		Gender:          strings.ToLower(s.Gender),
	}
}

type salonDTO struct {
	ID            flexString        `json:"id"`
	Name          string            `json:"name"`
	SalonServices []salonServiceDTO `json:"salon_services"`
}

type timeSlotDTO struct {
	ID        flexString `json:"id"`
	SlotID    flexString `json:"slot_id"`
	Time      string     `json:"time"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Available *bool      `json:"available"`
}

func (s timeSlotDTO) toDomain() domain.TimeSlot {
	id := string(s.SlotID)
	if id == "" {
		id = string(s.ID)
	}
	start := s.StartTime
	if start == "" {
		start = s.Time
	}
	available := true
	if s.Available != nil {
		available = *s.Available
	}
	return domain.TimeSlot{
		ID:        id,
		StartTime: start,
		EndTime:   s.EndTime,
		Available: available,
	}
}

type availabilityDTO struct {
	Available *bool         `json:"available"`
	Message   string        `json:"message"`
	Slots     []timeSlotDTO `json:"slots"`
}

type customerDTO struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
}

type bookedServiceDTO struct {
	CustomName   string `json:"custom_name"`
	ServiceName  string `json:"service_name"`
	Name         string `json:"name"`
	SalonService *struct {
		Name string `json:"name"`
	} `json:"salon_service"`
}

func (s bookedServiceDTO) toDomain() domain.BookedService {
	name := s.ServiceName
	if name == "" && s.SalonService != nil {
		name = s.SalonService.Name
	}
	if name == "" {
		name = s.Name
	}
	return domain.BookedService{CustomName: s.CustomName, ServiceName: name}
}

type appointmentDTO struct {
	ID          flexString         `json:"id"`
	Date        string             `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Duration    flexInt            `json:"duration"`
	Amount      flexFloat          `json:"amount"`
	TotalAmount flexFloat          `json:"total_amount"`
	Status      string             `json:"status"`
	User        *customerDTO       `json:"user"`
	Customer    *customerDTO       `json:"customer"`
	Services    []bookedServiceDTO `json:"services"`
	ULID        string             `json:"ulid"`
}

func (a appointmentDTO) toRecord(loc *time.Location) domain.AppointmentRecord {
	customer := a.User
	if customer == nil {
		customer = a.Customer
	}
	var c domain.Customer
	if customer != nil {
		c.Username = customer.Username
		if c.Username == "" {
			c.Username = customer.Name
		}
		c.Mobile = customer.Mobile
	}

	services := make([]domain.BookedService, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, s.toDomain())
	}

	amount := float64(a.Amount)
	if amount == 0 {
		amount = float64(a.TotalAmount)
	}

	return domain.AppointmentRecord{
		ID:              string(a.ID),
		Date:            parseDate(a.Date, loc),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		DurationMinutes: int(a.Duration),
		Amount:          amount,
		Status:          a.Status,
		Customer:        c,
		Services:        services,
		ULID:            a.ULID,
	}
}

func (a appointmentDTO) toServer() *domain.ServerAppointment {
	amount := float64(a.Amount)
	if amount == 0 {
		amount = float64(a.TotalAmount)
	}
	return &domain.ServerAppointment{
		ID:        string(a.ID),
		Status:    a.Status,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Amount:    amount,
		ULID:      a.ULID,
	}
}

type billItemDTO struct {
	Name        string    `json:"name"`
	ServiceName string    `json:"service_name"`
	Price       flexFloat `json:"price"`
}

type billDTO struct {
	ULID  string `json:"ulid"`
	Salon *struct {
		Name string `json:"name"`
	} `json:"salon"`
	User      *customerDTO  `json:"user"`
	Date      string        `json:"date"`
	StartTime string        `json:"start_time"`
	Services  []billItemDTO `json:"services"`
	Subtotal  flexFloat     `json:"subtotal"`
	Tax       flexFloat     `json:"tax"`
	Discount  flexFloat     `json:"discount"`
	Total     flexFloat     `json:"total"`
}

func (b billDTO) toDomain() *domain.Bill {
	bill := &domain.Bill{
		ULID:      b.ULID,
		Date:      b.Date,
		StartTime: b.StartTime,
		Subtotal:  float64(b.Subtotal),
		Tax:       float64(b.Tax),
		Discount:  float64(b.Discount),
		Total:     float64(b.Total),
		Items:     make([]domain.BillItem, 0, len(b.Services)),
	}
	if b.Salon != nil {
		bill.SalonName = b.Salon.Name
	}
	if b.User != nil {
		bill.CustomerName = b.User.Username
		if bill.CustomerName == "" {
			bill.CustomerName = b.User.Name
		}
		bill.Mobile = b.User.Mobile
	}
	for _, item := range b.Services {
		name := item.Name
		if name == "" {
			name = item.ServiceName
		}
		bill.Items = append(bill.Items, domain.BillItem{Name: name, Price: float64(item.Price)})
	}
	if bill.Total == 0 {
		bill.Total = bill.Subtotal + bill.Tax - bill.Discount
	}
	return bill
}

// parseDate разбирает дату записи; нераспознанная дата дает нулевое значение
func parseDate(value string, loc *time.Location) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{domain.DateFormat, time.RFC3339, "2006-01-02T15:04:05", domain.APIDateFormat} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			if layout == time.RFC3339 {
				t = t.In(loc)
			}
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		}
	}
	return time.Time{}
}

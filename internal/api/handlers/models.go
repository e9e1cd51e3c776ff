package handlers

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// SegmentResponse сегмент цепочки услуг
type SegmentResponse struct {
	ID              string  `json:"id"`
	ServiceID       string  `json:"serviceId"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	StartTime       string  `json:"startTime"` // 10:00 AM
	EndTime         string  `json:"endTime"`
	Start           string  `json:"start"` // RFC3339
	End             string  `json:"end"`
}

// SlotResponse выбранный стартовый слот
type SlotResponse struct {
	SlotID      string `json:"slotId"`
	Start       string `json:"start"`
	DisplayTime string `json:"displayTime"`
}

// BookingStateResponse состояние незавершенной записи сессии
type BookingStateResponse struct {
	Date          string            `json:"date,omitempty"`
	Slot          *SlotResponse     `json:"slot,omitempty"`
	Services      []SegmentResponse `json:"services"`
	TotalDuration int               `json:"totalDuration"`
	TotalPrice    float64           `json:"totalPrice"`
}

// FromBookingState конвертирует состояние записи в HTTP response
func FromBookingState(state bookingsession.State) *BookingStateResponse {
	resp := &BookingStateResponse{
		Services:      make([]SegmentResponse, 0, len(state.Chain)),
		TotalDuration: state.TotalDuration(),
		TotalPrice:    state.TotalPrice(),
	}
	if state.HasDate() {
		resp.Date = state.Date.Format(domain.DateFormat)
	}
	if state.Slot != nil {
		resp.Slot = &SlotResponse{
			SlotID:      state.Slot.SlotID,
			Start:       state.Slot.Start.Format(time.RFC3339),
			DisplayTime: state.Slot.DisplayTime,
		}
	}

	for _, seg := range state.Chain {
		resp.Services = append(resp.Services, SegmentResponse{
			ID:              seg.ID,
			ServiceID:       seg.Metadata.ServiceID,
			Name:            seg.Metadata.Name,
			Category:        seg.Metadata.Category,
			Gender:          seg.Metadata.Gender,
			Price:           seg.Metadata.Price,
			DurationMinutes: seg.Metadata.DurationMinutes,
			StartTime:       seg.Start.Format(domain.DisplayTimeFormat),
			EndTime:         seg.End.Format(domain.DisplayTimeFormat),
			Start:           seg.Start.Format(time.RFC3339),
			End:             seg.End.Format(time.RFC3339),
		})
	}
	return resp
}

package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// FetchSalonServices получает каталог услуг салона, указанного в токене сессии
func (c *Client) FetchSalonServices(ctx context.Context, sess *domain.SessionContext) ([]domain.ServiceOffering, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if !sess.HasSalon() {
		return nil, ErrMissingSalonIdentity
	}

	c.log.Info("Fetching services for salon=%s", sess.SalonID)

	resp, err := c.do(ctx, request{
		operation: "fetch_salon_services",
		method:    http.MethodGet,
		path:      "/salons/" + url.PathEscape(sess.SalonID),
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("FetchSalonServices: salon=%s: %v", sess.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !resp.ok() {
		c.log.Warn("FetchSalonServices: salon=%s, unexpected status %d", sess.SalonID, resp.status)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.status)
	}

	var salon salonDTO
	if err := json.Unmarshal(unwrap(resp.body, "salon", "data"), &salon); err != nil {
		c.log.Error("FetchSalonServices: failed to decode salon=%s: %v", sess.SalonID, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	services := make([]domain.ServiceOffering, 0, len(salon.SalonServices))
	for _, s := range salon.SalonServices {
		services = append(services, s.toDomain())
	}

	c.log.Info("Fetched %d services for salon=%s", len(services), sess.SalonID)
	return services, nil
}

// FetchTimeSlots получает слоты салона на дату.
// Отсутствие слотов (404 или пустой ответ) - пустой список, а не ошибка.
func (c *Client) FetchTimeSlots(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time) ([]domain.TimeSlot, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if salonID == "" {
		return nil, ErrMissingSalonIdentity
	}

	query := url.Values{}
	query.Set("date", date.Format(domain.APIDateFormat))

	resp, err := c.do(ctx, request{
		operation: "fetch_time_slots",
		method:    http.MethodGet,
		path:      "/salons/" + url.PathEscape(salonID) + "/availability",
		query:     query,
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("FetchTimeSlots: salon=%s, date=%s: %v", salonID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if resp.status == http.StatusNotFound {
		c.log.Info("FetchTimeSlots: no slots for salon=%s, date=%s", salonID, date.Format(domain.DateFormat))
		return []domain.TimeSlot{}, nil
	}
	if !resp.ok() {
		c.log.Warn("FetchTimeSlots: salon=%s, unexpected status %d", salonID, resp.status)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.status)
	}

	raw := unwrap(resp.body, "slots", "available_slots", "data")
	if isNull(raw) || !isArray(raw) {
		// Объект без списка слотов - API сообщает, что свободного времени нет
		return []domain.TimeSlot{}, nil
	}

	var dtos []timeSlotDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		c.log.Error("FetchTimeSlots: failed to decode slots for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	slots := make([]domain.TimeSlot, 0, len(dtos))
	for _, dto := range dtos {
		slots = append(slots, dto.toDomain())
	}

	c.log.Info("Fetched %d slots for salon=%s, date=%s", len(slots), salonID, date.Format(domain.DateFormat))
	return slots, nil
}

// CheckAvailability проверяет, вмещает ли салон суммарную длительность цепочки
func (c *Client) CheckAvailability(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time, totalMinutes int) (*domain.AvailabilityResult, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if salonID == "" {
		return nil, ErrMissingSalonIdentity
	}
	if totalMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("date", date.Format(domain.APIDateFormat))
	query.Set("duration", strconv.Itoa(totalMinutes))

	resp, err := c.do(ctx, request{
		operation: "check_availability",
		method:    http.MethodGet,
		path:      "/salons/" + url.PathEscape(salonID) + "/availability_for_business",
		query:     query,
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("CheckAvailability: salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !resp.ok() {
		c.log.Warn("CheckAvailability: salon=%s, unexpected status %d", salonID, resp.status)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.status)
	}

	raw := unwrap(resp.body, "data")
	result := &domain.AvailabilityResult{}

	if isArray(raw) {
		var dtos []timeSlotDTO
		if err := json.Unmarshal(raw, &dtos); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
		}
		for _, dto := range dtos {
			result.Slots = append(result.Slots, dto.toDomain())
		}
		result.Available = len(result.Slots) > 0
		return result, nil
	}

	var dto availabilityDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		c.log.Error("CheckAvailability: failed to decode response for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}
	for _, s := range dto.Slots {
		result.Slots = append(result.Slots, s.toDomain())
	}
	result.Message = dto.Message
	if dto.Available != nil {
		result.Available = *dto.Available
	} else {
		result.Available = len(result.Slots) > 0
	}

	c.log.Info("CheckAvailability: salon=%s, date=%s, duration=%d, available=%t",
		salonID, date.Format(domain.DateFormat), totalMinutes, result.Available)
	return result, nil
}

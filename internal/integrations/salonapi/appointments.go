package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// CreateAppointment создает запись в салоне.
// Отказ сервера возвращается как APIError с ErrBookingFailed и сообщением сервера.
func (c *Client) CreateAppointment(ctx context.Context, sess *domain.SessionContext, salonID string, payload CreateAppointmentPayload) (*domain.ServerAppointment, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if salonID == "" {
		return nil, ErrMissingSalonIdentity
	}
	if payload.SlotID == "" || len(payload.ServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: slot and services are required", ErrInvalidInput)
	}
	payload.SalonID = salonID

	body, err := jsonBody(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInvalidInput, err)
	}

	c.log.Info("Creating appointment: salon=%s, slot=%s, services=%d", salonID, payload.SlotID, len(payload.ServiceIDs))

	resp, err := c.do(ctx, request{
		operation:   "create_appointment",
		method:      http.MethodPost,
		path:        "/appointments",
		body:        body,
		contentType: "application/json",
		token:       sess.Token,
	})
	if err != nil {
		c.log.Error("CreateAppointment: salon=%s: %v", salonID, err)
		return nil, newAPIError(ErrBookingFailed, 0, "", msgBookingFailed)
	}
	if !resp.ok() {
		c.log.Warn("CreateAppointment: rejected for salon=%s, status=%d", salonID, resp.status)
		return nil, newAPIError(ErrBookingFailed, resp.status, resp.message(), msgBookingFailed)
	}

	var dto appointmentDTO
	if err := json.Unmarshal(unwrap(resp.body, "appointment", "data"), &dto); err != nil {
		// Запись создана, ответ не разобран - возвращаем пустой результат
		c.log.Warn("CreateAppointment: failed to decode created appointment for salon=%s: %v", salonID, err)
		return &domain.ServerAppointment{}, nil
	}

	created := dto.toServer()
	c.log.Info("Appointment created: id=%s, salon=%s", created.ID, salonID)
	return created, nil
}

// FetchAppointments получает записи салона с необязательными фильтрами.
// Любая ошибка транспорта или формата ответа приводится к ErrFetchFailed.
func (c *Client) FetchAppointments(ctx context.Context, sess *domain.SessionContext, filters AppointmentFilters) ([]domain.AppointmentRecord, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if !sess.HasSalon() {
		return nil, ErrMissingSalonIdentity
	}

	query := url.Values{}
	if v := strings.TrimSpace(filters.Username); v != "" {
		query.Set("username", v)
	}
	if v := strings.TrimSpace(filters.Mobile); v != "" {
		query.Set("mobile", v)
	}

	c.log.Info("Fetching appointments for salon=%s", sess.SalonID)

	resp, err := c.do(ctx, request{
		operation: "fetch_appointments",
		method:    http.MethodGet,
		path:      "/salons/" + url.PathEscape(sess.SalonID) + "/appointments",
		query:     query,
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("FetchAppointments: salon=%s: %v", sess.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !resp.ok() {
		c.log.Warn("FetchAppointments: salon=%s, unexpected status %d", sess.SalonID, resp.status)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.status)
	}

	raw := unwrap(resp.body, "appointments", "data")
	if !isArray(raw) {
		c.log.Warn("FetchAppointments: salon=%s, payload is not a list", sess.SalonID)
		return nil, fmt.Errorf("%w: appointments payload is not a list", ErrFetchFailed)
	}

	var dtos []appointmentDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		c.log.Error("FetchAppointments: failed to decode appointments for salon=%s: %v", sess.SalonID, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	records := make([]domain.AppointmentRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, dto.toRecord(c.loc))
	}

	c.log.Info("Fetched %d appointments for salon=%s", len(records), sess.SalonID)
	return records, nil
}

// GenerateBill запускает отправку счета по записи.
// Отказ сервера и транспортные сбои возвращаются как BillResult{Success: false};
// ошибка возможна только при отсутствии авторизации или пустом идентификаторе.
func (c *Client) GenerateBill(ctx context.Context, sess *domain.SessionContext, appointmentID string) (domain.BillResult, error) {
	if err := authorize(sess); err != nil {
		return domain.BillResult{}, err
	}
	if strings.TrimSpace(appointmentID) == "" {
		return domain.BillResult{}, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	resp, err := c.do(ctx, request{
		operation: "generate_bill",
		method:    http.MethodGet,
		path:      "/appointments/" + url.PathEscape(appointmentID) + "/send_bill",
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("GenerateBill: appointment=%s: %v", appointmentID, err)
		return domain.BillResult{Success: false, Message: msgBillFailed}, nil
	}

	msg := resp.message()
	if !resp.ok() {
		c.log.Warn("GenerateBill: rejected for appointment=%s, status=%d", appointmentID, resp.status)
		if msg == "" {
			msg = msgBillFailed
		}
		return domain.BillResult{Success: false, Message: msg}, nil
	}

	var envelope struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(resp.body, &envelope); err == nil && envelope.Success != nil && !*envelope.Success {
		if msg == "" {
			msg = msgBillFailed
		}
		c.log.Warn("GenerateBill: server reported failure for appointment=%s: %s", appointmentID, msg)
		return domain.BillResult{Success: false, Message: msg}, nil
	}

	if msg == "" {
		msg = msgBillSent
	}
	c.log.Info("GenerateBill: bill sent for appointment=%s", appointmentID)
	return domain.BillResult{Success: true, Message: msg}, nil
}

// ConfirmAppointment подтверждает запись.
// Отказ сервера возвращается как APIError с ErrConfirmFailed.
func (c *Client) ConfirmAppointment(ctx context.Context, sess *domain.SessionContext, appointmentID string) (*domain.ServerAppointment, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	if strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	resp, err := c.do(ctx, request{
		operation: "confirm_appointment",
		method:    http.MethodPut,
		path:      "/appointments/" + url.PathEscape(appointmentID) + "/confirm",
		token:     sess.Token,
	})
	if err != nil {
		c.log.Error("ConfirmAppointment: appointment=%s: %v", appointmentID, err)
		return nil, newAPIError(ErrConfirmFailed, 0, "", msgConfirmFailed)
	}
	if !resp.ok() {
		c.log.Warn("ConfirmAppointment: rejected for appointment=%s, status=%d", appointmentID, resp.status)
		return nil, newAPIError(ErrConfirmFailed, resp.status, resp.message(), msgConfirmFailed)
	}

	var dto appointmentDTO
	if err := json.Unmarshal(unwrap(resp.body, "appointment", "data"), &dto); err != nil {
		c.log.Warn("ConfirmAppointment: failed to decode appointment=%s: %v", appointmentID, err)
		return &domain.ServerAppointment{ID: appointmentID, Status: string(domain.StatusConfirmed)}, nil
	}

	confirmed := dto.toServer()
	if confirmed.ID == "" {
		confirmed.ID = appointmentID
	}
	c.log.Info("Appointment confirmed: id=%s, status=%s", confirmed.ID, confirmed.Status)
	return confirmed, nil
}

// FetchPublicBill получает счет по ULID. Авторизация не требуется.
func (c *Client) FetchPublicBill(ctx context.Context, ulid string) (*domain.Bill, error) {
	ulid = strings.TrimSpace(ulid)
	if ulid == "" {
		return nil, fmt.Errorf("%w: ulid is required", ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("ulid", ulid)

	resp, err := c.do(ctx, request{
		operation: "fetch_public_bill",
		method:    http.MethodGet,
		path:      "/appointments/bill",
		query:     query,
	})
	if err != nil {
		c.log.Error("FetchPublicBill: ulid=%s: %v", ulid, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: ulid=%s", ErrBillNotFound, ulid)
	}
	if !resp.ok() {
		c.log.Warn("FetchPublicBill: ulid=%s, unexpected status %d", ulid, resp.status)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.status)
	}

	raw := unwrap(resp.body, "bill", "data")
	if isNull(raw) {
		return nil, fmt.Errorf("%w: ulid=%s", ErrBillNotFound, ulid)
	}

	var dto billDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		c.log.Error("FetchPublicBill: failed to decode bill ulid=%s: %v", ulid, err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	bill := dto.toDomain()
	if bill.ULID == "" {
		bill.ULID = ulid
	}
	return bill, nil
}

package salonapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveGatewayCall(operation, outcome string, _ time.Duration) {
	o.calls = append(o.calls, operation+":"+outcome)
}

var testSession = &domain.SessionContext{Token: "tkn", SalonID: "7", Mobile: "9876543210"}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{}, WithLocation(time.UTC)), &hits
}

func TestClient_UnauthenticatedBeforeNetwork(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()
	anon := &domain.SessionContext{}

	_, err := client.FetchSalonServices(ctx, anon)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.FetchTimeSlots(ctx, nil, "7", time.Now())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.CheckAvailability(ctx, anon, "7", time.Now(), 30)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.CreateAppointment(ctx, anon, "7", CreateAppointmentPayload{SlotID: "1", ServiceIDs: []string{"1"}})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.FetchAppointments(ctx, anon, AppointmentFilters{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.GenerateBill(ctx, anon, "1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = client.ConfirmAppointment(ctx, anon, "1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestClient_MissingSalonIdentity(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	sess := &domain.SessionContext{Token: "tkn"}

	_, err := client.FetchSalonServices(context.Background(), sess)
	assert.ErrorIs(t, err, ErrMissingSalonIdentity)

	_, err = client.FetchAppointments(context.Background(), sess, AppointmentFilters{})
	assert.ErrorIs(t, err, ErrMissingSalonIdentity)

	_, err = client.FetchTimeSlots(context.Background(), sess, "", time.Now())
	assert.ErrorIs(t, err, ErrMissingSalonIdentity)

	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestClient_FetchSalonServices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salons/7", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":7,"name":"Glow","salon_services":[
			{"id":1,"name":"Haircut","category":"Hair","duration":30,"price":"250.0","gender":"Male"},
			{"id":"2","name":"Beard","duration":"15","price":100}]}`)
	})

	services, err := client.FetchSalonServices(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, domain.ServiceOffering{
		ID: "1", Name: "Haircut", Category: "Hair", DurationMinutes: 30, Price: 250, Gender: "male",
	}, services[0])
	assert.Equal(t, "2", services[1].ID)
	assert.Equal(t, 15, services[1].DurationMinutes)
	assert.Equal(t, 100.0, services[1].Price)
}

func TestClient_FetchTimeSlots(t *testing.T) {
	date := time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)

	t.Run("formats date and decodes slots", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/salons/7/availability", r.URL.Path)
			assert.Equal(t, "24/04/2025", r.URL.Query().Get("date"))
			_, _ = io.WriteString(w, `{"slots":[{"id":11,"start_time":"10:00","end_time":"10:30"},{"slot_id":"12","time":"10:30","available":false}]}`)
		})

		slots, err := client.FetchTimeSlots(context.Background(), testSession, "7", date)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, domain.TimeSlot{ID: "11", StartTime: "10:00", EndTime: "10:30", Available: true}, slots[0])
		assert.Equal(t, "12", slots[1].ID)
		assert.Equal(t, "10:30", slots[1].StartTime)
		assert.False(t, slots[1].Available)
	})

	t.Run("not found is an empty list", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		slots, err := client.FetchTimeSlots(context.Background(), testSession, "7", date)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("object without slots is an empty list", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"message":"Salon closed"}`)
		})

		slots, err := client.FetchTimeSlots(context.Background(), testSession, "7", date)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("server error is fetch failed", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchTimeSlots(context.Background(), testSession, "7", date)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}

func TestClient_CheckAvailability(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/salons/7/availability_for_business", r.URL.Path)
		assert.Equal(t, "45", r.URL.Query().Get("duration"))
		_, _ = io.WriteString(w, `{"available":false,"message":"Fully booked"}`)
	})
	date := time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)

	_, err := client.CheckAvailability(context.Background(), testSession, "7", date, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))

	result, err := client.CheckAvailability(context.Background(), testSession, "7", date, 45)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "Fully booked", result.Message)
}

func TestClient_CreateAppointment(t *testing.T) {
	t.Run("sends ordered service ids", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"salon_id":"7","slot_id":"11","date":"24/04/2025","service_ids":["3","1"],"name":"Asha","mobile":"9876543210"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"appointment":{"id":501,"status":"Pending","total_amount":"350"}}`)
		})

		created, err := client.CreateAppointment(context.Background(), testSession, "7", CreateAppointmentPayload{
			SlotID: "11", Date: "24/04/2025", ServiceIDs: []string{"3", "1"}, Name: "Asha", Mobile: "9876543210",
		})
		require.NoError(t, err)
		assert.Equal(t, "501", created.ID)
		assert.Equal(t, "Pending", created.Status)
		assert.Equal(t, 350.0, created.Amount)
	})

	t.Run("server message passed through verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"Slot already taken"}`)
		})

		_, err := client.CreateAppointment(context.Background(), testSession, "7", CreateAppointmentPayload{
			SlotID: "11", ServiceIDs: []string{"1"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBookingFailed)
		assert.Equal(t, "Slot already taken", MessageOf(err))

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	})

	t.Run("server message keeps surrounding whitespace", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"  Slot already taken.\n"}`)
		})

		_, err := client.CreateAppointment(context.Background(), testSession, "7", CreateAppointmentPayload{
			SlotID: "11", ServiceIDs: []string{"1"},
		})
		assert.ErrorIs(t, err, ErrBookingFailed)
		assert.Equal(t, "  Slot already taken.\n", MessageOf(err))
	})

	t.Run("blank server message falls back to generic", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"   "}`)
		})

		_, err := client.CreateAppointment(context.Background(), testSession, "7", CreateAppointmentPayload{
			SlotID: "11", ServiceIDs: []string{"1"},
		})
		assert.ErrorIs(t, err, ErrBookingFailed)
		assert.Equal(t, msgBookingFailed, MessageOf(err))
	})

	t.Run("generic message without server text", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateAppointment(context.Background(), testSession, "7", CreateAppointmentPayload{
			SlotID: "11", ServiceIDs: []string{"1"},
		})
		assert.ErrorIs(t, err, ErrBookingFailed)
		assert.Equal(t, msgBookingFailed, MessageOf(err))
	})
}

func TestClient_FetchAppointments(t *testing.T) {
	t.Run("array payload with filters", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/salons/7/appointments", r.URL.Path)
			assert.Equal(t, "asha", r.URL.Query().Get("username"))
			assert.False(t, r.URL.Query().Has("mobile"))
			_, _ = io.WriteString(w, `[{"id":1,"date":"2025-04-24","start_time":"10:00","status":"Confirmed",
				"amount":"250","user":{"username":"asha","mobile":"9876543210"},
				"services":[{"custom_name":"","salon_service":{"name":"Haircut"}}]}]`)
		})

		records, err := client.FetchAppointments(context.Background(), testSession, AppointmentFilters{Username: "asha"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1", records[0].ID)
		assert.Equal(t, time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, 250.0, records[0].Amount)
		assert.Equal(t, "asha", records[0].Customer.Username)
		assert.Equal(t, "Haircut", records[0].ServiceNames())
	})

	t.Run("wrapped payload", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"appointments":[{"id":1},{"id":2}]}`)
		})

		records, err := client.FetchAppointments(context.Background(), testSession, AppointmentFilters{})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("non-array payload is fetch failed", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"error":"oops"}`)
		})

		_, err := client.FetchAppointments(context.Background(), testSession, AppointmentFilters{})
		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("transport failure is fetch failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		client := NewClient(srv.URL, time.Second, nopLogger{})

		_, err := client.FetchAppointments(context.Background(), testSession, AppointmentFilters{})
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}

func TestClient_GenerateBill(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments/42/send_bill", r.URL.Path)
			_, _ = io.WriteString(w, `{"success":true}`)
		})

		result, err := client.GenerateBill(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, msgBillSent, result.Message)
	})

	t.Run("business failure is a result", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"Customer has no email"}`)
		})

		result, err := client.GenerateBill(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Customer has no email", result.Message)
	})

	t.Run("success flag false in 200", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false}`)
		})

		result, err := client.GenerateBill(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msgBillFailed, result.Message)
	})

	t.Run("transport failure is a result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		client := NewClient(srv.URL, time.Second, nopLogger{})

		result, err := client.GenerateBill(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msgBillFailed, result.Message)
	})
}

func TestClient_ConfirmAppointment(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		if r.URL.Path == "/appointments/9/confirm" {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"errors":["Appointment already cancelled"]}`)
			return
		}
		_, _ = io.WriteString(w, `{"id":42,"status":"Confirmed"}`)
	})

	confirmed, err := client.ConfirmAppointment(context.Background(), testSession, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", confirmed.ID)
	assert.Equal(t, "Confirmed", confirmed.Status)

	_, err = client.ConfirmAppointment(context.Background(), testSession, "9")
	assert.ErrorIs(t, err, ErrConfirmFailed)
	assert.Equal(t, "Appointment already cancelled", MessageOf(err))
}

func TestClient_FetchPublicBill(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		if r.URL.Query().Get("ulid") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"bill":{"ulid":"01HX","salon":{"name":"Glow"},"user":{"name":"Asha","mobile":"9876543210"},
			"services":[{"name":"Haircut","price":250},{"service_name":"Beard","price":"100"}],"subtotal":350,"tax":"63"}}`)
	})

	bill, err := client.FetchPublicBill(context.Background(), "01HX")
	require.NoError(t, err)
	assert.Equal(t, "Glow", bill.SalonName)
	assert.Equal(t, "Asha", bill.CustomerName)
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "Beard", bill.Items[1].Name)
	assert.Equal(t, 413.0, bill.Total)

	_, err = client.FetchPublicBill(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestClient_SignUpAndVerify(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sign_up":
			_, _ = io.WriteString(w, `{"message":"OTP sent"}`)
		case "/verify":
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			if r.PostForm.Get("code") != "1234" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"error":"Invalid OTP"}`)
				return
			}
			_, _ = io.WriteString(w, `{"access_token":"abc","user":{"username":"asha"}}`)
		}
	})

	signUp, err := client.SignUp(context.Background(), SignUpRequest{Mobile: "9876543210", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent", signUp.Message)

	verified, err := client.Verify(context.Background(), "9876543210", "1234")
	require.NoError(t, err)
	assert.Equal(t, "abc", verified.Token)
	assert.Equal(t, "asha", verified.Name)

	_, err = client.Verify(context.Background(), "9876543210", "0000")
	assert.ErrorIs(t, err, ErrVerifyFailed)
	assert.Equal(t, "Invalid OTP", MessageOf(err))
}

func TestClient_ObservesCalls(t *testing.T) {
	observer := &recordingObserver{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	client := NewClient(srv.URL, time.Second, nopLogger{}, WithObserver(observer))

	_, _ = client.FetchSalonServices(context.Background(), testSession)

	assert.Equal(t, []string{"fetch_salon_services:server_error"}, observer.calls)
}

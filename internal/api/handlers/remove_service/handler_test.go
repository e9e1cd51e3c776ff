package remove_service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededManager(t *testing.T) (*bookingsession.Manager, []string) {
	t.Helper()

	ids := []string{"seg-1", "seg-2", "seg-3"}
	next := 0
	manager := bookingsession.NewManager(slotchain.NewBuilder(func() string {
		id := ids[next]
		next++
		return id
	}))

	_, err := manager.SelectDate("s1", time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = manager.SelectSlot("s1", time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC), domain.TimeSlot{ID: "slot-10", StartTime: "10:00", Available: true})
	require.NoError(t, err)

	for _, svc := range []domain.ServiceOffering{
		{ID: "1", Name: "Haircut", DurationMinutes: 30, Price: 300},
		{ID: "2", Name: "Beard Trim", DurationMinutes: 15, Price: 150},
		{ID: "3", Name: "Facial", DurationMinutes: 45, Price: 800},
	} {
		_, err = manager.AddService("s1", svc)
		require.NoError(t, err)
	}
	return manager, ids
}

func do(sessions BookingSessions, segmentID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/booking/services/"+segmentID, nil)
	req = mux.SetURLVars(req, map[string]string{"segmentId": segmentID})
	req = req.WithContext(middleware.WithSession(req.Context(), "s1", &domain.SessionContext{Token: "tok", SalonID: "12"}))
	rec := httptest.NewRecorder()
	NewHandler(sessions, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_ShiftsFollowingSegments(t *testing.T) {
	manager, _ := seededManager(t)

	rec := do(manager, "seg-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.BookingStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Services, 2)
	assert.Equal(t, "10:00 AM", body.Services[0].StartTime)
	assert.Equal(t, "10:15 AM", body.Services[0].EndTime)
	assert.Equal(t, "10:15 AM", body.Services[1].StartTime)
	assert.Equal(t, "11:00 AM", body.Services[1].EndTime)
	assert.Equal(t, 60, body.TotalDuration)
	assert.Equal(t, 950.0, body.TotalPrice)
}

func TestHandle_UnknownSegment(t *testing.T) {
	manager, _ := seededManager(t)

	rec := do(manager, "seg-404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, manager.Snapshot("s1").Chain, 3)
}

func TestHandle_NoSession(t *testing.T) {
	manager, _ := seededManager(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/booking/services/seg-1", nil)
	rec := httptest.NewRecorder()

	NewHandler(manager, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}


package generate_bill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GenerateBill(ctx context.Context, sess *domain.SessionContext, appointmentID string) (domain.BillResult, error) {
	args := m.Called(ctx, sess, appointmentID)
	return args.Get(0).(domain.BillResult), args.Error(1)
}

type manualScheduler struct {
	fns []func()
}

func (s *manualScheduler) Schedule(_ time.Duration, fn func()) {
	s.fns = append(s.fns, fn)
}

func (s *manualScheduler) fire() {
	for _, fn := range s.fns {
		fn()
	}
	s.fns = nil
}

type countingObserver struct {
	sent, failed int
}

func (o *countingObserver) ObserveBillResult(success bool) {
	if success {
		o.sent++
	} else {
		o.failed++
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var sess = &domain.SessionContext{Token: "tkn", SalonID: "7"}

func TestExecute_SuccessRevertsAfterDisplayTimeout(t *testing.T) {
	scheduler := &manualScheduler{}
	tracker := billstatus.NewTracker(scheduler, 3*time.Second, time.Minute)
	observer := &countingObserver{}
	gw := &mockGateway{}
	gw.On("GenerateBill", mock.Anything, sess, "42").Return(domain.BillResult{Success: true, Message: "Bill sent"}, nil)

	uc := NewUseCase(gw, tracker, observer, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Session: sess, AppointmentID: "42"})
	require.NoError(t, err)

	assert.True(t, resp.Result.Success)
	assert.Equal(t, billstatus.StateSucceeded, resp.Status.State)
	assert.Equal(t, 1, observer.sent)

	scheduler.fire()
	assert.Equal(t, billstatus.StateIdle, tracker.Get(sess.SalonID, "42").State)
}

func TestExecute_FailureIsAResultNotAnError(t *testing.T) {
	tracker := billstatus.NewTracker(&manualScheduler{}, 3*time.Second, time.Minute)
	observer := &countingObserver{}
	gw := &mockGateway{}
	gw.On("GenerateBill", mock.Anything, sess, "42").Return(domain.BillResult{Success: false, Message: "No email"}, nil)
	gw.On("GenerateBill", mock.Anything, sess, "43").Return(domain.BillResult{Success: true}, nil)

	uc := NewUseCase(gw, tracker, observer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Session: sess, AppointmentID: "42"})
	require.NoError(t, err)
	assert.False(t, resp.Result.Success)
	assert.Equal(t, billstatus.Entry{State: billstatus.StateFailed, Message: "No email", UpdatedAt: resp.Status.UpdatedAt}, resp.Status)

	_, err = uc.Execute(context.Background(), &Request{Session: sess, AppointmentID: "43"})
	require.NoError(t, err)

	assert.Equal(t, billstatus.StateFailed, tracker.Get(sess.SalonID, "42").State)
	assert.Equal(t, billstatus.StateSucceeded, tracker.Get(sess.SalonID, "43").State)
	assert.Equal(t, 1, observer.failed)
}

func TestExecute_InProgress(t *testing.T) {
	tracker := billstatus.NewTracker(&manualScheduler{}, 3*time.Second, time.Minute)
	require.NoError(t, tracker.Begin(sess.SalonID, "42"))
	gw := &mockGateway{}

	_, err := NewUseCase(gw, tracker, nil, nopLogger{}).Execute(context.Background(), &Request{Session: sess, AppointmentID: "42"})
	assert.ErrorIs(t, err, ErrBillInProgress)
	gw.AssertNotCalled(t, "GenerateBill", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_UnauthenticatedDoesNotStayLoading(t *testing.T) {
	tracker := billstatus.NewTracker(&manualScheduler{}, 3*time.Second, time.Minute)
	gw := &mockGateway{}
	gw.On("GenerateBill", mock.Anything, mock.Anything, "42").Return(domain.BillResult{}, salonapi.ErrUnauthenticated)

	_, err := NewUseCase(gw, tracker, nil, nopLogger{}).Execute(context.Background(), &Request{AppointmentID: "42"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, billstatus.StateFailed, tracker.Get("", "42").State)
}

func TestExecute_EmptyID(t *testing.T) {
	tracker := billstatus.NewTracker(&manualScheduler{}, 3*time.Second, time.Minute)

	_, err := NewUseCase(&mockGateway{}, tracker, nil, nopLogger{}).Execute(context.Background(), &Request{Session: sess, AppointmentID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package select_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) FetchTimeSlots(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, sess, salonID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	sess = &domain.SessionContext{Token: "tkn", SalonID: "7"}
	date = time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (*mockGateway, *bookingsession.Manager, *UseCase) {
	t.Helper()
	gw := &mockGateway{}
	sessions := bookingsession.NewManager(nil)
	return gw, sessions, NewUseCase(gw, sessions, nopLogger{})
}

func TestExecute_SelectsOfferedSlot(t *testing.T) {
	gw, sessions, uc := setup(t)
	_, err := sessions.SelectDate("s1", date)
	require.NoError(t, err)

	gw.On("FetchTimeSlots", mock.Anything, sess, "7", date).Return([]domain.TimeSlot{
		{ID: "11", StartTime: "10:00", Available: true},
		{ID: "12", StartTime: "10:30", Available: false},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "11"})
	require.NoError(t, err)
	require.NotNil(t, resp.State.Slot)
	assert.Equal(t, "11", resp.State.Slot.SlotID)
	assert.Equal(t, "10:00 AM", resp.State.Slot.DisplayTime)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "12"})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "99"})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_RequiresDate(t *testing.T) {
	gw, _, uc := setup(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "11"})
	assert.ErrorIs(t, err, ErrNoDateSelected)
	gw.AssertNotCalled(t, "FetchTimeSlots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_GatewayFailure(t *testing.T) {
	gw, sessions, uc := setup(t)
	_, _ = sessions.SelectDate("s1", date)
	gw.On("FetchTimeSlots", mock.Anything, sess, "7", date).Return(nil, salonapi.ErrFetchFailed)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "11"})
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Nil(t, sessions.Snapshot("s1").Slot)
}

func TestExecute_DateChangedWhileFetching(t *testing.T) {
	gw, sessions, uc := setup(t)
	_, err := sessions.SelectDate("s1", date)
	require.NoError(t, err)

	nextDay := date.AddDate(0, 0, 1)
	gw.On("FetchTimeSlots", mock.Anything, sess, "7", date).
		Run(func(mock.Arguments) {
			_, err := sessions.SelectDate("s1", nextDay)
			require.NoError(t, err)
		}).
		Return([]domain.TimeSlot{{ID: "11", StartTime: "10:00", Available: true}}, nil)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1", Session: sess, SlotID: "11"})
	assert.ErrorIs(t, err, ErrDateChanged)

	st := sessions.Snapshot("s1")
	assert.Nil(t, st.Slot)
	assert.True(t, st.Date.Equal(nextDay))
}

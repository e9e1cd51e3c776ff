package cleanup_sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) DeleteExpired(ctx context.Context, now time.Time) ([]string, error) {
	args := m.Called(ctx, now)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)

func TestExecute_ForgetsExpiredBookingState(t *testing.T) {
	bookings := bookingsession.NewManager(nil)
	for _, id := range []string{"expired-1", "expired-2", "alive"} {
		_, err := bookings.SelectDate(id, day)
		require.NoError(t, err)
	}
	require.Equal(t, 3, bookings.Len())

	now := time.Date(2025, 4, 24, 12, 0, 0, 0, time.UTC)
	repo := &mockSessions{}
	repo.On("DeleteExpired", mock.Anything, now).Return([]string{"expired-1", "expired-2"}, nil)

	removed, err := NewUseCase(repo, bookings, nopLogger{}).Execute(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, bookings.Len())
	assert.False(t, bookings.Snapshot("expired-1").HasDate())
	assert.True(t, bookings.Snapshot("alive").HasDate())
	repo.AssertExpectations(t)
}

func TestExecute_NothingExpired(t *testing.T) {
	repo := &mockSessions{}
	repo.On("DeleteExpired", mock.Anything, mock.Anything).Return(nil, nil)

	removed, err := NewUseCase(repo, bookingsession.NewManager(nil), nopLogger{}).Execute(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	bookings := bookingsession.NewManager(nil)
	_, err := bookings.SelectDate("s1", day)
	require.NoError(t, err)

	repo := &mockSessions{}
	repo.On("DeleteExpired", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err = NewUseCase(repo, bookings, nopLogger{}).Execute(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, bookings.Len())
}

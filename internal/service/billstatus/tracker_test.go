package billstatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduled struct {
	after time.Duration
	fn    func()
}

// manualScheduler запоминает callback'и и запускает их по команде теста
type manualScheduler struct {
	pending []scheduled
}

func (s *manualScheduler) Schedule(after time.Duration, fn func()) {
	s.pending = append(s.pending, scheduled{after: after, fn: fn})
}

func (s *manualScheduler) fireAll() {
	pending := s.pending
	s.pending = nil
	for _, p := range pending {
		p.fn()
	}
}

const salon = "salon-1"

func TestTracker_SuccessRevertsToIdleAfterTimeout(t *testing.T) {
	sched := &manualScheduler{}
	tracker := NewTracker(sched, 3*time.Second, time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	assert.Equal(t, StateLoading, tracker.Get(salon, "a1").State)

	tracker.Succeed(salon, "a1", "bill sent")
	assert.Equal(t, StateSucceeded, tracker.Get(salon, "a1").State)
	assert.Equal(t, "bill sent", tracker.Get(salon, "a1").Message)
	require.Len(t, sched.pending, 1)
	assert.Equal(t, 3*time.Second, sched.pending[0].after)

	sched.fireAll()
	assert.Equal(t, StateIdle, tracker.Get(salon, "a1").State)
	assert.Empty(t, tracker.Snapshot(salon))
	assert.Zero(t, tracker.Len())
}

func TestTracker_FailureStaysUntilNextAttempt(t *testing.T) {
	sched := &manualScheduler{}
	tracker := NewTracker(sched, 3*time.Second, time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	tracker.Fail(salon, "a1", "no email on file")

	got := tracker.Get(salon, "a1")
	assert.Equal(t, Entry{State: StateFailed, Message: "no email on file", UpdatedAt: got.UpdatedAt}, got)

	require.NoError(t, tracker.Begin(salon, "a1"))
	assert.Equal(t, StateLoading, tracker.Get(salon, "a1").State)

	// Истечение старой ошибки не трогает новую попытку
	sched.fireAll()
	assert.Equal(t, StateLoading, tracker.Get(salon, "a1").State)
}

func TestTracker_FailureExpiresAfterRetention(t *testing.T) {
	sched := &manualScheduler{}
	tracker := NewTracker(sched, 3*time.Second, 10*time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	tracker.Fail(salon, "a1", "boom")

	require.Len(t, sched.pending, 1)
	assert.Equal(t, 10*time.Minute, sched.pending[0].after)

	sched.fireAll()
	assert.Equal(t, StateIdle, tracker.Get(salon, "a1").State)
	assert.Zero(t, tracker.Len())
}

func TestTracker_RejectsConcurrentRequestForSameAppointment(t *testing.T) {
	tracker := NewTracker(&manualScheduler{}, time.Second, time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	assert.ErrorIs(t, tracker.Begin(salon, "a1"), ErrBillInProgress)
}

func TestTracker_AppointmentsAreIndependent(t *testing.T) {
	sched := &manualScheduler{}
	tracker := NewTracker(sched, time.Second, time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	require.NoError(t, tracker.Begin(salon, "a2"))
	tracker.Fail(salon, "a1", "boom")
	tracker.Succeed(salon, "a2", "")

	assert.Equal(t, map[string]Entry{
		"a1": tracker.Get(salon, "a1"),
		"a2": tracker.Get(salon, "a2"),
	}, tracker.Snapshot(salon))
}

func TestTracker_SalonsAreIsolated(t *testing.T) {
	tracker := NewTracker(&manualScheduler{}, time.Second, time.Minute)

	require.NoError(t, tracker.Begin("salon-a", "appt-1"))
	tracker.Fail("salon-a", "appt-1", "customer has no email")

	assert.Empty(t, tracker.Snapshot("salon-b"))
	assert.Equal(t, StateIdle, tracker.Get("salon-b", "appt-1").State)

	// Одинаковый id записи в другом салоне не блокируется
	require.NoError(t, tracker.Begin("salon-b", "appt-1"))
	require.NoError(t, tracker.Begin("salon-a", "appt-1"))
	assert.Len(t, tracker.Snapshot("salon-a"), 1)
	assert.Len(t, tracker.Snapshot("salon-b"), 1)
}

func TestTracker_StaleExpiryDoesNotClobberNewerState(t *testing.T) {
	sched := &manualScheduler{}
	tracker := NewTracker(sched, time.Second, time.Minute)

	require.NoError(t, tracker.Begin(salon, "a1"))
	tracker.Succeed(salon, "a1", "")
	require.NoError(t, tracker.Begin(salon, "a1"))

	sched.fireAll()

	assert.Equal(t, StateLoading, tracker.Get(salon, "a1").State)
}

func TestTracker_EmptyID(t *testing.T) {
	tracker := NewTracker(nil, time.Second, time.Minute)
	assert.ErrorIs(t, tracker.Begin(salon, ""), ErrEmptyAppointmentID)
	assert.Equal(t, StateIdle, tracker.Get(salon, "unknown").State)
}

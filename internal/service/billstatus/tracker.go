// Package billstatus хранит состояние генерации счета для каждой записи отдельно.
// Записи разных салонов не пересекаются.
package billstatus

import (
	"sync"
	"time"
)

// State состояние генерации счета
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Entry состояние одной записи
type Entry struct {
	State     State
	Message   string
	UpdatedAt time.Time
}

type key struct {
	salonID       string
	appointmentID string
}

type entry struct {
	Entry
	generation uint64
}

// Tracker отображение (salonID, appointmentID) -> состояние.
// Состояние succeeded возвращается в idle через displayTimeout, failed - через failedRetention.
type Tracker struct {
	mu              sync.Mutex
	entries         map[key]*entry
	scheduler       Scheduler
	displayTimeout  time.Duration
	failedRetention time.Duration
	now             func() time.Time
}

// NewTracker создает Tracker; nil scheduler заменяется на TimerScheduler
func NewTracker(scheduler Scheduler, displayTimeout, failedRetention time.Duration) *Tracker {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	return &Tracker{
		entries:         make(map[key]*entry),
		scheduler:       scheduler,
		displayTimeout:  displayTimeout,
		failedRetention: failedRetention,
		now:             time.Now,
	}
}

// Begin переводит запись в loading. Повторный вызов во время loading возвращает ErrBillInProgress.
func (t *Tracker) Begin(salonID, appointmentID string) error {
	if appointmentID == "" {
		return ErrEmptyAppointmentID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(key{salonID, appointmentID})
	if e.State == StateLoading {
		return ErrBillInProgress
	}
	t.set(e, StateLoading, "")
	return nil
}

// Succeed фиксирует успех и планирует возврат в idle
func (t *Tracker) Succeed(salonID, appointmentID, message string) {
	t.finish(key{salonID, appointmentID}, StateSucceeded, message, t.displayTimeout)
}

// Fail фиксирует ошибку; состояние остается до следующей попытки или до истечения failedRetention
func (t *Tracker) Fail(salonID, appointmentID, message string) {
	t.finish(key{salonID, appointmentID}, StateFailed, message, t.failedRetention)
}

// Get возвращает состояние записи; неизвестная запись находится в idle
func (t *Tracker) Get(salonID, appointmentID string) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[key{salonID, appointmentID}]; ok {
		return e.Entry
	}
	return Entry{State: StateIdle}
}

// Snapshot возвращает состояния записей салона, отличные от idle
func (t *Tracker) Snapshot(salonID string) map[string]Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make(map[string]Entry)
	for k, e := range t.entries {
		if k.salonID == salonID && e.State != StateIdle {
			result[k.appointmentID] = e.Entry
		}
	}
	return result
}

// Len количество хранимых записей по всем салонам
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

func (t *Tracker) finish(k key, state State, message string, after time.Duration) {
	t.mu.Lock()
	e := t.entry(k)
	t.set(e, state, message)
	generation := e.generation
	t.mu.Unlock()

	t.scheduler.Schedule(after, func() {
		t.expire(k, state, generation)
	})
}

// expire удаляет запись, если с момента планирования состояние не менялось
func (t *Tracker) expire(k key, state State, generation uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[k]
	if !ok || e.generation != generation || e.State != state {
		return
	}
	delete(t.entries, k)
}

func (t *Tracker) entry(k key) *entry {
	e, ok := t.entries[k]
	if !ok {
		e = &entry{Entry: Entry{State: StateIdle}}
		t.entries[k] = e
	}
	return e
}

func (t *Tracker) set(e *entry, state State, message string) {
	e.State = state
	e.Message = message
	e.UpdatedAt = t.now()
	e.generation++
}

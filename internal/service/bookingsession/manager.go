// Package bookingsession хранит состояние незавершенной записи каждой сессии:
// выбранную дату, стартовый слот и цепочку услуг.
package bookingsession

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

// State снимок состояния записи
type State struct {
	Date      time.Time
	Slot      *domain.SelectedSlot
	Chain     slotchain.Chain
	UpdatedAt time.Time
	// Version растет при каждом изменении состояния
	Version uint64
}

// HasDate true, если дата выбрана
func (s State) HasDate() bool {
	return !s.Date.IsZero()
}

// TotalDuration суммарная длительность цепочки в минутах
func (s State) TotalDuration() int {
	return slotchain.TotalDuration(s.Chain)
}

// TotalPrice суммарная стоимость цепочки
func (s State) TotalPrice() float64 {
	return slotchain.TotalPrice(s.Chain)
}

// Manager потокобезопасное хранилище состояний по идентификатору сессии
type Manager struct {
	mu      sync.Mutex
	states  map[string]*State
	builder *slotchain.Builder
	now     func() time.Time
}

// NewManager создает Manager
func NewManager(builder *slotchain.Builder) *Manager {
	if builder == nil {
		builder = slotchain.NewBuilder(nil)
	}
	return &Manager{
		states:  make(map[string]*State),
		builder: builder,
		now:     time.Now,
	}
}

func (m *Manager) state(sessionID string) *State {
	st, ok := m.states[sessionID]
	if !ok {
		st = &State{Chain: slotchain.Reset()}
		m.states[sessionID] = st
	}
	return st
}

func (m *Manager) touch(st *State) {
	st.UpdatedAt = m.now()
	st.Version++
}

func (m *Manager) snapshot(st *State) State {
	out := *st
	if st.Slot != nil {
		slot := *st.Slot
		out.Slot = &slot
	}
	return out
}

// SelectDate выбирает дату записи. Слот и цепочка сбрасываются.
func (m *Manager) SelectDate(sessionID string, date time.Time) (State, error) {
	if sessionID == "" {
		return State{}, ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(sessionID)
	st.Date = domain.StartOfDay(date)
	st.Slot = nil
	st.Chain = slotchain.Reset()
	m.touch(st)

	return m.snapshot(st), nil
}

// SelectSlot выбирает стартовый слот на дату date, для которой слот был получен.
// Если выбранная дата с тех пор изменилась, возвращается ErrDateChanged. Цепочка сбрасывается.
func (m *Manager) SelectSlot(sessionID string, date time.Time, slot domain.TimeSlot) (State, error) {
	if sessionID == "" {
		return State{}, ErrEmptySessionID
	}
	if !slot.Available {
		return State{}, fmt.Errorf("%w: slot=%s", ErrSlotUnavailable, slot.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(sessionID)
	if !st.HasDate() {
		return m.snapshot(st), ErrNoDateSelected
	}
	if !st.Date.Equal(domain.StartOfDay(date)) {
		return m.snapshot(st), fmt.Errorf("%w: slot=%s fetched for %s, selected %s",
			ErrDateChanged, slot.ID, date.Format(domain.DateFormat), st.Date.Format(domain.DateFormat))
	}

	anchor, err := domain.NewSelectedSlot(st.Date, slot)
	if err != nil {
		return m.snapshot(st), fmt.Errorf("invalid slot start time %q: %w", slot.StartTime, err)
	}

	st.Slot = anchor
	st.Chain = slotchain.Reset()
	m.touch(st)

	return m.snapshot(st), nil
}

// AddService добавляет услугу в конец цепочки
func (m *Manager) AddService(sessionID string, service domain.ServiceOffering) (State, error) {
	if sessionID == "" {
		return State{}, ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(sessionID)
	chain, err := m.builder.AddService(st.Chain, service, st.Slot)
	if err != nil {
		return m.snapshot(st), err
	}

	st.Chain = chain
	m.touch(st)
	return m.snapshot(st), nil
}

// RemoveService удаляет сегмент цепочки и пересчитывает последующие
func (m *Manager) RemoveService(sessionID, segmentID string) (State, error) {
	if sessionID == "" {
		return State{}, ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(sessionID)
	chain, err := m.builder.RemoveService(st.Chain, segmentID, st.Slot)
	if err != nil {
		return m.snapshot(st), err
	}

	st.Chain = chain
	m.touch(st)
	return m.snapshot(st), nil
}

// Snapshot возвращает текущее состояние; неизвестная сессия - пустое состояние
func (m *Manager) Snapshot(sessionID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[sessionID]
	if !ok {
		return State{Chain: slotchain.Reset()}
	}
	return m.snapshot(st)
}

// ClearIfUnchanged после успешного подтверждения сбрасывает слот и цепочку, если состояние не менялось с версии version.
// Дата сохраняется. Возвращает false, если сессия успела изменить запись.
func (m *Manager) ClearIfUnchanged(sessionID string, version uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[sessionID]
	if !ok || st.Version != version {
		return false
	}
	st.Slot = nil
	st.Chain = slotchain.Reset()
	m.touch(st)
	return true
}

// Len количество хранимых состояний
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.states)
}

// Forget удаляет состояние сессии целиком (выход)
func (m *Manager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, sessionID)
}

package bookingsession

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

func sequentialIDs() slotchain.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("seg-%d", n)
	}
}

var (
	day      = time.Date(2025, 4, 24, 15, 20, 0, 0, time.UTC)
	slot10   = domain.TimeSlot{ID: "11", StartTime: "10:00", Available: true}
	haircut  = domain.ServiceOffering{ID: "1", Name: "Haircut", DurationMinutes: 30, Price: 250}
	coloring = domain.ServiceOffering{ID: "2", Name: "Coloring", DurationMinutes: 45, Price: 900}
)

func TestManager_FullFlow(t *testing.T) {
	m := NewManager(slotchain.NewBuilder(sequentialIDs()))

	st, err := m.SelectDate("s1", day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC), st.Date)
	assert.Nil(t, st.Slot)

	st, err = m.SelectSlot("s1", day, slot10)
	require.NoError(t, err)
	require.NotNil(t, st.Slot)
	assert.Equal(t, time.Date(2025, 4, 24, 10, 0, 0, 0, time.UTC), st.Slot.Start)

	_, err = m.AddService("s1", haircut)
	require.NoError(t, err)
	st, err = m.AddService("s1", coloring)
	require.NoError(t, err)

	require.Len(t, st.Chain, 2)
	assert.Equal(t, time.Date(2025, 4, 24, 10, 30, 0, 0, time.UTC), st.Chain[1].Start)
	assert.Equal(t, time.Date(2025, 4, 24, 11, 15, 0, 0, time.UTC), st.Chain[1].End)
	assert.Equal(t, 75, st.TotalDuration())
	assert.Equal(t, 1150.0, st.TotalPrice())

	st, err = m.RemoveService("s1", "seg-1")
	require.NoError(t, err)
	require.Len(t, st.Chain, 1)
	assert.Equal(t, time.Date(2025, 4, 24, 10, 0, 0, 0, time.UTC), st.Chain[0].Start)
	assert.NoError(t, slotchain.Validate(st.Chain, st.Slot))

	assert.True(t, m.ClearIfUnchanged("s1", st.Version))
	st = m.Snapshot("s1")
	assert.True(t, st.HasDate())
	assert.Nil(t, st.Slot)
	assert.Empty(t, st.Chain)
}

func TestManager_SelectSlotRequiresDate(t *testing.T) {
	m := NewManager(nil)

	_, err := m.SelectSlot("s1", day, slot10)
	assert.ErrorIs(t, err, ErrNoDateSelected)
}

func TestManager_SelectUnavailableSlot(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)

	_, err := m.SelectSlot("s1", day, domain.TimeSlot{ID: "12", StartTime: "10:30", Available: false})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestManager_AddServiceWithoutSlot(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)

	st, err := m.AddService("s1", haircut)
	assert.ErrorIs(t, err, slotchain.ErrNoSlotSelected)
	assert.Empty(t, st.Chain)
}

func TestManager_ReselectResetsChain(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)
	_, _ = m.SelectSlot("s1", day, slot10)
	_, _ = m.AddService("s1", haircut)

	st, err := m.SelectSlot("s1", day, domain.TimeSlot{ID: "13", StartTime: "02:00 PM", Available: true})
	require.NoError(t, err)
	assert.Empty(t, st.Chain)
	assert.Equal(t, 14, st.Slot.Start.Hour())

	_, _ = m.AddService("s1", haircut)
	st, err = m.SelectDate("s1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, st.Slot)
	assert.Empty(t, st.Chain)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)
	_, _ = m.SelectSlot("s1", day, slot10)
	_, _ = m.AddService("s1", haircut)

	assert.Empty(t, m.Snapshot("s2").Chain)
	assert.Len(t, m.Snapshot("s1").Chain, 1)

	m.Forget("s1")
	assert.False(t, m.Snapshot("s1").HasDate())
}

func TestManager_SnapshotIsACopy(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)
	st, _ := m.SelectSlot("s1", day, slot10)

	st.Slot.SlotID = "tampered"

	assert.Equal(t, "11", m.Snapshot("s1").Slot.SlotID)
}

func TestManager_EmptySessionID(t *testing.T) {
	m := NewManager(nil)

	_, err := m.SelectDate("", day)
	assert.ErrorIs(t, err, ErrEmptySessionID)
	_, err = m.AddService("", haircut)
	assert.ErrorIs(t, err, ErrEmptySessionID)
}

func TestManager_ConcurrentSessions(t *testing.T) {
	m := NewManager(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = m.SelectDate(id, day)
			_, _ = m.SelectSlot(id, day, slot10)
			for j := 0; j < 10; j++ {
				_, _ = m.AddService(id, haircut)
			}
		}(fmt.Sprintf("s%d", i))
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		st := m.Snapshot(fmt.Sprintf("s%d", i))
		require.Len(t, st.Chain, 10)
		assert.NoError(t, slotchain.Validate(st.Chain, st.Slot))
	}
}

func TestManager_SelectSlotForStaleDate(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)
	_, _ = m.SelectDate("s1", day.AddDate(0, 0, 1))

	st, err := m.SelectSlot("s1", day, slot10)
	assert.ErrorIs(t, err, ErrDateChanged)
	assert.Nil(t, st.Slot)
	assert.Equal(t, 25, st.Date.Day())
}

func TestManager_ClearIfUnchanged(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.SelectDate("s1", day)
	_, _ = m.SelectSlot("s1", day, slot10)
	confirmed, _ := m.AddService("s1", haircut)

	// Сессия выбирает новый слот и услугу, пока подтверждается старая цепочка
	_, err := m.SelectSlot("s1", day, domain.TimeSlot{ID: "14", StartTime: "14:00", Available: true})
	require.NoError(t, err)
	_, err = m.AddService("s1", coloring)
	require.NoError(t, err)

	assert.False(t, m.ClearIfUnchanged("s1", confirmed.Version))

	st := m.Snapshot("s1")
	require.NotNil(t, st.Slot)
	assert.Equal(t, 14, st.Slot.Start.Hour())
	require.Len(t, st.Chain, 1)
	assert.Equal(t, "Coloring", st.Chain[0].Metadata.Name)

	assert.True(t, m.ClearIfUnchanged("s1", st.Version))
	assert.Nil(t, m.Snapshot("s1").Slot)
	assert.True(t, m.Snapshot("s1").HasDate())
	assert.False(t, m.ClearIfUnchanged("unknown", 0))
}

func TestManager_VersionGrowsOnEveryChange(t *testing.T) {
	m := NewManager(nil)

	st1, _ := m.SelectDate("s1", day)
	st2, _ := m.SelectSlot("s1", day, slot10)
	st3, _ := m.AddService("s1", haircut)

	assert.Less(t, st1.Version, st2.Version)
	assert.Less(t, st2.Version, st3.Version)
	assert.Equal(t, 1, m.Len())
}

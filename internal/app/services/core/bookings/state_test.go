package bookings

import (
	"benefits-portal-service/internal/app/models"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Reset(t *testing.T) {
	state := NewState()
	state.SetTime("14:00")
	state.SetAppointmentType(models.AppointmentType{ID: 1001, Name: "Primary Care Visit", CalendarIDs: []int{1}})
	state.SetContactDetails(models.ContactDetails{FirstName: "Jane", Email: "jane@example.com", Notes: "first visit"})
	state.SetDate("2024-05-06")

	state.Reset()

	snapshot := state.Snapshot()
	assert.Nil(t, snapshot.SelectedType, "type should be absent")
	assert.Empty(t, snapshot.SelectedDate, "date should be absent")
	assert.Empty(t, snapshot.SelectedTime, "time should be absent")
	assert.Equal(t, models.ContactDetails{}, snapshot.ContactDetails, "contact should be empty strings")
	assert.Equal(t, models.BookingSnapshot{}, snapshot)
}

func TestState_SettersAllowAnyOrder(t *testing.T) {
	state := NewState()
	state.SetTime("09:00")

	snapshot := state.Snapshot()
	assert.Equal(t, "09:00", snapshot.SelectedTime, "time can be set before a type")
	assert.Nil(t, snapshot.SelectedType)
}

func TestState_SnapshotIsIsolated(t *testing.T) {
	state := NewState()
	state.SetAppointmentType(models.AppointmentType{ID: 1, CalendarIDs: []int{1, 2}})

	snapshot := state.Snapshot()
	snapshot.SelectedType.Name = "changed"
	snapshot.SelectedType.CalendarIDs[0] = 99

	again := state.Snapshot()
	assert.Empty(t, again.SelectedType.Name)
	assert.Equal(t, []int{1, 2}, again.SelectedType.CalendarIDs)
}

func TestState_ConcurrentSetters(t *testing.T) {
	state := NewState()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			state.SetDate("2024-05-06")
		}()
		go func() {
			defer wg.Done()
			_ = state.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, "2024-05-06", state.Snapshot().SelectedDate)
}

func TestFromContext(t *testing.T) {
	t.Run("Panics Outside Scope", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrOutsideProvider, func() {
			FromContext(context.Background())
		})
	})

	t.Run("Returns Scoped State", func(t *testing.T) {
		state := NewState()
		ctx := WithState(context.Background(), state)

		assert.Same(t, state, FromContext(ctx))
	})

	t.Run("Lookup Does Not Panic", func(t *testing.T) {
		state, ok := Lookup(context.Background())
		assert.False(t, ok)
		assert.Nil(t, state)
	})

	t.Run("Nil State Counts As Missing", func(t *testing.T) {
		ctx := WithState(context.Background(), nil)
		_, ok := Lookup(ctx)
		require.False(t, ok)
	})
}

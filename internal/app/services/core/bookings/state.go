package bookings

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"context"
	"errors"
	"sync"
)

// ErrOutsideProvider is the panic value of FromContext when no booking flow is in scope.
var ErrOutsideProvider = errors.New("bookings: state used outside of a booking flow scope")

// State holds the selections of one in-progress booking flow. Setters replace a single
// field and never validate across fields; the submit step owns those rules.
type State struct {
	mu       sync.Mutex
	snapshot models.BookingSnapshot
}

func NewState() *State {
	return &State{}
}

func NewStateFromSnapshot(snapshot models.BookingSnapshot) *State {
	state := &State{}
	state.snapshot = cloneSnapshot(snapshot)
	return state
}

func (s *State) SetAppointmentType(appointmentType models.AppointmentType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedType = &appointmentType
}

func (s *State) SetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedDate = date
}

func (s *State) SetTime(timeOfDay string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedTime = timeOfDay
}

func (s *State) SetContactDetails(contact models.ContactDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ContactDetails = contact
}

func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = models.BookingSnapshot{}
}

// Snapshot returns a copy that is safe to keep after further mutations.
func (s *State) Snapshot() models.BookingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snapshot)
}

func cloneSnapshot(snapshot models.BookingSnapshot) models.BookingSnapshot {
	clone := snapshot
	if snapshot.SelectedType != nil {
		selectedType := *snapshot.SelectedType
		selectedType.CalendarIDs = append([]int(nil), snapshot.SelectedType.CalendarIDs...)
		clone.SelectedType = &selectedType
	}
	return clone
}

// WithState scopes state to ctx. Nested calls replace the outer state.
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_BOOKING_STATE_KEY, state)
}

// FromContext returns the state scoped to ctx and panics with ErrOutsideProvider when
// there is none.
func FromContext(ctx context.Context) *State {
	state, ok := Lookup(ctx)
	if !ok {
		panic(ErrOutsideProvider)
	}
	return state
}

func Lookup(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(constvars.CONTEXT_BOOKING_STATE_KEY).(*State)
	if !ok || state == nil {
		return nil, false
	}
	return state, true
}

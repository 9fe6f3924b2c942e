package models

type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeDegraded Outcome = "degraded"
)

// SchedulingResult tags scheduling data with where it came from. Degraded data was
// produced locally because the provider could not be reached.
type SchedulingResult[T any] struct {
	Data           T
	Outcome        Outcome
	DegradedReason string
}

func (r *SchedulingResult[T]) IsDegraded() bool {
	return r.Outcome == OutcomeDegraded
}

func NewOKResult[T any](data T) *SchedulingResult[T] {
	return &SchedulingResult[T]{Data: data, Outcome: OutcomeOK}
}

func NewDegradedResult[T any](data T, reason string) *SchedulingResult[T] {
	return &SchedulingResult[T]{Data: data, Outcome: OutcomeDegraded, DegradedReason: reason}
}

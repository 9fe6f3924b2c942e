package medicalterms

import (
	"benefits-portal-service/internal/pkg/constvars"
	"context"
	"errors"
	"sync"
	"time"
)

const DefaultDebounceDelay = 400 * time.Millisecond

type SearchStatus string

const (
	StatusIdle    SearchStatus = "idle"
	StatusPending SearchStatus = "pending"
	StatusLoading SearchStatus = "loading"
	StatusSuccess SearchStatus = "success"
	StatusFailed  SearchStatus = "failed"
)

type SearchState[T any] struct {
	Status  SearchStatus
	Query   string
	Results []T
	Err     error
}

type LookupFunc[T any] func(ctx context.Context, query string) ([]T, error)

type SearcherConfig[T any] struct {
	Delay     time.Duration
	MinLength int
	// OnChange receives every state transition. It runs with the searcher locked and
	// must not call back into the Searcher.
	OnChange func(state SearchState[T])
}

// Searcher debounces keystrokes into lookups. Only the latest query may update the
// state: timers are restarted, the previous lookup context is canceled and late
// results for older queries are dropped.
type Searcher[T any] struct {
	mu        sync.Mutex
	lookup    LookupFunc[T]
	delay     time.Duration
	minLength int
	onChange  func(SearchState[T])

	ctx            context.Context
	cancel         context.CancelFunc
	timer          *time.Timer
	cancelInFlight context.CancelFunc
	generation     uint64
	state          SearchState[T]
	closed         bool
	wg             sync.WaitGroup
}

func NewSearcher[T any](ctx context.Context, lookup LookupFunc[T], cfg SearcherConfig[T]) *Searcher[T] {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDebounceDelay
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = constvars.MedicalTermsMinQueryLength
	}
	searcherCtx, cancel := context.WithCancel(ctx)
	return &Searcher[T]{
		lookup:    lookup,
		delay:     cfg.Delay,
		minLength: cfg.MinLength,
		onChange:  cfg.OnChange,
		ctx:       searcherCtx,
		cancel:    cancel,
		state:     SearchState[T]{Status: StatusIdle, Results: []T{}},
	}
}

func (s *Searcher[T]) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.generation++
	generation := s.generation
	s.stopTimerLocked()
	if s.cancelInFlight != nil {
		s.cancelInFlight()
		s.cancelInFlight = nil
	}

	if len([]rune(query)) < s.minLength {
		s.setStateLocked(SearchState[T]{Status: StatusIdle, Query: query, Results: []T{}})
		return
	}

	s.setStateLocked(SearchState[T]{Status: StatusPending, Query: query, Results: s.state.Results})

	s.wg.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		s.fire(query, generation)
	})
}

func (s *Searcher[T]) fire(query string, generation uint64) {
	s.mu.Lock()
	if s.closed || s.generation != generation {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	lookupCtx, cancel := context.WithCancel(s.ctx)
	s.cancelInFlight = cancel
	s.setStateLocked(SearchState[T]{Status: StatusLoading, Query: query, Results: s.state.Results})
	s.mu.Unlock()

	results, err := s.lookup(lookupCtx, query)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.generation != generation {
		return
	}
	s.cancelInFlight = nil

	if err != nil {
		if errors.Is(err, ErrSuperseded) || errors.Is(err, context.Canceled) {
			return
		}
		s.setStateLocked(SearchState[T]{Status: StatusFailed, Query: query, Results: []T{}, Err: err})
		return
	}
	if results == nil {
		results = []T{}
	}
	s.setStateLocked(SearchState[T]{Status: StatusSuccess, Query: query, Results: results})
}

func (s *Searcher[T]) State() SearchState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops the pending timer, cancels an in-flight lookup and waits for it to
// return. No state changes are published afterwards.
func (s *Searcher[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Searcher[T]) stopTimerLocked() {
	if s.timer == nil {
		return
	}
	if s.timer.Stop() {
		s.wg.Done()
	}
	s.timer = nil
}

func (s *Searcher[T]) setStateLocked(state SearchState[T]) {
	s.state = state
	if s.onChange != nil {
		s.onChange(state)
	}
}

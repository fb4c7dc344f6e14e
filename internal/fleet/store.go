package fleet

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// DefaultIDWidth is the zero-padded width of generated identifiers ("001").
const DefaultIDWidth = 3

// Vehicle is a single fleet entry.
type Vehicle struct {
	ID     string
	Status Status
}

// Store owns the mapping from vehicle identifier to status. It is not safe
// for concurrent use; the UI event loop is its only owner.
type Store struct {
	rng     *rand.Rand
	idWidth int

	order    []string
	statuses map[string]Status
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used by Initialize.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed makes Initialize deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithIDWidth sets the minimum identifier width.
func WithIDWidth(width int) Option {
	return func(s *Store) {
		if width > 0 {
			s.idWidth = width
		}
	}
}

// New returns an empty store. Call Initialize to populate it.
func New(opts ...Option) *Store {
	s := &Store{
		idWidth:  DefaultIDWidth,
		statuses: make(map[string]Status),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Initialize replaces the fleet with count vehicles, each assigned a status
// drawn uniformly from statuses.
func (s *Store) Initialize(count int, statuses []Status) error {
	if count <= 0 {
		return fmt.Errorf("vehicle count %d: %w", count, ErrInvalidArgument)
	}
	if len(statuses) == 0 {
		return fmt.Errorf("status list is empty: %w", ErrInvalidArgument)
	}
	for _, st := range statuses {
		if !st.Valid() {
			return fmt.Errorf("status %q: %w", st, ErrInvalidArgument)
		}
	}

	width := s.idWidth
	if digits := len(strconv.Itoa(count)); digits > width {
		width = digits
	}

	order := make([]string, 0, count)
	assigned := make(map[string]Status, count)
	for i := 1; i <= count; i++ {
		id := formatID(i, width)
		order = append(order, id)
		assigned[id] = statuses[s.rng.IntN(len(statuses))]
	}

	s.order = order
	s.statuses = assigned
	return nil
}

func formatID(index, width int) string {
	return fmt.Sprintf("%0*d", width, index)
}

// SetStatus assigns status to the vehicle id. Setting the current value is a
// no-op. State is unchanged on error.
func (s *Store) SetStatus(id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("set %s: status %q: %w", id, status, ErrInvalidArgument)
	}
	if _, ok := s.statuses[id]; !ok {
		return fmt.Errorf("vehicle %q: %w", id, ErrNotFound)
	}
	s.statuses[id] = status
	return nil
}

// Status returns the current status of id.
func (s *Store) Status(id string) (Status, bool) {
	st, ok := s.statuses[id]
	return st, ok
}

// Len returns the fleet size.
func (s *Store) Len() int {
	return len(s.order)
}

// All returns a snapshot of the fleet in identifier order. The caller owns
// the returned slice.
func (s *Store) All() []Vehicle {
	return s.Filtered(FilterAll)
}

// Filtered returns the vehicles visible under f, in identifier order.
func (s *Store) Filtered(f Filter) []Vehicle {
	out := make([]Vehicle, 0, len(s.order))
	for _, id := range s.order {
		st := s.statuses[id]
		if f.Matches(st) {
			out = append(out, Vehicle{ID: id, Status: st})
		}
	}
	return out
}

// CountsByStatus tallies the fleet. Every status is present, including those
// with a zero count.
func (s *Store) CountsByStatus() Counts {
	counts := make(Counts, len(statusOrder))
	for _, st := range statusOrder {
		counts[st] = 0
	}
	for _, st := range s.statuses {
		counts[st]++
	}
	return counts
}

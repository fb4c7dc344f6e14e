package fleet

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the store and parsers. Callers match them with
// errors.Is; the returned errors wrap them with the offending value.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// Status is the operational state of a single train.
type Status string

const (
	StatusService     Status = "service"
	StatusStandby     Status = "standby"
	StatusWashing     Status = "washing"
	StatusMaintenance Status = "maintenance"
)

var statusOrder = []Status{StatusService, StatusStandby, StatusWashing, StatusMaintenance}

// Statuses returns the closed status enumeration in declared order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Valid reports whether s is a member of the enumeration.
func (s Status) Valid() bool {
	for _, known := range statusOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the capitalized display name ("Maintenance").
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}

// ParseStatus converts untyped input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("status %q: %w", raw, ErrInvalidArgument)
	}
	return s, nil
}

// Filter restricts which vehicles are visible. The zero value is not valid;
// use FilterAll or FilterFor.
type Filter string

// FilterAll shows every vehicle.
const FilterAll Filter = "all"

// FilterFor returns the filter that matches a single status.
func FilterFor(s Status) Filter {
	return Filter(s)
}

// Filters returns FilterAll followed by one filter per status in declared order.
func Filters() []Filter {
	out := make([]Filter, 0, len(statusOrder)+1)
	out = append(out, FilterAll)
	for _, s := range statusOrder {
		out = append(out, FilterFor(s))
	}
	return out
}

// Valid reports whether f is FilterAll or a known status.
func (f Filter) Valid() bool {
	return f == FilterAll || Status(f).Valid()
}

// Matches reports whether a vehicle with status s is visible under f.
func (f Filter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// Status returns the status f selects; ok is false for FilterAll.
func (f Filter) Status() (Status, bool) {
	if f == FilterAll || !Status(f).Valid() {
		return "", false
	}
	return Status(f), true
}

// Label returns the display name for a filter tab.
func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	return Status(f).Label()
}

// ParseFilter converts untyped input into a Filter. Unknown values are
// rejected rather than silently widened to FilterAll.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.Valid() {
		return "", fmt.Errorf("filter %q: %w", raw, ErrInvalidArgument)
	}
	return f, nil
}

// Counts maps every status to the number of vehicles holding it.
type Counts map[Status]int

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Percent returns round(count/total*100), or 0 when total is zero.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

package fleet

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

func newSeeded(t *testing.T, count int) *Store {
	t.Helper()
	s := New(WithSeed(42))
	if err := s.Initialize(count, Statuses()); err != nil {
		t.Fatalf("Initialize(%d) returned error: %v", count, err)
	}
	return s
}

func TestInitialize_CountsAndIDs(t *testing.T) {
	for _, n := range []int{1, 7, 25, 100} {
		s := newSeeded(t, n)

		all := s.All()
		if len(all) != n {
			t.Fatalf("All() len = %d, want %d", len(all), n)
		}
		if got := s.CountsByStatus().Total(); got != n {
			t.Fatalf("counts sum = %d, want %d", got, n)
		}
		if all[0].ID != formatID(1, max(DefaultIDWidth, len(all[n-1].ID))) {
			t.Fatalf("first id = %q", all[0].ID)
		}
	}

	s := newSeeded(t, 25)
	all := s.All()
	if all[0].ID != "001" || all[24].ID != "025" {
		t.Fatalf("ids = %q..%q, want 001..025", all[0].ID, all[24].ID)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("ids not ascending at %d: %q >= %q", i, all[i-1].ID, all[i].ID)
		}
	}
}

func TestInitialize_WidensIDsForLargeFleets(t *testing.T) {
	s := newSeeded(t, 1200)
	all := s.All()
	if all[0].ID != "0001" || all[len(all)-1].ID != "1200" {
		t.Fatalf("ids = %q..%q, want 0001..1200", all[0].ID, all[len(all)-1].ID)
	}
}

func TestInitialize_CustomWidth(t *testing.T) {
	s := New(WithSeed(1), WithIDWidth(5))
	if err := s.Initialize(3, Statuses()); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := s.All()[2].ID; got != "00003" {
		t.Fatalf("id = %q, want 00003", got)
	}
}

func TestInitialize_UsesOnlyGivenStatuses(t *testing.T) {
	s := New(WithSeed(7))
	if err := s.Initialize(50, []Status{StatusWashing}); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	counts := s.CountsByStatus()
	if counts[StatusWashing] != 50 {
		t.Fatalf("washing = %d, want 50", counts[StatusWashing])
	}
	for _, st := range []Status{StatusService, StatusStandby, StatusMaintenance} {
		n, ok := counts[st]
		if !ok {
			t.Fatalf("counts missing key %q", st)
		}
		if n != 0 {
			t.Fatalf("counts[%q] = %d, want 0", st, n)
		}
	}
}

func TestInitialize_ReplacesPriorState(t *testing.T) {
	s := newSeeded(t, 25)
	if err := s.Initialize(4, Statuses()); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	if _, ok := s.Status("025"); ok {
		t.Fatalf("vehicle 025 survived re-initialization")
	}
}

func TestInitialize_SeedIsDeterministic(t *testing.T) {
	a := newSeeded(t, 25).All()
	b := newSeeded(t, 25).All()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different fleets")
	}
}

func TestInitialize_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		statuses []Status
	}{
		{"zero count", 0, Statuses()},
		{"negative count", -3, Statuses()},
		{"nil statuses", 5, nil},
		{"empty statuses", 5, []Status{}},
		{"unknown status", 5, []Status{StatusService, "parked"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSeeded(t, 3)
			before := s.All()
			err := s.Initialize(tt.count, tt.statuses)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Initialize error = %v, want ErrInvalidArgument", err)
			}
			if !reflect.DeepEqual(s.All(), before) {
				t.Fatalf("failed Initialize changed state")
			}
		})
	}
}

func TestSetStatus_UpdatesAndIsIdempotent(t *testing.T) {
	s := newSeeded(t, 25)

	if err := s.SetStatus("001", StatusMaintenance); err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	once := s.All()
	if err := s.SetStatus("001", StatusMaintenance); err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if !reflect.DeepEqual(s.All(), once) {
		t.Fatalf("second identical SetStatus changed state")
	}
	if st, _ := s.Status("001"); st != StatusMaintenance {
		t.Fatalf("Status(001) = %q, want maintenance", st)
	}
}

func TestSetStatus_UnknownIDIsNotFound(t *testing.T) {
	s := newSeeded(t, 25)
	before := s.All()

	err := s.SetStatus("999", StatusService)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetStatus error = %v, want ErrNotFound", err)
	}
	if !reflect.DeepEqual(s.All(), before) {
		t.Fatalf("failed SetStatus changed state")
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	s := newSeeded(t, 25)
	before := s.All()

	err := s.SetStatus("001", Status("scrapped"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetStatus error = %v, want ErrInvalidArgument", err)
	}
	if !reflect.DeepEqual(s.All(), before) {
		t.Fatalf("failed SetStatus changed state")
	}
}

func TestSetStatus_CountsAlwaysSumToFleetSize(t *testing.T) {
	s := newSeeded(t, 25)
	rng := rand.New(rand.NewPCG(3, 4))
	statuses := Statuses()

	for i := 0; i < 500; i++ {
		id := formatID(rng.IntN(25)+1, DefaultIDWidth)
		if err := s.SetStatus(id, statuses[rng.IntN(len(statuses))]); err != nil {
			t.Fatalf("SetStatus(%s) returned error: %v", id, err)
		}
		if got := s.CountsByStatus().Total(); got != 25 {
			t.Fatalf("after %d mutations counts sum = %d, want 25", i+1, got)
		}
	}
}

func TestAll_ReturnsIndependentSnapshot(t *testing.T) {
	s := newSeeded(t, 5)
	snap := s.All()
	orig := snap[0]

	snap[0].Status = "mutated"
	snap[0].ID = "xxx"

	again := s.All()
	if again[0] != orig {
		t.Fatalf("All() should return a copy; got %#v want %#v", again[0], orig)
	}
}

func TestFiltered_Laws(t *testing.T) {
	s := newSeeded(t, 25)
	counts := s.CountsByStatus()

	for _, st := range Statuses() {
		view := s.Filtered(FilterFor(st))
		if len(view) != counts[st] {
			t.Fatalf("Filtered(%s) len = %d, want %d", st, len(view), counts[st])
		}
		for _, v := range view {
			if v.Status != st {
				t.Fatalf("Filtered(%s) contains %s with status %s", st, v.ID, v.Status)
			}
		}
	}

	if !reflect.DeepEqual(s.Filtered(FilterAll), s.All()) {
		t.Fatalf("Filtered(all) differs from All()")
	}
}

func TestScenario_MaintenanceFilterShowsUpdatedVehicle(t *testing.T) {
	s := newSeeded(t, 25)
	if err := s.SetStatus("001", StatusMaintenance); err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	found := false
	for _, v := range s.Filtered(FilterFor(StatusMaintenance)) {
		if v.ID == "001" {
			found = true
		}
	}
	if !found {
		t.Fatalf("001 missing from maintenance view")
	}
}

func TestCountsByStatus_EmptyStore(t *testing.T) {
	s := New()
	counts := s.CountsByStatus()
	if len(counts) != len(Statuses()) {
		t.Fatalf("counts has %d keys, want %d", len(counts), len(Statuses()))
	}
	if counts.Total() != 0 {
		t.Fatalf("Total = %d, want 0", counts.Total())
	}
}

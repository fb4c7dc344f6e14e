package ui

import (
	"testing"

	"github.com/five82/kochi/internal/fleet"
)

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	for i := 1; i <= len(names); i++ {
		current = NextTheme(current)
		if want := names[i%len(names)]; current != want {
			t.Fatalf("step %d: NextTheme = %q, want %q", i, current, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemes_ColorEveryStatus(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, st := range fleet.Statuses() {
			if theme.StatusColors[st] == "" {
				t.Fatalf("theme %s has no color for %s", name, st)
			}
		}
	}
}

func TestThemeNames_ReturnsCopy(t *testing.T) {
	names := ThemeNames()
	names[0] = "changed"
	if ThemeNames()[0] == "changed" {
		t.Fatal("ThemeNames exposed internal order")
	}
}

func TestHitTest_ControlWinsOverCard(t *testing.T) {
	targets := []clickTarget{
		{Line: 3, Height: 1, StartX: 2, EndX: 5, Kind: targetControl, VehicleID: "001", Status: fleet.StatusService},
		{Line: 0, Height: 5, StartX: 0, EndX: 19, Kind: targetCard, VehicleID: "001"},
	}
	got, ok := firstHit(targets, 3, 3)
	if !ok || got.Kind != targetControl {
		t.Fatalf("firstHit(3,3) = %+v, %v; want control", got, ok)
	}
	got, ok = firstHit(targets, 10, 1)
	if !ok || got.Kind != targetCard {
		t.Fatalf("firstHit(10,1) = %+v, %v; want card", got, ok)
	}
	if _, ok := firstHit(targets, 30, 1); ok {
		t.Fatal("firstHit outside every target reported a hit")
	}
}

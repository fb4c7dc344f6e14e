package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "kochi.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"partial", 5, expectedAll[5:]},
		{"exactly all", 10, expectedAll},
		{"more than exists", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFileOrPath(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
	got, err = Read("  ", 10)
	if err != nil || got != nil {
		t.Fatalf("Read(blank) = %v, %v; want nil, nil", got, err)
	}
}

func TestParseAndFormat(t *testing.T) {
	line := `{"level":"INFO","timestamp":"2026-10-17T09:15:02.123+0000","logger":"kochi.ui","caller":"ui/model.go:10","message":"status changed","id":"001","status":"maintenance"}`

	entry := Parse(line)
	if entry.Level != "INFO" || entry.Message != "status changed" {
		t.Fatalf("Parse = %#v", entry)
	}
	if entry.Time.IsZero() || entry.Time.UTC().Hour() != 9 {
		t.Fatalf("Parse time = %v, want 09:15 UTC", entry.Time)
	}
	if _, ok := entry.Fields["caller"]; ok {
		t.Fatalf("reserved key caller should not be a field")
	}

	entry.Time = time.Date(2026, 10, 17, 9, 15, 2, 0, time.UTC)
	want := "09:15:02 INFO status changed id=001 status=maintenance"
	if got := entry.Format(); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestParse_PlainText(t *testing.T) {
	entry := Parse("  panic: something odd  ")
	if entry.Message != "panic: something odd" || entry.Level != "" {
		t.Fatalf("Parse(plain) = %#v", entry)
	}
	if got := entry.Format(); got != "panic: something odd" {
		t.Fatalf("Format = %q", got)
	}
}

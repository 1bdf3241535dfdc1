package alert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

func testContract(expiration string) Contract {
	return Contract{
		ContractID:     "CON-0042",
		ClientID:       "CLI-0007",
		Name:           "Contract #CON-0042",
		Type:           "service_agreement",
		ExpirationDate: expiration,
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		daysUntil int
		want      Priority
	}{
		{7, PriorityHigh},
		{30, PriorityHigh},
		{31, PriorityMedium},
		{60, PriorityMedium},
		{61, PriorityLow},
		{90, PriorityLow},
		{-1, PriorityHigh},
	}
	for _, tc := range tests {
		if got := PriorityFor(tc.daysUntil); got != tc.want {
			t.Errorf("PriorityFor(%d) = %s, want %s", tc.daysUntil, got, tc.want)
		}
	}
}

func TestNewExpiration(t *testing.T) {
	a := NewExpiration(testContract("2023-06-15"), 14, testNow)

	if a.Type != TypeExpiration {
		t.Errorf("type = %s", a.Type)
	}
	if a.ID == "" {
		t.Error("expected a generated alert id")
	}
	if a.Priority != PriorityHigh {
		t.Errorf("priority = %s, want high at 14 days", a.Priority)
	}
	if a.DaysUntilExpiration != 14 {
		t.Errorf("days = %d", a.DaysUntilExpiration)
	}
	want := "Contract Contract #CON-0042 (service_agreement) will expire in 14 days on 2023-06-15."
	if a.Message != want {
		t.Errorf("message = %q, want %q", a.Message, want)
	}
}

func TestNewProcessingError(t *testing.T) {
	a := NewProcessingError("contract.pdf", "extraction timed out", testNow)
	if a.Type != TypeProcessingError {
		t.Errorf("type = %s", a.Type)
	}
	if !strings.Contains(a.Message, "contract.pdf") || !strings.Contains(a.Message, "extraction timed out") {
		t.Errorf("message = %q", a.Message)
	}
}

func TestForContract(t *testing.T) {
	schedule, err := NewSchedule([]int{90, 60, 30, 14, 7})
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}

	t.Run("within a tier", func(t *testing.T) {
		// 2023-06-21 is 20 days out from testNow: inside the 90 tier.
		a, ok, err := ForContract(schedule, testContract("2023-06-21"), testNow)
		if err != nil {
			t.Fatalf("ForContract failed: %v", err)
		}
		if !ok {
			t.Fatal("expected a match")
		}
		if a.DaysUntilExpiration != 20 {
			t.Errorf("days = %d, want 20", a.DaysUntilExpiration)
		}
		if a.Priority != PriorityHigh {
			t.Errorf("priority = %s, want high", a.Priority)
		}
	})

	t.Run("outside all tiers", func(t *testing.T) {
		_, ok, err := ForContract(schedule, testContract("2024-06-01"), testNow)
		if err != nil {
			t.Fatalf("ForContract failed: %v", err)
		}
		if ok {
			t.Error("expected no match a year out")
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, _, err := ForContract(schedule, testContract("whenever"), testNow)
		if err == nil {
			t.Error("expected error for unparseable expiration date")
		}
	})
}

func TestFileSinkRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "alert_logs")
	sink := NewFileSink(dir)

	a := NewExpiration(testContract("2023-06-15"), 14, testNow)
	if err := sink.Record(a); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read alert dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 alert file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "expiration_") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected file name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read alert file: %v", err)
	}
	var decoded Alert
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode alert file: %v", err)
	}
	if decoded.ID != a.ID || decoded.Message != a.Message || decoded.Priority != a.Priority {
		t.Errorf("decoded alert differs: %+v vs %+v", decoded, a)
	}
}

func TestFileSinkMultipleRecords(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	for i := 0; i < 3; i++ {
		a := NewProcessingError("doc.pdf", "boom", testNow)
		if err := sink.Record(a); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read alert dir: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 alert files (ids keep same-second alerts apart), got %d", len(entries))
	}
}

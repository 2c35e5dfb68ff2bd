package request

import (
	"testing"
	"time"
)

func TestPenaltyTimeExceededRequest_ResolveExitTime(t *testing.T) {
	t.Run("empty falls back to now", func(t *testing.T) {
		before := time.Now().UTC()
		got, err := PenaltyTimeExceededRequest{}.ResolveExitTime()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Before(before) || got.After(time.Now().UTC()) {
			t.Fatalf("expected a current timestamp, got %v", got)
		}
	})

	t.Run("parses RFC3339", func(t *testing.T) {
		got, err := PenaltyTimeExceededRequest{ExitTime: "2026-03-10T14:30:00Z"}.ResolveExitTime()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		if _, err := (PenaltyTimeExceededRequest{ExitTime: "10/03/2026"}).ResolveExitTime(); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPenaltyMisParkingRequest_ResolveReason(t *testing.T) {
	if got := (PenaltyMisParkingRequest{Reason: " DISABLED_SPOT "}).ResolveReason(); got != "disabled_spot" {
		t.Fatalf("expected normalized reason, got %q", got)
	}
}

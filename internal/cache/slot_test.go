package cache

import (
	"testing"
	"time"
)

func TestSlotEmpty(t *testing.T) {
	s := NewSlot[[]int](30 * time.Second)
	if _, ok := s.Get(); ok {
		t.Fatal("empty slot should miss")
	}
}

func TestSlotFreshness(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSlot[string](30 * time.Second)
	s.now = func() time.Time { return now }

	s.Set("payload")

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"immediately fresh", 0, true},
		{"just inside window", 29 * time.Second, true},
		{"at threshold", 30 * time.Second, false},
		{"stale", time.Minute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.now = func() time.Time { return now.Add(tt.elapsed) }
			v, ok := s.Get()
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && v != "payload" {
				t.Fatalf("got %q, want payload", v)
			}
		})
	}
}

func TestSlotSetResetsClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSlot[int](30 * time.Second)
	s.now = func() time.Time { return now }

	s.Set(1)
	now = now.Add(29 * time.Second)
	s.Set(2)
	now = now.Add(29 * time.Second)

	v, ok := s.Get()
	if !ok || v != 2 {
		t.Fatalf("expected fresh value 2, got (%d, %v)", v, ok)
	}
}

func TestSlotClear(t *testing.T) {
	s := NewSlot[int](time.Minute)
	s.Set(5)
	s.Clear()
	if _, ok := s.Get(); ok {
		t.Fatal("cleared slot should miss")
	}
}

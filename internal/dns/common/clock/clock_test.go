package clock

import (
	"context"
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := RealClock{}

	// Capture time before and after the clock call
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	// The clock's time should be between our before/after measurements
	if now.Before(before) {
		t.Errorf("Clock time %v is before measurement time %v", now, before)
	}
	if now.After(after) {
		t.Errorf("Clock time %v is after measurement time %v", now, after)
	}
}

func TestRealClock_Sleep(t *testing.T) {
	clock := RealClock{}

	start := time.Now()
	if err := clock.Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Sleep returned after %v, expected at least 5ms", elapsed)
	}
}

func TestRealClock_Sleep_Cancelled(t *testing.T) {
	clock := RealClock{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clock.Sleep(ctx, time.Hour); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: fixedTime}

	if now := clock.Now(); !now.Equal(fixedTime) {
		t.Errorf("Expected %v, got %v", fixedTime, now)
	}
}

func TestMockClock_Advance(t *testing.T) {
	initialTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: initialTime}

	testCases := []struct {
		name     string
		duration time.Duration
		expected time.Time
	}{
		{
			name:     "advance by 1 hour",
			duration: 1 * time.Hour,
			expected: initialTime.Add(1 * time.Hour),
		},
		{
			name:     "advance by 30 minutes more",
			duration: 30 * time.Minute,
			expected: initialTime.Add(1*time.Hour + 30*time.Minute),
		},
		{
			name:     "advance backwards",
			duration: -1 * time.Hour,
			expected: initialTime.Add(30 * time.Minute),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock.Advance(tc.duration)
			if now := clock.Now(); !now.Equal(tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, now)
			}
		})
	}
}

func TestMockClock_Sleep(t *testing.T) {
	initialTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: initialTime}

	if err := clock.Sleep(context.Background(), 10*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clock.Slept) != 1 || clock.Slept[0] != 10*time.Second {
		t.Errorf("expected recorded sleep of 10s, got %v", clock.Slept)
	}
	if !clock.Now().Equal(initialTime.Add(10 * time.Second)) {
		t.Errorf("expected mock time to advance by slept duration")
	}
}

func TestMockClock_Sleep_Cancelled(t *testing.T) {
	clock := &MockClock{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clock.Sleep(ctx, time.Second); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(clock.Slept) != 0 {
		t.Errorf("cancelled sleep should not be recorded, got %v", clock.Slept)
	}
}

func TestClock_Interface_Compliance(t *testing.T) {
	var _ Clock = RealClock{}
	var _ Clock = &MockClock{}
}

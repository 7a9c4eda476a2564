package clock

import (
	"context"
	"time"
)

// Clock abstracts time for code that polls or stamps, so tests can run
// without real waits.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is done, returning the context error in
// the latter case.
func (c RealClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type MockClock struct {
	CurrentTime time.Time
	Slept       []time.Duration
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Sleep records the requested duration and advances the mock time without
// blocking.
func (c *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Slept = append(c.Slept, d)
	c.Advance(d)
	return nil
}

func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

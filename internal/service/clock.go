package service

import (
	"context"
	"sync"
	"time"

	"github.com/limbo/dailydare/pkg/entity"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is a settable clock for tests
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type locationKey struct{}

// WithLocation attaches the caller's time zone. Calendar days are computed in it
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locationKey{}, loc)
}

func LocationFromContext(ctx context.Context, fallback *time.Location) *time.Location {
	if loc, ok := ctx.Value(locationKey{}).(*time.Location); ok && loc != nil {
		return loc
	}
	if fallback != nil {
		return fallback
	}
	return time.UTC
}

func today(ctx context.Context, clock Clock, fallback *time.Location) entity.Day {
	return entity.DayOf(clock.Now().In(LocationFromContext(ctx, fallback)))
}

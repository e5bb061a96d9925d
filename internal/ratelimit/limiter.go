// Package ratelimit implements an in-process fixed-window request limiter.
//
// Counters live in a mutex-guarded map keyed by client identity. This is a
// single-process design: no cross-process coordination is attempted, which is
// a documented limitation rather than a bug.
package ratelimit

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Config holds the limits applied to one identity.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Result reports the remaining quota after a successful Consume.
type Result struct {
	Remaining int
	ResetAt   time.Time
}

// Status is the non-consuming view returned by Peek.
type Status struct {
	Limited   bool
	Remaining int
	ResetAt   time.Time
}

// LimitExceededError is returned when an identity is over its window limit.
type LimitExceededError struct {
	RetryAfter int // seconds until the window resets
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded, try again in %d seconds", e.RetryAfter)
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter owns the counter map. Construct one at process start and inject it
// into request handlers.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time

	sweepStop chan struct{}
	sweepOnce sync.Once
}

func NewLimiter() *Limiter {
	return &Limiter{
		entries:   make(map[string]*entry),
		now:       time.Now,
		sweepStop: make(chan struct{}),
	}
}

// getEntry returns the live window entry for the identity, starting a fresh
// window when none exists or the previous one expired. Lazy expiry on access
// is what makes correctness independent of the sweep. Callers hold l.mu.
func (l *Limiter) getEntry(identity string, cfg Config) *entry {
	now := l.now()
	if e, ok := l.entries[identity]; ok && e.resetAt.After(now) {
		return e
	}
	e := &entry{count: 0, resetAt: now.Add(cfg.Window)}
	l.entries[identity] = e
	return e
}

// Consume counts one request against the identity's current window. When the
// window is exhausted it returns a *LimitExceededError carrying the seconds
// until reset.
func (l *Limiter) Consume(identity string, cfg Config) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.getEntry(identity, cfg)
	if e.count >= cfg.MaxRequests {
		retryAfter := int(math.Ceil(e.resetAt.Sub(l.now()).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return Result{}, &LimitExceededError{RetryAfter: retryAfter}
	}

	e.count++
	return Result{Remaining: cfg.MaxRequests - e.count, ResetAt: e.resetAt}, nil
}

// Peek reports the identity's current status without consuming quota.
func (l *Limiter) Peek(identity string, cfg Config) Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.getEntry(identity, cfg)
	remaining := cfg.MaxRequests - e.count
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Limited:   e.count >= cfg.MaxRequests,
		Remaining: remaining,
		ResetAt:   e.resetAt,
	}
}

// StartSweeper launches a background goroutine that drops expired entries at
// the given interval to bound memory. It is an optimization only: expiry is
// already handled lazily on access.
func (l *Limiter) StartSweeper(interval time.Duration) {
	l.sweepOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					l.sweep()
				case <-l.sweepStop:
					return
				}
			}
		}()
	})
}

// StopSweeper terminates the sweep goroutine. Safe to call when the sweeper
// was never started.
func (l *Limiter) StopSweeper() {
	select {
	case <-l.sweepStop:
	default:
		close(l.sweepStop)
	}
}

func (l *Limiter) sweep() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for identity, e := range l.entries {
		if !e.resetAt.After(now) {
			delete(l.entries, identity)
		}
	}
}

// Package circuit implements a consecutive-failure circuit breaker for calls
// to external providers.
package circuit

import (
	"sync"
	"time"
)

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

const (
	defaultFailureThreshold = 5
	defaultSuccessThreshold = 1
	defaultCooldown         = 30 * time.Second
)

// Breaker opens after a run of consecutive failures and rejects calls until
// the cooldown elapses. It then admits one trial call at a time (half-open) and
// closes again after enough consecutive successes. A failure while half-open
// reopens it. Every admitted call must end in RecordSuccess, RecordFailure or
// Release. The zero value is not usable; a nil *Breaker allows every call.
type Breaker struct {
	name             string
	failureThreshold int
	successThreshold int
	cooldown         time.Duration
	now              func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openUntil time.Time
	trialOpen bool
}

// Option configures a Breaker.
type Option func(*Breaker)

func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

func WithCooldown(d time.Duration) Option {
	return func(b *Breaker) {
		if d > 0 {
			b.cooldown = d
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) { b.now = now }
}

// New builds a closed breaker.
func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		failureThreshold: defaultFailureThreshold,
		successThreshold: defaultSuccessThreshold,
		cooldown:         defaultCooldown,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Breaker) Name() string { return b.name }

// Allow reports whether a call may proceed. An open breaker whose cooldown
// has elapsed moves to half-open and admits the call as its trial. While a
// trial is in flight other calls are rejected.
func (b *Breaker) Allow() bool {
	if b == nil {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		if b.trialOpen {
			return false
		}
		b.trialOpen = true
		return true
	}
	if b.now().Before(b.openUntil) {
		return false
	}
	b.state = StateHalfOpen
	b.successes = 0
	b.trialOpen = true
	return true
}

// Release ends an admitted call whose outcome says nothing about the
// provider's health, such as a cancelled request or a malformed payload.
// A half-open breaker admits the next trial call.
func (b *Breaker) Release() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trialOpen = false
}

// RecordFailure counts a failed call and reports whether it opened the
// breaker.
func (b *Breaker) RecordFailure() (opened bool) {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trialOpen = false
	switch b.state {
	case StateOpen:
		return false
	case StateHalfOpen:
		b.open()
		return true
	}
	b.failures++
	if b.failures >= b.failureThreshold {
		b.open()
		return true
	}
	return false
}

// RecordSuccess counts a successful call and reports whether it closed the
// breaker. Successes reported while fully open are ignored.
func (b *Breaker) RecordSuccess() (closed bool) {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trialOpen = false
	switch b.state {
	case StateClosed:
		b.failures = 0
		return false
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.successThreshold {
			b.reset()
			return true
		}
	}
	return false
}

// State returns the current position without advancing it.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Reset closes the breaker.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.failures = 0
	b.successes = 0
	b.openUntil = b.now().Add(b.cooldown)
}

func (b *Breaker) reset() {
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
	b.openUntil = time.Time{}
	b.trialOpen = false
}

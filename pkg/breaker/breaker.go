// Package breaker implements the circuit breaker guarding backend-facing
// RPC handlers. The breaker is per service instance, not per caller.
package breaker

import (
	"sync"
	"time"
)

// State of the breaker.
type State int

const (
	// StateClosed admits every call.
	StateClosed State = iota
	// StateOpen rejects calls until the recovery time elapses.
	StateOpen
	// StateHalfOpen admits a single probe call.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config for a Breaker.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the
	// breaker.
	FailureThreshold int
	// RecoveryTime is how long the breaker stays open before admitting a
	// probe.
	RecoveryTime time.Duration
	// OnStateChange, when set, is invoked after each transition.
	OnStateChange func(from, to State)
}

// DefaultConfig returns the breaker defaults: a threshold of three failures
// and a 30 second recovery time, the same values New falls back to.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 3,
		RecoveryTime:     30 * time.Second,
	}
}

// Breaker is a mutex-guarded three-state circuit breaker.
type Breaker struct {
	mu          sync.Mutex
	config      Config
	state       State
	failures    int
	probing     bool
	lastFailure time.Time
}

// New creates a Breaker in the closed state.
func New(config Config) *Breaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 3
	}
	if config.RecoveryTime <= 0 {
		config.RecoveryTime = 30 * time.Second
	}
	return &Breaker{config: config, state: StateClosed}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Admit reports whether a call may proceed. While open, it returns false
// until the recovery time has elapsed since the last failure; the first call
// after that is admitted as a half-open probe and further calls are rejected
// until the probe is observed.
func (b *Breaker) Admit() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if time.Since(b.lastFailure) < b.config.RecoveryTime {
			return false
		}
		b.setState(StateHalfOpen)
		b.probing = true
		return true
	case StateHalfOpen:
		if b.probing {
			return false
		}
		b.probing = true
		return true
	}
	return false
}

// Observe records the outcome of an admitted call. A success in the closed or
// half-open state closes the breaker and resets the failure count; a failure
// in the half-open state reopens it, and the threshold'th consecutive failure
// in the closed state opens it.
func (b *Breaker) Observe(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		b.failures = 0
		b.probing = false
		if b.state != StateClosed {
			b.setState(StateClosed)
		}
		return
	}

	b.failures++
	b.lastFailure = time.Now()
	b.probing = false
	switch b.state {
	case StateHalfOpen:
		b.setState(StateOpen)
	case StateClosed:
		if b.failures >= b.config.FailureThreshold {
			b.setState(StateOpen)
		}
	}
}

func (b *Breaker) setState(to State) {
	from := b.state
	b.state = to
	if b.config.OnStateChange != nil && from != to {
		b.config.OnStateChange(from, to)
	}
}

package llm

import (
	"sync"
	"time"
)

// rateLimiter admits remote calls under two windows: a minimum interval
// between requests (per-minute limit) and a rolling 24h daily count.
//
// Admission and commit are a reserve/commit pair under one mutex. The
// original design checked and committed without synchronization, letting
// concurrent callers race past the daily limit; reservations close that
// race, so a grant for the last daily slot excludes every other caller
// until it commits or releases.
type rateLimiter struct {
	now              func() time.Time
	lastRequest      time.Time
	dailyWindowStart time.Time
	minInterval      time.Duration
	dailyLimit       int
	dailyCount       int
	pending          int
	mu               sync.Mutex
}

// Default admission limits.
const (
	defaultPerMinuteLimit = 10
	defaultDailyLimit     = 100
	dailyWindow           = 24 * time.Hour
)

// newRateLimiter creates a limiter admitting perMinute requests per minute
// and perDay per rolling day.
func newRateLimiter(perMinute, perDay int) *rateLimiter {
	if perMinute <= 0 {
		perMinute = defaultPerMinuteLimit
	}
	if perDay <= 0 {
		perDay = defaultDailyLimit
	}

	return &rateLimiter{
		minInterval: time.Minute / time.Duration(perMinute),
		dailyLimit:  perDay,
		now:         time.Now,
	}
}

// reserve attempts to claim an admission slot. A granted reservation must
// be resolved with commit (successful remote call) or release (call never
// happened or failed); callers must not touch the remote step on denial.
func (rl *rateLimiter) reserve() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	if rl.dailyWindowStart.IsZero() || now.Sub(rl.dailyWindowStart) > dailyWindow {
		rl.dailyCount = 0
		rl.dailyWindowStart = now
	}

	if rl.dailyCount+rl.pending >= rl.dailyLimit {
		return false
	}

	if !rl.lastRequest.IsZero() && now.Sub(rl.lastRequest) < rl.minInterval {
		return false
	}

	rl.pending++
	return true
}

// commit records a successful remote call against a held reservation.
func (rl *rateLimiter) commit() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.pending > 0 {
		rl.pending--
	}
	rl.dailyCount++
	rl.lastRequest = rl.now()
}

// release returns a held reservation without consuming a slot.
func (rl *rateLimiter) release() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.pending > 0 {
		rl.pending--
	}
}

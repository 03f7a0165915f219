package middleware

import (
	"sync"
	"time"
)

// RateLimiter counts requests per identity in fixed one-minute windows keyed
// by the wall-clock UTC minute. A burst can straddle a bucket edge; that
// imprecision is accepted. Counters for past minutes are dropped on rollover,
// so memory stays bounded by the number of identities seen in one minute.
type RateLimiter struct {
	mu     sync.Mutex
	minute int64
	counts map[string]int
	now    func() time.Time
}

// NewRateLimiter constructs a limiter using wall-clock time.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{counts: make(map[string]int), now: time.Now}
}

// Allow increments the identity's counter for the current minute and reports
// whether the request may proceed. A non-positive limit disables limiting.
func (l *RateLimiter) Allow(identity string, limitPerMinute int) bool {
	if limitPerMinute <= 0 {
		return true
	}
	minute := l.now().UTC().Unix() / 60

	l.mu.Lock()
	defer l.mu.Unlock()

	if minute != l.minute {
		l.minute = minute
		l.counts = make(map[string]int)
	}
	if l.counts[identity] >= limitPerMinute {
		return false
	}
	l.counts[identity]++
	return true
}

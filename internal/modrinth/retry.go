package modrinth

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RetryPolicy controls retries of API requests on transient statuses.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Statuses    []int
}

// DefaultRetryPolicy matches the upstream defaults: three attempts,
// 250ms exponential base, retrying 429 and the common 5xx statuses.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   250 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Statuses:    []int{http.StatusTooManyRequests, 500, 502, 503, 504},
	}
}

// Retryable reports whether a response status warrants another attempt.
func (p RetryPolicy) Retryable(status int) bool {
	for _, s := range p.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Backoff returns the delay before attempt (zero-based). A Retry-After
// header value, either delta-seconds or an HTTP date, extends the delay
// when it is longer than the computed one.
func (p RetryPolicy) Backoff(attempt int, retryAfter string) time.Duration {
	delay := p.BaseDelay << attempt
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	if retryAfter != "" {
		if secs, err := strconv.Atoi(retryAfter); err == nil {
			if ra := time.Duration(secs) * time.Second; ra > delay {
				delay = ra
			}
		} else if t, err := http.ParseTime(retryAfter); err == nil {
			if ra := time.Until(t); ra > delay {
				delay = ra
			}
		}
	}
	return delay
}

// randDuration returns a random duration between 0 and max.
// It is declared as a variable to allow tests to stub out randomness.
var randDuration = func(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// sleep is declared as a variable so tests can stub out actual sleeping.
var sleep = time.Sleep

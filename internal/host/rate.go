package host

import (
	"strings"
	"sync"
)

// Rate is one of the host's three fixed refresh cadences.
type Rate int

const (
	// RateCoarse refreshes every 100 host ticks.
	RateCoarse Rate = iota
	// RateMedium refreshes every 10 host ticks.
	RateMedium
	// RateFine refreshes every host tick.
	RateFine
)

// String returns the configuration keyword for the rate.
func (r Rate) String() string {
	switch r {
	case RateFine:
		return "fine"
	case RateMedium:
		return "medium"
	default:
		return "coarse"
	}
}

// ParseRate maps "1"/"fine", "10"/"medium" and "100"/"coarse" to a Rate.
// ok is false for anything else, in which case RateCoarse is returned.
func ParseRate(s string) (Rate, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "fine", "fast":
		return RateFine, true
	case "10", "medium":
		return RateMedium, true
	case "100", "coarse", "slow":
		return RateCoarse, true
	default:
		return RateCoarse, false
	}
}

// ManualScheduler records the requested rate for a driver loop to read.
// It is safe for concurrent use.
type ManualScheduler struct {
	mu   sync.Mutex
	rate Rate
}

// SetRate implements Scheduler.
func (s *ManualScheduler) SetRate(r Rate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = r
}

// Rate returns the last requested rate (RateCoarse if never set).
func (s *ManualScheduler) Rate() Rate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

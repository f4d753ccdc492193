package hint

import "time"

// Persisted keys, kept compatible with the values the web viewer wrote
const (
	KeyLastShown = "swipeIndicatorLastShown"
	KeyShowCount = "swipeIndicatorShowCount"
)

// Defaults for the hint policy
const (
	DefaultMaxShows  = 3
	DefaultCoolOff   = 30 * 24 * time.Hour
	DefaultFadeDelay = 4500 * time.Millisecond
)

// Config tunes the policy
type Config struct {
	MaxShows  int
	CoolOff   time.Duration
	FadeDelay time.Duration
}

// HintState is the persisted display history
type HintState struct {
	LastShownAt *time.Time
	ShowCount   int
}

// Decision is the outcome of one evaluation
type Decision struct {
	Visible   bool
	ShowCount int
}

// Timer is a cancellable deferred callback
type Timer interface {
	Stop() bool
}

// Clock supplies time and deferred callbacks
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

package gesture

import (
	"math"
	"time"

	"poemview/internal/ui/services/navigation"
)

// SwipeConfig holds swipe recognition thresholds
type SwipeConfig struct {
	DeltaThreshold float64       // minimum horizontal travel in pixels
	MaxDuration    time.Duration // longer gestures are not swipes
}

// SwipeSample is recorded at touch start and lives until touch end
type SwipeSample struct {
	StartX    float64
	StartTime time.Time
}

// Swipe recognises single-contact horizontal swipes on the swipe surface
type Swipe struct {
	cfg    SwipeConfig
	sample *SwipeSample
}

// NewSwipe creates a swipe interpreter; zero config fields take defaults
func NewSwipe(cfg SwipeConfig) *Swipe {
	if cfg.DeltaThreshold <= 0 {
		cfg.DeltaThreshold = DefaultSwipeDelta
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = DefaultSwipeMaxDuration
	}
	return &Swipe{cfg: cfg}
}

// TouchStart begins a sample. Any touch count other than one (a pinch, or a
// second finger joining) discards the gesture.
func (s *Swipe) TouchStart(points []Point, at time.Time) {
	if len(points) != 1 {
		s.sample = nil
		return
	}
	s.sample = &SwipeSample{StartX: points[0].X, StartTime: at}
}

// TouchMove only watches the contact count
func (s *Swipe) TouchMove(points []Point, at time.Time) {
	if s.sample != nil && len(points) != 1 {
		s.sample = nil
	}
}

// TouchEnd closes the sample. points are the contacts that were lifted.
func (s *Swipe) TouchEnd(points []Point, at time.Time) navigation.Intent {
	sample := s.sample
	s.sample = nil
	if sample == nil || len(points) != 1 {
		return navigation.None()
	}

	if at.Sub(sample.StartTime) > s.cfg.MaxDuration {
		return navigation.None()
	}

	dx := points[0].X - sample.StartX
	if math.Abs(dx) < s.cfg.DeltaThreshold {
		return navigation.None()
	}
	if dx < 0 {
		return navigation.Next()
	}
	return navigation.Prev()
}

// Cancel drops any sample in progress
func (s *Swipe) Cancel() {
	s.sample = nil
}

// Active reports whether a swipe is being tracked. While true the swipe
// surface must not scroll.
func (s *Swipe) Active() bool {
	return s.sample != nil
}

package navigation

import (
	"fmt"
	"log/slog"

	"poemview/internal/eventbus"
)

// Service is the transition gate: the only component allowed to change the
// current page. It is driven from a single event loop and is not safe for
// concurrent use.
type Service struct {
	state    State
	pages    Pages
	notifier Notifier
	bus      eventbus.EventBus
	logger   *slog.Logger
	closed   bool
}

// NewService creates a gate positioned at initial. An initial index outside
// the collection falls back to the first page; an empty collection leaves the
// gate at index 0 where every request is out of bounds.
func NewService(pages Pages, notifier Notifier, bus eventbus.EventBus, logger *slog.Logger, initial int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		pages:    pages,
		notifier: notifier,
		bus:      bus,
		logger:   logger.With("component", "navigation"),
	}

	n := pages.Count()
	switch {
	case n == 0:
		s.state.CurrentIndex = 0
	case initial < 1 || initial > n:
		s.logger.Info("initial page out of range, starting at first page", "page", initial, "total", n)
		s.state.CurrentIndex = 1
	default:
		s.state.CurrentIndex = initial
	}
	return s
}

// State returns a copy of the navigation state
func (s *Service) State() State {
	return s.state
}

// CurrentIndex returns the current 1-based page
func (s *Service) CurrentIndex() int {
	return s.state.CurrentIndex
}

// Total returns the number of pages
func (s *Service) Total() int {
	return s.pages.Count()
}

// CanGoPrev reports whether a Prev request would pass the boundary check
func (s *Service) CanGoPrev() bool {
	return s.state.CurrentIndex > 1
}

// CanGoNext reports whether a Next request would pass the boundary check
func (s *Service) CanGoNext() bool {
	return s.state.CurrentIndex >= 1 && s.state.CurrentIndex < s.pages.Count()
}

// RequestTransition arbitrates a navigation intent. On success it returns the
// new current index; otherwise the state is unchanged and the error names the
// rejection reason.
func (s *Service) RequestTransition(intent Intent) (int, error) {
	target, err := s.check(intent)
	if err != nil {
		s.reject(intent, err)
		return s.state.CurrentIndex, err
	}

	from := s.state.CurrentIndex
	s.state.InFlight = true
	s.state.CurrentIndex = target
	s.logger.Debug("transition accepted", "intent", intent.String(), "from", from, "to", target)

	func() {
		defer func() { s.state.InFlight = false }()
		if s.notifier != nil {
			s.notifier.NotifyPageChanged(target)
		}
	}()

	return target, nil
}

// Close rejects every later request. Used when the view goes away.
func (s *Service) Close() {
	s.closed = true
}

func (s *Service) check(intent Intent) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.state.InFlight {
		return 0, ErrTransitionInFlight
	}

	var target int
	switch intent.Kind {
	case IntentPrev:
		target = s.state.CurrentIndex - 1
	case IntentNext:
		target = s.state.CurrentIndex + 1
	case IntentGoTo:
		target = intent.Index
	default:
		return 0, ErrNoIntent
	}

	n := s.pages.Count()
	if target < 1 || target > n {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfBounds, target, n)
	}
	if checker, ok := s.pages.(ItemChecker); ok && !checker.HasItem(target) {
		return 0, fmt.Errorf("%w: %d", ErrNoItem, target)
	}
	return target, nil
}

func (s *Service) reject(intent Intent, err error) {
	s.logger.Debug("transition rejected", "intent", intent.String(), "reason", err)
	if s.bus != nil {
		s.bus.Publish(eventbus.TransitionRejectedEvent{Intent: intent.String(), Reason: err})
	}
}

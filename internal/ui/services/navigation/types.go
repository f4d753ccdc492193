package navigation

import (
	"errors"
	"fmt"
)

// Rejection reasons. Every one of them is an expected outcome: the request
// simply has no effect.
var (
	ErrOutOfBounds        = errors.New("navigation: target out of bounds")
	ErrTransitionInFlight = errors.New("navigation: transition in flight")
	ErrNoItem             = errors.New("navigation: no item at target")
	ErrNoIntent           = errors.New("navigation: no intent")
	ErrClosed             = errors.New("navigation: gate closed")
)

// IntentKind tags a navigation intent
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentPrev
	IntentNext
	IntentGoTo
)

// Intent is a proposed navigation action, consumed immediately by the gate
type Intent struct {
	Kind  IntentKind
	Index int // only meaningful for IntentGoTo
}

// None is the empty intent produced when an input is not a navigation gesture
func None() Intent { return Intent{} }

// Prev proposes the previous page
func Prev() Intent { return Intent{Kind: IntentPrev} }

// Next proposes the next page
func Next() Intent { return Intent{Kind: IntentNext} }

// GoTo proposes an absolute 1-based page
func GoTo(index int) Intent { return Intent{Kind: IntentGoTo, Index: index} }

// IsNone reports whether the intent proposes nothing
func (i Intent) IsNone() bool { return i.Kind == IntentNone }

func (i Intent) String() string {
	switch i.Kind {
	case IntentPrev:
		return "prev"
	case IntentNext:
		return "next"
	case IntentGoTo:
		return fmt.Sprintf("goto(%d)", i.Index)
	default:
		return "none"
	}
}

// State holds the authoritative navigation state
type State struct {
	CurrentIndex int
	InFlight     bool
}

// Notifier is the routing collaborator told about accepted transitions
type Notifier interface {
	NotifyPageChanged(target int)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(target int)

func (f NotifierFunc) NotifyPageChanged(target int) { f(target) }

// Pages is the read-only view of the collection the gate checks targets against
type Pages interface {
	Count() int
}

// ItemChecker is optionally implemented by Pages when item presence can be
// answered synchronously.
type ItemChecker interface {
	HasItem(index int) bool
}

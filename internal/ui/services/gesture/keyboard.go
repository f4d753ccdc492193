package gesture

import "poemview/internal/ui/services/navigation"

// Keyboard maps arrow keys to page intents. Key repeat is left to the
// transition gate.
type Keyboard struct {
	prev map[string]bool
	next map[string]bool
}

// NewKeyboard creates a keyboard interpreter. With no keys given it uses the
// left and right arrows.
func NewKeyboard(prevKeys, nextKeys []string) *Keyboard {
	if len(prevKeys) == 0 {
		prevKeys = []string{"left"}
	}
	if len(nextKeys) == 0 {
		nextKeys = []string{"right"}
	}
	k := &Keyboard{
		prev: make(map[string]bool, len(prevKeys)),
		next: make(map[string]bool, len(nextKeys)),
	}
	for _, key := range prevKeys {
		k.prev[key] = true
	}
	for _, key := range nextKeys {
		k.next[key] = true
	}
	return k
}

// Interpret returns the intent for a key name, or None
func (k *Keyboard) Interpret(key string) navigation.Intent {
	switch {
	case k.prev[key]:
		return navigation.Prev()
	case k.next[key]:
		return navigation.Next()
	default:
		return navigation.None()
	}
}

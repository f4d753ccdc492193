package input

import "poemview/internal/ui/input/types"

// KeyMap is the viewer's key bindings
type KeyMap = types.KeyMap

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return types.DefaultKeyMap()
}

package component

import "github.com/jakecoffman/cp"

// Hook is a ledge the player can hang from while falling past it.
type Hook struct {
	Size cp.Vector
}

var HookComponent = NewComponent[Hook]()

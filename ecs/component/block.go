package component

import "github.com/jakecoffman/cp"

// Block is a solid rectangle the player cannot pass through.
type Block struct {
	Size cp.Vector
}

var BlockComponent = NewComponent[Block]()

package component

import "github.com/jakecoffman/cp"

// Coin is consumed on first contact with the player.
type Coin struct {
	Size cp.Vector
}

var CoinComponent = NewComponent[Coin]()

// CheckPoint finishes the level when the player touches it.
type CheckPoint struct {
	Size    cp.Vector
	Reached bool
}

var CheckPointComponent = NewComponent[CheckPoint]()

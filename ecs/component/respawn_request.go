package component

// RespawnRequest is a marker component indicating the player fell to their
// death and must be put back at their initial position.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()

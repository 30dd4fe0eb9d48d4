package component

import "github.com/milk9111/antroit/physics"

// PhysicsBody links an entity to its body in the physics world. The world
// owns the body; the entity only holds the handle.
type PhysicsBody struct {
	Handle physics.BodyHandle
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Wall tags the static bodies framing the viewport.
type Wall struct{}

var WallComponent = NewComponent[Wall]()

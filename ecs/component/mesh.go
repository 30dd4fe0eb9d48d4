package component

import "github.com/milk9111/antroit/render"

// Mesh is the uploaded vertex buffer of a shape.
type Mesh struct {
	Buffer render.BufferID
	Count  int
}

var MeshComponent = NewComponent[Mesh]()

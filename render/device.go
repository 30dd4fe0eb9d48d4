// Package render draws the shape registry through a black-box Device.
package render

import (
	"errors"
	"math"

	"github.com/milk9111/antroit/common"
)

var ErrProgramInvalid = errors.New("render: invalid program")

// ProgramID names a compiled shader program. Zero is the invalid sentinel.
type ProgramID uint32

// BufferID names an uploaded vertex buffer. Zero is the invalid sentinel.
type BufferID uint32

// Color is a straight-alpha RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Clamped returns c with every channel clamped into [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: common.Clamp01(c.R),
		G: common.Clamp01(c.G),
		B: common.Clamp01(c.B),
		A: common.Clamp01(c.A),
	}
}

// Float32 returns the channels in shader uniform order.
func (c Color) Float32() []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + Tx
//	y' = C*x + D*y + Ty
type Affine struct {
	A, B, Tx float64
	C, D, Ty float64
}

func Identity() Affine {
	return Affine{A: 1, D: 1}
}

func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, Tx: x, Ty: y}
}

// Rotate rotates counter-clockwise in a y-up frame (clockwise on screen).
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return Affine{A: c, B: -s, C: s, D: c}
}

// Mul returns m∘n: n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A:  m.A*n.A + m.B*n.C,
		B:  m.A*n.B + m.B*n.D,
		Tx: m.A*n.Tx + m.B*n.Ty + m.Tx,
		C:  m.C*n.A + m.D*n.C,
		D:  m.C*n.B + m.D*n.D,
		Ty: m.C*n.Tx + m.D*n.Ty + m.Ty,
	}
}

// Ortho maps a width×height pixel viewport (origin top-left, y down) onto
// clip space [-1, 1]² with y up.
func Ortho(width, height float64) Affine {
	if width <= 0 || height <= 0 {
		return Identity()
	}
	return Affine{A: 2 / width, Tx: -1, D: -2 / height, Ty: 1}
}

func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.Tx, m.C*x + m.D*y + m.Ty
}

// Device is the graphics backend. Vertex buffers hold x,y pairs in local
// render units; DrawTriangles maps them through mvp into clip space.
type Device interface {
	Info() map[string]string
	CompileProgram(src []byte) (ProgramID, error)
	DeleteProgram(p ProgramID)
	CreateBuffer(vertices []float32) BufferID
	DeleteBuffer(b BufferID)
	Viewport(width, height int)
	Clear(c Color)
	UseProgram(p ProgramID)
	DrawTriangles(b BufferID, count int, mvp Affine, c Color)
}

// Package rendertest provides a recording render.Device for tests.
package rendertest

import (
	"errors"

	"github.com/milk9111/antroit/render"
)

// Draw is one recorded DrawTriangles call.
type Draw struct {
	Buffer   render.BufferID
	Count    int
	MVP      render.Affine
	Color    render.Color
	Vertices []float32
}

// Recorder implements render.Device and records every call.
type Recorder struct {
	// FailCompile makes CompileProgram return an error with this log text.
	FailCompile string

	Ops      []string
	Draws    []Draw
	Programs map[render.ProgramID]bool
	Buffers  map[render.BufferID][]float32
	Bound    render.ProgramID
	Width    int
	Height   int
	Cleared  []render.Color

	nextID uint32
}

func New() *Recorder {
	return &Recorder{
		Programs: make(map[render.ProgramID]bool),
		Buffers:  make(map[render.BufferID][]float32),
	}
}

func (r *Recorder) Info() map[string]string {
	return map[string]string{"version": "test", "vendor": "rendertest", "renderer": "recorder"}
}

func (r *Recorder) CompileProgram(src []byte) (render.ProgramID, error) {
	r.Ops = append(r.Ops, "compile")
	if r.FailCompile != "" {
		return 0, errors.New(r.FailCompile)
	}
	r.nextID++
	id := render.ProgramID(r.nextID)
	r.Programs[id] = true
	return id, nil
}

func (r *Recorder) DeleteProgram(p render.ProgramID) {
	r.Ops = append(r.Ops, "delete_program")
	delete(r.Programs, p)
}

func (r *Recorder) CreateBuffer(vertices []float32) render.BufferID {
	r.nextID++
	id := render.BufferID(r.nextID)
	r.Buffers[id] = append([]float32(nil), vertices...)
	return id
}

func (r *Recorder) DeleteBuffer(b render.BufferID) {
	delete(r.Buffers, b)
}

func (r *Recorder) Viewport(width, height int) {
	r.Ops = append(r.Ops, "viewport")
	r.Width, r.Height = width, height
}

func (r *Recorder) Clear(c render.Color) {
	r.Ops = append(r.Ops, "clear")
	r.Cleared = append(r.Cleared, c)
}

func (r *Recorder) UseProgram(p render.ProgramID) {
	if p == 0 {
		r.Ops = append(r.Ops, "unbind")
	} else {
		r.Ops = append(r.Ops, "bind")
	}
	r.Bound = p
}

func (r *Recorder) DrawTriangles(b render.BufferID, count int, mvp render.Affine, c render.Color) {
	r.Ops = append(r.Ops, "draw")
	r.Draws = append(r.Draws, Draw{Buffer: b, Count: count, MVP: mvp, Color: c, Vertices: r.Buffers[b]})
}

// Reset forgets recorded draws and ops but keeps live resources.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Draws = nil
	r.Cleared = nil
}

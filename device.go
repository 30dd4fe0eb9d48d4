package main

import (
	"fmt"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/antroit/render"
)

// ebitenDevice draws through ebiten with a Kage fill shader. Buffers are kept
// on the CPU and transformed per draw.
type ebitenDevice struct {
	target   *ebiten.Image
	shaders  map[render.ProgramID]*ebiten.Shader
	buffers  map[render.BufferID][]float32
	current  *ebiten.Shader
	nextID   uint32
	width    int
	height   int
	vertices []ebiten.Vertex
	indices  []uint16
}

func newEbitenDevice() *ebitenDevice {
	return &ebitenDevice{
		shaders: make(map[render.ProgramID]*ebiten.Shader),
		buffers: make(map[render.BufferID][]float32),
	}
}

// SetTarget points subsequent draws at the frame's screen image.
func (d *ebitenDevice) SetTarget(screen *ebiten.Image) {
	d.target = screen
}

func (d *ebitenDevice) Info() map[string]string {
	return map[string]string{
		"version":  fmt.Sprintf("ebiten/v2 %s", runtime.Version()),
		"vendor":   "ebitengine",
		"renderer": fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (d *ebitenDevice) CompileProgram(src []byte) (render.ProgramID, error) {
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return 0, err
	}
	d.nextID++
	id := render.ProgramID(d.nextID)
	d.shaders[id] = sh
	return id, nil
}

func (d *ebitenDevice) DeleteProgram(p render.ProgramID) {
	if sh, ok := d.shaders[p]; ok {
		sh.Deallocate()
		delete(d.shaders, p)
	}
}

func (d *ebitenDevice) CreateBuffer(vertices []float32) render.BufferID {
	d.nextID++
	id := render.BufferID(d.nextID)
	d.buffers[id] = append([]float32(nil), vertices...)
	return id
}

func (d *ebitenDevice) DeleteBuffer(b render.BufferID) {
	delete(d.buffers, b)
}

func (d *ebitenDevice) Viewport(width, height int) {
	d.width, d.height = width, height
}

func (d *ebitenDevice) Clear(c render.Color) {
	if d.target == nil {
		return
	}
	d.target.Fill(toRGBA(c))
}

func (d *ebitenDevice) UseProgram(p render.ProgramID) {
	d.current = d.shaders[p]
}

func (d *ebitenDevice) DrawTriangles(b render.BufferID, count int, mvp render.Affine, c render.Color) {
	buf, ok := d.buffers[b]
	if !ok || d.target == nil || d.current == nil {
		return
	}
	if count*2 > len(buf) {
		count = len(buf) / 2
	}

	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i := 0; i < count; i++ {
		x, y := mvp.Apply(float64(buf[2*i]), float64(buf[2*i+1]))
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX:   float32((x + 1) / 2 * float64(d.width)),
			DstY:   float32((1 - y) / 2 * float64(d.height)),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
		d.indices = append(d.indices, uint16(i))
	}

	op := &ebiten.DrawTrianglesShaderOptions{
		Blend: ebiten.BlendSourceOver,
		Uniforms: map[string]interface{}{
			"Color": c.Clamped().Float32(),
		},
	}
	d.target.DrawTrianglesShader(d.vertices, d.indices, d.current, op)
}

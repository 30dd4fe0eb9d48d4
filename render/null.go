package render

// NullDevice accepts every call and draws nothing. It backs headless runs.
type NullDevice struct {
	nextID  uint32
	buffers map[BufferID]int
}

func (d *NullDevice) Info() map[string]string {
	return map[string]string{"renderer": "null"}
}

func (d *NullDevice) CompileProgram(src []byte) (ProgramID, error) {
	d.nextID++
	return ProgramID(d.nextID), nil
}

func (d *NullDevice) DeleteProgram(p ProgramID) {}

func (d *NullDevice) CreateBuffer(vertices []float32) BufferID {
	if d.buffers == nil {
		d.buffers = make(map[BufferID]int)
	}
	d.nextID++
	id := BufferID(d.nextID)
	d.buffers[id] = len(vertices)
	return id
}

func (d *NullDevice) DeleteBuffer(b BufferID) {
	delete(d.buffers, b)
}

// LiveBuffers is the number of buffers created and not yet deleted.
func (d *NullDevice) LiveBuffers() int {
	return len(d.buffers)
}

func (d *NullDevice) Viewport(width, height int) {}

func (d *NullDevice) Clear(c Color) {}

func (d *NullDevice) UseProgram(p ProgramID) {}

func (d *NullDevice) DrawTriangles(b BufferID, count int, mvp Affine, c Color) {}

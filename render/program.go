package render

import (
	_ "embed"
	"fmt"

	"go.uber.org/zap"
)

//go:embed shaders/fill.kage
var FillShader []byte

// LoadProgram compiles src on d. Compilation diagnostics are logged and the
// returned error wraps ErrProgramInvalid.
func LoadProgram(d Device, src []byte, logger *zap.Logger) (ProgramID, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d == nil {
		return 0, fmt.Errorf("%w: no device", ErrProgramInvalid)
	}
	p, err := d.CompileProgram(src)
	if err != nil {
		logger.Error("render: could not create program", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrProgramInvalid, err)
	}
	if p == 0 {
		logger.Error("render: device returned the null program")
		return 0, ErrProgramInvalid
	}
	return p, nil
}

// Flatten converts x,y vertex pairs into the float slice Device buffers take.
func Flatten(points [][2]float64) []float32 {
	out := make([]float32, 0, len(points)*2)
	for _, p := range points {
		out = append(out, float32(p[0]), float32(p[1]))
	}
	return out
}

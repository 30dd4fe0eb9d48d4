package physics

import "strconv"

// BodyHandle addresses a body in a World. A handle outlives its body safely:
// once the body is destroyed the slot generation moves on and the handle is
// rejected.
type BodyHandle uint64

const handleIndexBits = 32

func makeHandle(index, gen uint32) BodyHandle {
	return BodyHandle(uint64(gen)<<handleIndexBits | uint64(index))
}

func (h BodyHandle) index() uint32 {
	return uint32(h)
}

func (h BodyHandle) generation() uint32 {
	return uint32(uint64(h) >> handleIndexBits)
}

// Valid reports whether h was ever issued. It does not check liveness.
func (h BodyHandle) Valid() bool {
	return h.index() > 0
}

func (h BodyHandle) String() string {
	return strconv.FormatUint(uint64(h.index()), 10) + "@" + strconv.FormatUint(uint64(h.generation()), 10)
}

// bodyTable tracks slot generations and free slots. Slot indices start at 1
// so the zero handle is never live.
type bodyTable struct {
	slots []*bodySlot
	gen   []uint32
	free  []uint32
	live  int
}

func (t *bodyTable) insert(s *bodySlot) BodyHandle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[idx-1] = s
	} else {
		t.slots = append(t.slots, s)
		t.gen = append(t.gen, 0)
		idx = uint32(len(t.slots))
	}
	t.live++
	return makeHandle(idx, t.gen[idx-1])
}

func (t *bodyTable) get(h BodyHandle) *bodySlot {
	idx := h.index()
	if idx == 0 || int(idx) > len(t.slots) {
		return nil
	}
	if t.gen[idx-1] != h.generation() {
		return nil
	}
	return t.slots[idx-1]
}

func (t *bodyTable) remove(h BodyHandle) *bodySlot {
	s := t.get(h)
	if s == nil {
		return nil
	}
	idx := h.index()
	t.slots[idx-1] = nil
	t.gen[idx-1]++
	t.free = append(t.free, idx)
	t.live--
	return s
}

// handles returns every live handle in slot order.
func (t *bodyTable) handles() []BodyHandle {
	out := make([]BodyHandle, 0, t.live)
	for i, s := range t.slots {
		if s == nil {
			continue
		}
		out = append(out, makeHandle(uint32(i+1), t.gen[i]))
	}
	return out
}

package camera

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	c := NewCamera(WithLookAt(1, 2, -3, 0, 0, 0))
	c.Update()

	u := NewGPUCameraUniform(c)
	if u.Size() != 80 {
		t.Fatalf("Size = %d, want 80", u.Size())
	}
	if u.ViewProj != c.ViewProjectionMatrix() {
		t.Fatalf("uniform does not carry the view-projection matrix")
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("Marshal length = %d, want 80", len(buf))
	}
	read := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if read(14*4) != u.ViewProj[14] {
		t.Fatalf("ViewProj[14] not at offset 56")
	}
	if read(64) != 1 || read(68) != 2 || read(72) != -3 || read(76) != 0 {
		t.Fatalf("camera position block = %v %v %v pad %v", read(64), read(68), read(72), read(76))
	}
}

package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the per-draw constant buffer layout for camera data.
// Size: 80 bytes (16-byte aligned for both HLSL cbuffers and WGSL uniforms).
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: combined view-projection matrix
	CameraPosition [3]float32  // offset 64: world-space camera position
	_pad           float32     // offset 76: padding to 80 bytes
}

// NewGPUCameraUniform snapshots the camera's view-projection matrix and position.
// Call it after Update so the matrix reflects the current pose.
//
// Parameters:
//   - c: the camera to read
//
// Returns:
//   - GPUCameraUniform: the packed uniform data
func NewGPUCameraUniform(c Camera) GPUCameraUniform {
	var u GPUCameraUniform
	u.ViewProj = c.ViewProjectionMatrix()
	u.CameraPosition[0], u.CameraPosition[1], u.CameraPosition[2] = c.Position()
	return u
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a little-endian byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:], 0) // _pad
	return buf
}

package renderer

import (
	"github.com/Carmen-Shannon/ogde/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// StageCamera packs the camera's view-projection matrix and position into a uniform write.
// The camera should already have been updated this frame.
//
// Parameters:
//   - c: the camera to read
//   - buffer: the uniform buffer bound to the camera's bind group
//   - offset: byte offset inside buffer
//
// Returns:
//   - BufferWrite: the staged write
func StageCamera(c camera.Camera, buffer *wgpu.Buffer, offset uint64) BufferWrite {
	u := camera.NewGPUCameraUniform(c)
	return BufferWrite{
		Buffer: buffer,
		Offset: offset,
		Data:   u.Marshal(),
	}
}

// StageRig stages one uniform write per rig camera that has a buffer in buffers.
// Writes follow the rig's insertion order.
//
// Parameters:
//   - rig: the cameras to stage
//   - buffers: uniform buffers keyed by camera name
//
// Returns:
//   - []BufferWrite: the staged writes
func StageRig(rig *camera.Rig, buffers map[string]*wgpu.Buffer) []BufferWrite {
	writes := make([]BufferWrite, 0, len(buffers))
	for _, name := range rig.Names() {
		buf, ok := buffers[name]
		if !ok {
			continue
		}
		c := rig.Camera(name)
		if c == nil {
			continue
		}
		writes = append(writes, StageCamera(c, buf, 0))
	}
	return writes
}

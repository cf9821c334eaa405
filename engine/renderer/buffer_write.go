package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// QueueWriter is the part of *wgpu.Queue used to upload buffer contents.
type QueueWriter interface {
	WriteBuffer(buffer *wgpu.Buffer, bufferOffset uint64, data []byte) error
}

var _ QueueWriter = (*wgpu.Queue)(nil)

// BufferWrite describes a single GPU buffer write operation at a given byte offset.
type BufferWrite struct {
	Buffer *wgpu.Buffer
	Offset uint64
	Data   []byte
}

// WriteBuffers writes all staged buffer writes to the GPU queue in order.
// Writes without a target buffer are skipped. The first failing write stops the batch.
//
// Parameters:
//   - q: the queue to write to (normally the device's *wgpu.Queue)
//   - writes: a slice of BufferWrite structs describing the data to write
//
// Returns:
//   - error: the first write error, annotated with its index in writes
func WriteBuffers(q QueueWriter, writes []BufferWrite) error {
	for i, w := range writes {
		if w.Buffer == nil {
			continue
		}
		if err := q.WriteBuffer(w.Buffer, w.Offset, w.Data); err != nil {
			return fmt.Errorf("renderer: write %d (%d bytes at offset %d): %w", i, len(w.Data), w.Offset, err)
		}
	}
	return nil
}

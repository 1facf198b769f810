package ports

import "github.com/user/framecast/pkg/pixel"

// FrameProducer supplies one raw RGB frame per call. The core never learns
// how the buffer was made; it only needs the buffer and the producer's label
// for mode bookkeeping.
type FrameProducer interface {
	// Label returns the producer's mode name (e.g. "bouncing_shapes").
	Label() string

	// Frame produces the next raw frame. Producers are invoked under the
	// publisher's lock and must be synchronous and bounded.
	Frame() (*pixel.Buffer, error)
}

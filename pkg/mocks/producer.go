// Package mocks provides mock implementations for testing.
package mocks

import (
	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
)

// FrameProducer is a mock implementation of ports.FrameProducer.
type FrameProducer struct {
	LabelValue string
	FrameFunc  func() (*pixel.Buffer, error)

	// Recorded calls for verification
	FrameCalls int
}

// Label returns the configured mode label.
func (m *FrameProducer) Label() string {
	return m.LabelValue
}

// Frame records the call and delegates to FrameFunc, defaulting to a 1x1
// black buffer.
func (m *FrameProducer) Frame() (*pixel.Buffer, error) {
	m.FrameCalls++
	if m.FrameFunc != nil {
		return m.FrameFunc()
	}
	return pixel.NewBuffer(1, 1), nil
}

var _ ports.FrameProducer = (*FrameProducer)(nil)

// Package framestore provides the bounded registry of recently published
// frames, split into transport chunks for the polling protocol.
package framestore

import (
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/framecast/pkg/pixel"
)

// ErrNotFound is returned when a frame id is unknown or a chunk index is out
// of range.
var ErrNotFound = errors.New("framestore: frame or chunk not found")

// Frame is one published frame: the encoded payload split into chunks plus
// the source pixel buffer, kept so the next frame can be diffed against it.
type Frame struct {
	ID        string
	Chunks    []string
	CreatedAt time.Time
	Source    *pixel.Buffer
}

// Store is an insertion-ordered, FIFO-bounded frame registry. Reads are safe
// to run concurrently with publishes.
type Store struct {
	mu       sync.RWMutex
	maxSize  int
	order    []string
	byID     map[string]*Frame
	now      func() time.Time
	newID    func() string
}

// New creates a store retaining at most maxSize frames.
func New(maxSize int) *Store {
	return &Store{
		maxSize: maxSize,
		byID:    make(map[string]*Frame),
		now:     time.Now,
		newID:   newFrameID,
	}
}

// newFrameID generates an opaque 32-hex-digit frame token.
func newFrameID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Publish splits payload into chunks of at most chunkSize bytes, stores it
// together with its source buffer under a fresh id, and evicts the oldest
// frame when the store exceeds capacity. A payload whose length is an exact
// multiple of chunkSize yields no trailing empty chunk; an empty payload
// yields no chunks at all.
func (s *Store) Publish(source *pixel.Buffer, payload string, chunkSize int) *Frame {
	var chunks []string
	for i := 0; i < len(payload); i += chunkSize {
		end := i + chunkSize
		if end > len(payload) {
			end = len(payload)
		}
		chunks = append(chunks, payload[i:end])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	frame := &Frame{
		ID:        s.newID(),
		Chunks:    chunks,
		CreatedAt: s.now(),
		Source:    source,
	}
	s.order = append(s.order, frame.ID)
	s.byID[frame.ID] = frame
	if len(s.order) > s.maxSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.byID, oldest)
	}
	return frame
}

// Chunk returns the chunk at the given index of the given frame.
func (s *Store) Chunk(frameID string, index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frame, ok := s.byID[frameID]
	if !ok {
		return "", ErrNotFound
	}
	if index < 0 || index >= len(frame.Chunks) {
		return "", ErrNotFound
	}
	return frame.Chunks[index], nil
}

// LatestBuffer returns the source buffer of the most recently published
// frame, or nil when the store is empty.
func (s *Store) LatestBuffer() *pixel.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil
	}
	return s.byID[s.order[len(s.order)-1]].Source
}

// Len returns the number of retained frames.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Package publisher glues the encoder suite to the frame store: for each new
// frame it runs every candidate encoding, picks the smallest, and publishes
// the result as transport chunks.
package publisher

import (
	"errors"
	"fmt"
	"sync"

	"github.com/user/framecast/pkg/encoding"
	"github.com/user/framecast/pkg/framestore"
	"github.com/user/framecast/pkg/ports"
)

// ErrNoContent is returned when no encoder produced a candidate for the
// frame. It maps to an empty 204 response, not a failure.
var ErrNoContent = errors.New("publisher: no encodable content")

// Result describes one published frame.
type Result struct {
	FrameID    string
	ChunkCount int
	// FirstChunk holds the first chunk when it fits the inline budget,
	// sparing the client one round trip. Empty otherwise.
	FirstChunk string
	// Tag and Size identify the winning encoding, for logging.
	Tag  string
	Size int
}

// Body renders the new_frame response body.
func (r *Result) Body() string {
	body := fmt.Sprintf("%s;%d", r.FrameID, r.ChunkCount)
	if r.FirstChunk != "" {
		body += ";" + r.FirstChunk
	}
	return body
}

// Publisher serializes frame production and publication. All shared mutable
// state touched by a new-frame request (producer, palette cache via the
// encoders, frame store) is guarded by one mutex per the single-writer
// contract; chunk reads go straight to the store.
type Publisher struct {
	mu        sync.Mutex
	store     *framestore.Store
	suite     []encoding.Encoder
	chunkSize int
	logger    ports.Logger
}

// New creates a publisher over the given store and encoder suite.
func New(store *framestore.Store, suite []encoding.Encoder, chunkSize int, logger ports.Logger) *Publisher {
	return &Publisher{
		store:     store,
		suite:     suite,
		chunkSize: chunkSize,
		logger:    logger.WithComponent("publisher"),
	}
}

// Publish obtains a frame from the producer, selects the smallest candidate
// encoding, and stores it. The store and palette cache are only mutated
// after a candidate has been fully computed, so a failed request leaves
// them untouched.
func (p *Publisher) Publish(producer ports.FrameProducer, cachedPaletteIDs map[int]bool) (*Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, err := producer.Frame()
	if err != nil {
		return nil, fmt.Errorf("produce frame (%s): %w", producer.Label(), err)
	}

	req := encoding.Request{
		Current:          buf,
		Previous:         p.store.LatestBuffer(),
		CachedPaletteIDs: cachedPaletteIDs,
	}

	payload, tag, ok := selectSmallest(p.suite, req)
	if !ok {
		return nil, ErrNoContent
	}

	frame := p.store.Publish(buf, payload, p.chunkSize)

	result := &Result{
		FrameID:    frame.ID,
		ChunkCount: len(frame.Chunks),
		Tag:        tag,
		Size:       len(payload),
	}
	if len(frame.Chunks) > 0 {
		header := fmt.Sprintf("%s;%d", frame.ID, len(frame.Chunks))
		if len(header)+1+len(frame.Chunks[0]) < p.chunkSize {
			result.FirstChunk = frame.Chunks[0]
		}
	}

	p.logger.Debug("Frame published: format %s, %d bytes, %d chunks", tag, result.Size, result.ChunkCount)
	return result, nil
}

// selectSmallest runs every encoder and returns the shortest payload.
// Length ties go to the encoder listed first in the suite.
func selectSmallest(suite []encoding.Encoder, req encoding.Request) (payload, tag string, ok bool) {
	for _, enc := range suite {
		candidate, applicable := enc.Encode(req)
		if !applicable {
			continue
		}
		if !ok || len(candidate) < len(payload) {
			payload, tag, ok = candidate, enc.Tag(), true
		}
	}
	return payload, tag, ok
}

// Package rotator cycles through the frame producers on a wall-clock
// schedule, deciding which mode supplies the next frame.
package rotator

import (
	"sync"
	"time"

	"github.com/user/framecast/pkg/ports"
)

// DefaultInterval is the wall-clock time a mode stays active before the
// rotation advances.
const DefaultInterval = 5 * time.Second

// Rotator holds the ordered producer list and the rotation clock. The sticky
// label (the video stream mode) is never auto-rotated away; every other mode
// advances after the interval elapses. The asymmetry comes from the original
// product behavior and is preserved on purpose.
type Rotator struct {
	mu         sync.Mutex
	producers  []ports.FrameProducer
	current    int
	interval   time.Duration
	sticky     string
	lastSwitch time.Time
	now        func() time.Time
}

// New creates a rotator over the given producers. stickyLabel names the mode
// that never rotates away; pass "" to rotate all modes.
func New(producers []ports.FrameProducer, interval time.Duration, stickyLabel string) *Rotator {
	r := &Rotator{
		producers: producers,
		interval:  interval,
		sticky:    stickyLabel,
		now:       time.Now,
	}
	r.lastSwitch = r.now()
	return r
}

// Current returns the active producer, advancing the rotation first when the
// interval has elapsed and the active mode is not sticky.
func (r *Rotator) Current() ports.FrameProducer {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := r.producers[r.current]
	if active.Label() != r.sticky && r.now().Sub(r.lastSwitch) > r.interval {
		r.current = (r.current + 1) % len(r.producers)
		r.lastSwitch = r.now()
		active = r.producers[r.current]
	}
	return active
}

// Labels returns the mode labels in rotation order.
func (r *Rotator) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]string, len(r.producers))
	for i, p := range r.producers {
		labels[i] = p.Label()
	}
	return labels
}

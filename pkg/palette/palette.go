// Package palette provides the content-addressed palette registry used by
// the indexed frame encodings.
package palette

import (
	"container/list"
	"sync"

	"github.com/user/framecast/pkg/pixel"
)

// MaxColors is the largest color count an indexed palette may hold.
const MaxColors = 256

// Palette is an immutable ordered color table with a stable id.
type Palette struct {
	ID     int
	Colors []pixel.Color

	index map[pixel.Color]int
}

// IndexOf returns the palette index of c. The second result is false when
// the color is not part of the palette.
func (p *Palette) IndexOf(c pixel.Color) (int, bool) {
	i, ok := p.index[c]
	return i, ok
}

// Cache is an LRU-bounded registry mapping an ordered color sequence to a
// Palette. Lookup is by exact sequence equality; a hit promotes the entry to
// most-recently-used, a miss inserts a fresh palette and evicts the
// least-recently-used entry once the capacity is exceeded. Ids are assigned
// from a monotonically increasing counter and never reused.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	nextID  int
	order   *list.List // front = most recently used; holds *Palette
	byKey   map[string]*list.Element
}

// NewCache creates a palette cache holding at most maxSize entries.
func NewCache(maxSize int) *Cache {
	return &Cache{
		maxSize: maxSize,
		order:   list.New(),
		byKey:   make(map[string]*list.Element),
	}
}

// GetOrCreate resolves the palette for the given ordered color sequence,
// creating it when absent. The second result reports whether the palette was
// created by this call.
func (c *Cache) GetOrCreate(colors []pixel.Color) (*Palette, bool) {
	key := colorKey(colors)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byKey[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*Palette), false
	}

	p := &Palette{
		ID:     c.nextID,
		Colors: append([]pixel.Color(nil), colors...),
		index:  make(map[pixel.Color]int, len(colors)),
	}
	c.nextID++
	for i, col := range p.Colors {
		p.index[col] = i
	}

	c.byKey[key] = c.order.PushFront(p)
	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.byKey, colorKey(oldest.Value.(*Palette).Colors))
	}
	return p, true
}

// Len returns the number of cached palettes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// colorKey packs an ordered color sequence into a comparable string key.
func colorKey(colors []pixel.Color) string {
	b := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		b = append(b, c.R, c.G, c.B)
	}
	return string(b)
}

package palette

import (
	"testing"

	"github.com/user/framecast/pkg/pixel"
)

func colors(n int) []pixel.Color {
	cs := make([]pixel.Color, n)
	for i := range cs {
		cs[i] = pixel.Color{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)}
	}
	return cs
}

func TestCache_GetOrCreate_Identity(t *testing.T) {
	cache := NewCache(10)

	first, created := cache.GetOrCreate(colors(4))
	if !created {
		t.Fatal("first lookup should create the palette")
	}

	second, created := cache.GetOrCreate(colors(4))
	if created {
		t.Error("identical color sequence should hit the cache")
	}
	if first.ID != second.ID {
		t.Errorf("same colors resolved to ids %d and %d", first.ID, second.ID)
	}
}

func TestCache_GetOrCreate_DistinctSequences(t *testing.T) {
	cache := NewCache(10)

	a, _ := cache.GetOrCreate(colors(2))
	b, _ := cache.GetOrCreate(colors(3))
	if a.ID == b.ID {
		t.Error("different color sequences must get different ids")
	}
	if a.ID != 0 || b.ID != 1 {
		t.Errorf("ids should be assigned sequentially, got %d and %d", a.ID, b.ID)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2)

	a, _ := cache.GetOrCreate(colors(2))
	cache.GetOrCreate(colors(3))

	// Touch a so the next insertion evicts the other entry.
	cache.GetOrCreate(colors(2))
	cache.GetOrCreate(colors(4))

	if cache.Len() != 2 {
		t.Fatalf("cache size %d exceeds capacity 2", cache.Len())
	}

	kept, created := cache.GetOrCreate(colors(2))
	if created {
		t.Error("recently used entry was evicted")
	}
	if kept.ID != a.ID {
		t.Errorf("entry id changed from %d to %d", a.ID, kept.ID)
	}

	// The untouched entry must be gone, and its id never reused.
	recreated, created := cache.GetOrCreate(colors(3))
	if !created {
		t.Error("least recently used entry should have been evicted")
	}
	if recreated.ID != 3 {
		t.Errorf("ids must never be reused, got %d", recreated.ID)
	}
}

func TestCache_RepeatedLookupNeverEvicts(t *testing.T) {
	cache := NewCache(2)
	p, _ := cache.GetOrCreate(colors(4))

	for i := 0; i < 5; i++ {
		got, created := cache.GetOrCreate(colors(4))
		if created || got.ID != p.ID {
			t.Fatalf("lookup %d: palette unexpectedly recreated", i)
		}
	}
}

func TestPalette_IndexOf(t *testing.T) {
	cache := NewCache(10)
	p, _ := cache.GetOrCreate(colors(4))

	for i, c := range p.Colors {
		idx, ok := p.IndexOf(c)
		if !ok || idx != i {
			t.Errorf("color %d: got index %d ok=%v", i, idx, ok)
		}
	}

	if _, ok := p.IndexOf(pixel.Color{R: 200}); ok {
		t.Error("foreign color should not resolve to an index")
	}
}

func TestCache_CapacityStress(t *testing.T) {
	cache := NewCache(5)
	for i := 0; i < 50; i++ {
		cache.GetOrCreate([]pixel.Color{{R: uint8(i)}, {G: uint8(i)}})
		if cache.Len() > 5 {
			t.Fatalf("iteration %d: cache grew to %d", i, cache.Len())
		}
	}
}

func TestColorKey_Distinct(t *testing.T) {
	// Packed keys must distinguish order as well as membership.
	a := []pixel.Color{{R: 1}, {R: 2}}
	b := []pixel.Color{{R: 2}, {R: 1}}
	if colorKey(a) == colorKey(b) {
		t.Errorf("keys collide for %v and %v", a, b)
	}
}

package quill

import (
	"iter"
	"math"
	"sync"

	"github.com/akmonengine/quill/geom"
	"github.com/akmonengine/quill/scalar"
)

// Candidate is one broad-phase query result: an entry whose stored AABB
// overlaps the query box and whose group mask shares a bit with the
// query mask.
type Candidate[K comparable, T scalar.Real[T]] struct {
	ID        K
	Shape     geom.Shape[T]
	Transform geom.Transform2D[T]
	Mask      uint32
}

type hashEntry[T scalar.Real[T]] struct {
	shape     geom.Shape[T]
	transform geom.Transform2D[T]
	// aabb caches the transformed box at insert time; Remove walks the
	// cells it covers.
	aabb geom.AABB2D[T]
	mask uint32
}

// SpatialHash2D is a uniform-grid broad-phase index keyed by
// caller-supplied identifiers.
//
// An entry occupies every cell its transformed AABB overlaps; cell
// coordinates are floor(position / cellSize). The index tracks the
// min/max cell coordinates ever observed and clamps query ranges to
// them, so a huge query box costs at most the populated region.
//
// Not safe for concurrent use: queries share a pooled scratch set. Shard
// one instance per goroutine or serialize access externally.
type SpatialHash2D[K comparable, T scalar.Real[T]] struct {
	cellSize T
	cells    map[cellKey][]K
	lookup   map[K]hashEntry[T]

	// Observed cell bounds. They only ever grow, even across Clear:
	// over-wide clamping costs a few empty-bucket lookups, never
	// correctness.
	minCellX, minCellY int32
	maxCellX, maxCellY int32
	hasBounds          bool

	scratch sync.Pool
}

// cellKey packs a cell coordinate pair into a single map key.
type cellKey int64

func packCell(x, y int32) cellKey {
	return cellKey(int64(x)<<32 | int64(uint32(y)))
}

// NewSpatialHash2D builds an empty index with the given cell size.
// Cell size should be on the order of a typical entity's extent.
func NewSpatialHash2D[K comparable, T scalar.Real[T]](cellSize T) *SpatialHash2D[K, T] {
	h := &SpatialHash2D[K, T]{
		cellSize: cellSize,
		cells:    make(map[cellKey][]K),
		lookup:   make(map[K]hashEntry[T]),
	}
	h.scratch.New = func() any {
		return make(map[K]struct{}, 32)
	}
	return h
}

// Count returns the number of stored entries.
func (h *SpatialHash2D[K, T]) Count() int {
	return len(h.lookup)
}

// Insert stores (shape, transform, groupMask) under id and registers the
// id in every cell its transformed AABB covers. Re-inserting an existing
// id replaces the previous entry.
func (h *SpatialHash2D[K, T]) Insert(id K, shape geom.Shape[T], transform geom.Transform2D[T], groupMask uint32) {
	if shape == nil {
		panic("quill: insert nil shape")
	}
	if _, exists := h.lookup[id]; exists {
		h.Remove(id)
	}

	aabb := shape.TransformedAABB(transform)
	minX, minY := h.cellCoords(aabb.Min)
	maxX, maxY := h.cellCoords(aabb.Max)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := packCell(x, y)
			h.cells[key] = append(h.cells[key], id)
		}
	}

	h.lookup[id] = hashEntry[T]{shape: shape, transform: transform, aabb: aabb, mask: groupMask}
	h.growBounds(minX, minY, maxX, maxY)
}

// Remove deletes id from the index: from the lookup and from every cell
// its cached AABB covers. O(cells occupied). Unknown ids are a no-op.
func (h *SpatialHash2D[K, T]) Remove(id K) {
	entry, ok := h.lookup[id]
	if !ok {
		return
	}
	minX, minY := h.cellCoords(entry.aabb.Min)
	maxX, maxY := h.cellCoords(entry.aabb.Max)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := packCell(x, y)
			bucket := h.cells[key]
			for i := 0; i < len(bucket); {
				if bucket[i] == id {
					bucket[i] = bucket[len(bucket)-1]
					bucket = bucket[:len(bucket)-1]
					continue
				}
				i++
			}
			if len(bucket) == 0 {
				delete(h.cells, key)
			} else {
				h.cells[key] = bucket
			}
		}
	}
	delete(h.lookup, id)
}

// Clear empties every cell and the id lookup. The observed cell bounds
// are kept.
func (h *SpatialHash2D[K, T]) Clear() {
	clear(h.cells)
	clear(h.lookup)
}

// Retrieve yields the candidates overlapping the given shape/transform,
// excluding id itself. Each candidate appears at most once per query.
// The sequence streams from the live index; do not Insert, Remove or
// Clear while consuming it.
func (h *SpatialHash2D[K, T]) Retrieve(id K, shape geom.Shape[T], transform geom.Transform2D[T], mask uint32) iter.Seq[Candidate[K, T]] {
	aabb := shape.TransformedAABB(transform)
	return func(yield func(Candidate[K, T]) bool) {
		h.query(aabb, mask, &id, yield)
	}
}

// RetrieveAABB yields the candidates overlapping a raw query box.
func (h *SpatialHash2D[K, T]) RetrieveAABB(aabb geom.AABB2D[T], mask uint32) iter.Seq[Candidate[K, T]] {
	return func(yield func(Candidate[K, T]) bool) {
		h.query(aabb, mask, nil, yield)
	}
}

func (h *SpatialHash2D[K, T]) query(aabb geom.AABB2D[T], mask uint32, exclude *K, yield func(Candidate[K, T]) bool) {
	if !h.hasBounds {
		return
	}
	minX, minY := h.cellCoords(aabb.Min)
	maxX, maxY := h.cellCoords(aabb.Max)

	// Clamp to the populated region; everything outside is empty.
	minX = max(minX, h.minCellX)
	minY = max(minY, h.minCellY)
	maxX = min(maxX, h.maxCellX)
	maxY = min(maxY, h.maxCellY)

	seen := h.scratch.Get().(map[K]struct{})
	defer func() {
		clear(seen)
		h.scratch.Put(seen)
	}()

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, id := range h.cells[packCell(x, y)] {
				if exclude != nil && id == *exclude {
					continue
				}
				if _, duplicate := seen[id]; duplicate {
					continue
				}
				seen[id] = struct{}{}

				entry := h.lookup[id]
				if entry.mask&mask == 0 {
					continue
				}
				if !aabb.TestOverlap(entry.aabb) {
					continue
				}
				if !yield(Candidate[K, T]{ID: id, Shape: entry.shape, Transform: entry.transform, Mask: entry.mask}) {
					return
				}
			}
		}
	}
}

func (h *SpatialHash2D[K, T]) cellCoords(position geom.Vec2[T]) (int32, int32) {
	x := int32(math.Floor(position.X.Div(h.cellSize).Float()))
	y := int32(math.Floor(position.Y.Div(h.cellSize).Float()))
	return x, y
}

func (h *SpatialHash2D[K, T]) growBounds(minX, minY, maxX, maxY int32) {
	if !h.hasBounds {
		h.minCellX, h.minCellY = minX, minY
		h.maxCellX, h.maxCellY = maxX, maxY
		h.hasBounds = true
		return
	}
	h.minCellX = min(h.minCellX, minX)
	h.minCellY = min(h.minCellY, minY)
	h.maxCellX = max(h.maxCellX, maxX)
	h.maxCellY = max(h.maxCellY, maxY)
}

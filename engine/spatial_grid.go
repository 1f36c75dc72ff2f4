package engine

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/vmath"
)

var ErrInvalidCellSize = errors.New("engine: cell size must be positive and finite")

// Cell is an integer grid coordinate, floor(position / cellSize) per axis
type Cell struct {
	X, Y int
}

// SpatialGrid is an unbounded uniform grid mapping cells to entity buckets
// Buckets are allocated lazily and dropped by Retain once empty
// An entity is expected in at most one bucket, the one for its last inserted position
type SpatialGrid struct {
	cellSize float64
	buckets  map[Cell][]core.Entity
}

// NewSpatialGrid creates an empty grid, rejecting non-positive cell size
func NewSpatialGrid(cellSize float64) (*SpatialGrid, error) {
	if !vmath.IsFinite(cellSize) || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCellSize, cellSize)
	}
	return &SpatialGrid{
		cellSize: cellSize,
		buckets:  make(map[Cell][]core.Entity),
	}, nil
}

// CellSize returns the cell edge length in world units
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// CellOf maps a world position to its cell
func (g *SpatialGrid) CellOf(pos vmath.Vec2) Cell {
	return Cell{
		X: vmath.FloorDiv(pos.X, g.cellSize),
		Y: vmath.FloorDiv(pos.Y, g.cellSize),
	}
}

// Insert appends e to the bucket of pos. O(1) amortized
func (g *SpatialGrid) Insert(e core.Entity, pos vmath.Vec2) {
	c := g.CellOf(pos)
	g.buckets[c] = append(g.buckets[c], e)
}

// Remove deletes e from the bucket of pos using swap-remove
// Empty buckets are kept until Retain to avoid map churn
func (g *SpatialGrid) Remove(e core.Entity, pos vmath.Vec2) {
	c := g.CellOf(pos)
	bucket, ok := g.buckets[c]
	if !ok {
		return
	}
	for i, other := range bucket {
		if other == e {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = core.Entity{}
			g.buckets[c] = bucket[:last]
			return
		}
	}
}

// Update moves e between buckets, no-op when both positions share a cell
func (g *SpatialGrid) Update(e core.Entity, oldPos, newPos vmath.Vec2) {
	if g.CellOf(oldPos) == g.CellOf(newPos) {
		return
	}
	g.Remove(e, oldPos)
	g.Insert(e, newPos)
}

// Retain drops every entity failing keep from every bucket and deletes empty buckets
func (g *SpatialGrid) Retain(keep func(core.Entity) bool) {
	for c, bucket := range g.buckets {
		n := 0
		for _, e := range bucket {
			if keep(e) {
				bucket[n] = e
				n++
			}
		}
		clear(bucket[n:])
		if n == 0 {
			delete(g.buckets, c)
			continue
		}
		g.buckets[c] = bucket[:n]
	}
}

// Query yields entities in the 3x3 block of cells centered on the cell of pos
// Lazy and restartable; each call re-scans current buckets, order unspecified
func (g *SpatialGrid) Query(pos vmath.Vec2) iter.Seq[core.Entity] {
	return g.queryCells(g.CellOf(pos), 1)
}

// QueryRadius widens the window so every cell within radius of pos is covered
// Never narrower than Query's 3x3 window
func (g *SpatialGrid) QueryRadius(pos vmath.Vec2, radius float64) iter.Seq[core.Entity] {
	span := 1
	if radius > g.cellSize && vmath.IsFinite(radius) {
		span = int(math.Ceil(radius / g.cellSize))
	}
	return g.queryCells(g.CellOf(pos), span)
}

func (g *SpatialGrid) queryCells(center Cell, span int) iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		for dy := -span; dy <= span; dy++ {
			for dx := -span; dx <= span; dx++ {
				c := Cell{X: center.X + dx, Y: center.Y + dy}
				// Re-read length each step, bucket may shrink under a mutating consumer
				for i := 0; i < len(g.buckets[c]); i++ {
					if !yield(g.buckets[c][i]) {
						return
					}
				}
			}
		}
	}
}

// Bucket returns the entities of one cell
// INTERNAL USE ONLY - the slice aliases grid storage
func (g *SpatialGrid) Bucket(c Cell) []core.Entity {
	return g.buckets[c]
}

// Cells yields every non-empty cell with its occupant count
func (g *SpatialGrid) Cells() iter.Seq2[Cell, int] {
	return func(yield func(Cell, int) bool) {
		for c, bucket := range g.buckets {
			if len(bucket) == 0 {
				continue
			}
			if !yield(c, len(bucket)) {
				return
			}
		}
	}
}

// CellCount returns the number of allocated buckets, including empty ones not yet retained
func (g *SpatialGrid) CellCount() int {
	return len(g.buckets)
}

// Len returns the total number of bucket entries
func (g *SpatialGrid) Len() int {
	n := 0
	for _, bucket := range g.buckets {
		n += len(bucket)
	}
	return n
}

// Clear removes all entities and buckets
func (g *SpatialGrid) Clear() {
	clear(g.buckets)
}

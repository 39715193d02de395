package dcel

import (
	"math"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// cellKey is the integer coordinate of a grid cell
type cellKey struct {
	X, Y int
}

// faceGrid is a uniform hashed grid over face bounding boxes. It answers
// which faces may enclose a point; callers still run the exact test.
type faceGrid struct {
	cellSize float64
	cells    [][]int
	cellMask int
	// faces covering more cells than the grid holds, returned by every query
	large  []int
	bounds []geometry.AABB
}

// newFaceGrid sizes the grid from the extent of all boxes so that the
// average cell holds few faces.
func newFaceGrid(bounds []geometry.AABB) *faceGrid {
	numCells := nextPowerOfTwo(2 * len(bounds))

	extent := geometry.EmptyAABB()
	for _, b := range bounds {
		extent = extent.Union(b)
	}
	cellSize := 1.0
	if !extent.IsEmpty() {
		size := extent.Size()
		side := math.Ceil(math.Sqrt(float64(len(bounds))))
		if s := max(size.X(), size.Y()) / side; s > 0 && !math.IsInf(s, 0) {
			cellSize = s
		}
	}

	fg := &faceGrid{
		cellSize: cellSize,
		cells:    make([][]int, numCells),
		cellMask: numCells - 1,
		bounds:   bounds,
	}
	for i, b := range bounds {
		fg.insert(i, b)
	}
	return fg
}

// nextPowerOfTwo rounds n up to a power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// insert registers face in every cell its box overlaps
func (fg *faceGrid) insert(face int, box geometry.AABB) {
	if box.IsEmpty() {
		return
	}
	minCell := fg.worldToCell(box.Min)
	maxCell := fg.worldToCell(box.Max)

	span := (maxCell.X - minCell.X + 1) * (maxCell.Y - minCell.Y + 1)
	if span > len(fg.cells) || span <= 0 {
		fg.large = append(fg.large, face)
		return
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := fg.hashCell(cellKey{x, y})
			cell := fg.cells[cellIdx]
			// colliding cells of the same box share a slot. Faces are inserted
			// one at a time, so a repeat is always the slot's last entry.
			if n := len(cell); n > 0 && cell[n-1] == face {
				continue
			}
			fg.cells[cellIdx] = append(cell, face)
		}
	}
}

// candidates calls fn for each face whose box contains point, each face at
// most once.
func (fg *faceGrid) candidates(point mgl64.Vec2, fn func(face int)) {
	for _, face := range fg.large {
		if fg.bounds[face].ContainsPoint(point) {
			fn(face)
		}
	}
	for _, face := range fg.cells[fg.hashCell(fg.worldToCell(point))] {
		if fg.bounds[face].ContainsPoint(point) {
			fn(face)
		}
	}
}

// worldToCell converts a position into cell coordinates
func (fg *faceGrid) worldToCell(pos mgl64.Vec2) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / fg.cellSize)),
		Y: int(math.Floor(pos.Y() / fg.cellSize)),
	}
}

// hashCell maps a cell onto a slot of the array
func (fg *faceGrid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & fg.cellMask
}

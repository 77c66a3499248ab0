package physics

import (
	"math"

	"github.com/Versifine/stride/internal/geom"
)

// BlockStore is a grid of unit cells; cell (x, y, z) spans [x, x+1).
type BlockStore interface {
	IsSolid(x, y, z int) bool
}

type AABB struct {
	Min geom.Vec3
	Max geom.Vec3
}

func (a AABB) Offset(d geom.Vec3) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

func CollidesWithBlock(aabb AABB, blockStore BlockStore) bool {
	if blockStore == nil {
		return false
	}

	minX, maxX := floorForMin(aabb.Min[0]), floorForMax(aabb.Max[0])
	minY, maxY := floorForMin(aabb.Min[1]), floorForMax(aabb.Max[1])
	minZ, maxZ := floorForMin(aabb.Min[2]), floorForMax(aabb.Max[2])

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				if !blockStore.IsSolid(x, y, z) {
					continue
				}
				block := AABB{
					Min: geom.Vec3{float64(x), float64(y), float64(z)},
					Max: geom.Vec3{float64(x + 1), float64(y + 1), float64(z + 1)},
				}
				if intersects(aabb, block) {
					return true
				}
			}
		}
	}

	return false
}

// ResolveMovement sweeps the capsule by delta one axis at a time, Y first,
// and returns the reachable position with the sides that blocked it.
func ResolveMovement(shape Capsule, pos, delta geom.Vec3, blockStore BlockStore) (geom.Vec3, CollisionFlags) {
	newPos := pos
	var flags CollisionFlags

	for _, axis := range [3]int{1, 0, 2} {
		allowed := sweepAxis(shape.Bounds(newPos), axis, delta[axis], blockStore)
		newPos[axis] += allowed
		if nearlyEqual(allowed, delta[axis]) {
			continue
		}
		switch {
		case axis != 1:
			flags |= CollidedSides
		case delta[axis] < 0:
			flags |= CollidedBelow
		default:
			flags |= CollidedAbove
		}
	}

	return newPos, flags
}

// sweepAxis returns how far the box may travel along axis, at most delta.
func sweepAxis(aabb AABB, axis int, delta float64, blockStore BlockStore) float64 {
	if blockStore == nil || nearlyZero(delta) {
		return delta
	}

	o1, o2 := otherAxes(axis)
	min1, max1 := floorForMin(aabb.Min[o1]), floorForMax(aabb.Max[o1])
	min2, max2 := floorForMin(aabb.Min[o2]), floorForMax(aabb.Max[o2])

	solidLayer := func(c int) bool {
		for i := min1; i <= max1; i++ {
			for j := min2; j <= max2; j++ {
				var cell [3]int
				cell[axis], cell[o1], cell[o2] = c, i, j
				if blockStore.IsSolid(cell[0], cell[1], cell[2]) {
					return true
				}
			}
		}
		return false
	}

	allowed := delta
	if delta > 0 {
		start := int(math.Floor(aabb.Max[axis] + CollisionAxisTolerance))
		end := int(math.Floor(aabb.Max[axis] + delta))
		for c := start; c <= end; c++ {
			if solidLayer(c) {
				allowed = math.Min(allowed, float64(c)-aabb.Max[axis])
				break
			}
		}
		return math.Max(allowed, 0)
	}

	start := int(math.Floor(aabb.Min[axis] - CollisionAxisTolerance))
	end := int(math.Floor(aabb.Min[axis] + delta))
	for c := start; c >= end; c-- {
		if solidLayer(c) {
			allowed = math.Max(allowed, float64(c+1)-aabb.Min[axis])
			break
		}
	}
	return math.Min(allowed, 0)
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func floorForMin(v float64) int {
	return int(math.Floor(v + CollisionAxisTolerance))
}

func floorForMax(v float64) int {
	return int(math.Floor(v - CollisionAxisTolerance))
}

func intersects(a, b AABB) bool {
	return a.Min[0] < b.Max[0] &&
		a.Max[0] > b.Min[0] &&
		a.Min[1] < b.Max[1] &&
		a.Max[1] > b.Min[1] &&
		a.Min[2] < b.Max[2] &&
		a.Max[2] > b.Min[2]
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionAxisTolerance
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= CollisionAxisTolerance
}

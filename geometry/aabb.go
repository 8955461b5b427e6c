package geometry

import "github.com/o0olele/villawalk/math32"

// AABB is axis-aligned bounding box
type AABB struct {
	Min math32.Vector3 `json:"min" yaml:"min"`
	Max math32.Vector3 `json:"max" yaml:"max"`
}

// NewAABB builds a box from its per-axis ranges.
func NewAABB(minX, maxX, minY, maxY, minZ, maxZ float32) AABB {
	return AABB{
		Min: math32.Vector3{X: minX, Y: minY, Z: minZ},
		Max: math32.Vector3{X: maxX, Y: maxY, Z: maxZ},
	}
}

// Contains checks if the point is inside the AABB
func (aabb *AABB) Contains(point math32.Vector3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// Size returns the size of the AABB
func (aabb *AABB) Size() math32.Vector3 {
	return aabb.Max.Sub(aabb.Min)
}

// Lerp maps per-axis fractions in [0,1] to a point in the box.
func (aabb *AABB) Lerp(tx, ty, tz float32) math32.Vector3 {
	size := aabb.Size()
	return math32.Vector3{
		X: aabb.Min.X + tx*size.X,
		Y: aabb.Min.Y + ty*size.Y,
		Z: aabb.Min.Z + tz*size.Z,
	}
}


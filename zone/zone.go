package zone

// Zone is an axis-aligned rectangle on the XZ ground plane.
type Zone struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	MinX float32 `json:"minX" yaml:"minX"`
	MaxX float32 `json:"maxX" yaml:"maxX"`
	MinZ float32 `json:"minZ" yaml:"minZ"`
	MaxZ float32 `json:"maxZ" yaml:"maxZ"`
}

// Contains reports whether (x, z) is strictly inside the zone. Points on an
// edge are outside.
func (z Zone) Contains(x, zz float32) bool {
	return x > z.MinX && x < z.MaxX && zz > z.MinZ && zz < z.MaxZ
}

// Outside reports whether (x, z) lies beyond the zone's closed extent. Points
// on an edge are inside.
func (z Zone) Outside(x, zz float32) bool {
	return x > z.MaxX || x < z.MinX || zz > z.MaxZ || zz < z.MinZ
}

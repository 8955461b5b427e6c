package zone

// Set is an immutable list of no-go zones plus the walkable boundary. A Set
// is built once and shared read-only by every agent that walks the same
// ground.
type Set struct {
	zones    []Zone
	boundary Zone
}

// NewSet copies zones so later changes to the caller's slice cannot leak in.
func NewSet(boundary Zone, zones ...Zone) *Set {
	owned := make([]Zone, len(zones))
	copy(owned, zones)
	return &Set{zones: owned, boundary: boundary}
}

// Contains reports whether (x, z) is blocked: strictly inside any zone, or
// outside the boundary.
func (s *Set) Contains(x, z float32) bool {
	for _, zn := range s.zones {
		if zn.Contains(x, z) {
			return true
		}
	}
	return s.boundary.Outside(x, z)
}

// Blocking returns the first zone containing (x, z), or false when the point
// is clear of every zone. The boundary is not considered.
func (s *Set) Blocking(x, z float32) (Zone, bool) {
	for _, zn := range s.zones {
		if zn.Contains(x, z) {
			return zn, true
		}
	}
	return Zone{}, false
}

// Zones returns a copy of the obstacle zones.
func (s *Set) Zones() []Zone {
	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// Boundary returns the walkable limit.
func (s *Set) Boundary() Zone {
	return s.boundary
}

// Len returns the number of obstacle zones.
func (s *Set) Len() int {
	return len(s.zones)
}

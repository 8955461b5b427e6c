package zone

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Bound converts the zone to a planar bound with X as longitude and Z as
// latitude.
func (z Zone) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(z.MinX), float64(z.MinZ)},
		Max: orb.Point{float64(z.MaxX), float64(z.MaxZ)},
	}
}

// GeoJSON exports the set as a feature collection: one polygon per obstacle
// zone plus the boundary, tagged with "name" and "role".
func (s *Set) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	b := s.Boundary()
	boundary := geojson.NewFeature(b.Bound().ToPolygon())
	boundary.Properties["name"] = b.Name
	boundary.Properties["role"] = "boundary"
	fc.Append(boundary)

	for _, zn := range s.Zones() {
		f := geojson.NewFeature(zn.Bound().ToPolygon())
		f.Properties["name"] = zn.Name
		f.Properties["role"] = "obstacle"
		fc.Append(f)
	}
	return fc
}

package fixture

import "github.com/paulmach/orb"

// continentalUS roughly covers the lower 48 states.
var continentalUS = orb.Bound{
	Min: orb.Point{-124.7, 24.5},
	Max: orb.Point{-66.9, 49.4},
}

// VenuePoint returns a uniform point inside the venue bounds.
func (g *Generator) VenuePoint() (lat, lon float64) {
	b := g.venueBounds
	p := orb.Point{
		b.Min.Lon() + g.rng.Float64()*(b.Max.Lon()-b.Min.Lon()),
		b.Min.Lat() + g.rng.Float64()*(b.Max.Lat()-b.Min.Lat()),
	}

	return p.Lat(), p.Lon()
}

// boundsFromConfig reads [minLon, minLat, maxLon, maxLat]. Anything else yields the zero bound.
func boundsFromConfig(values []float64) orb.Bound {
	if len(values) != 4 {
		return orb.Bound{}
	}

	return orb.MultiPoint{
		{values[0], values[1]},
		{values[2], values[3]},
	}.Bound()
}

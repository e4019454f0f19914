package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Report whether both components are finite numbers.
// Range checks are left to the timezone lookup.
func (c Coordinates) IsFinite() bool {
	return !math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0) &&
		!math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lon, c.Lat)
}

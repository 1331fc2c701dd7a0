package kernel

import (
	"errors"
	"fmt"
	"math"

	"agrikart/internal/pkg/errs"
	"agrikart/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate. Coordinates must be created via the
// NewCoordinate constructor to guarantee their bounds.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate represents a geographic position in decimal degrees.
// Coordinate is an immutable value object whose latitude and longitude are
// guaranteed to be within valid bounds. The zero value is invalid and fails
// validation; owners that may lack a position hold a *Coordinate instead.
//
// Example:
//
//	farm, err := kernel.NewCoordinate(12.97, 77.59)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(farm) // Output: Coordinate(12.970000,77.590000)
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate with the given latitude and longitude.
// Latitude must lie in [LatitudeMin..LatitudeMax] and longitude in
// [LongitudeMin..LongitudeMax]; both validation failures are reported joined.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	coordinate := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coordinate.setLatitude(latitude),
		coordinate.setLongitude(longitude),
	); err != nil {
		return Coordinate{}, err
	}

	return coordinate, nil
}

// Validate checks that the Coordinate was built via NewCoordinate.
// Returns ErrCoordinateIsNotConstructed for the zero value.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer for debugging and logging.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%f,%f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinates for exact equality.
// Both operands must be properly constructed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// DistanceKm computes the great-circle distance in kilometers between two
// coordinates using the haversine formula on a sphere of radius EarthRadiusKm.
// The result is symmetric and zero for coincident points. Both operands must
// be properly constructed.
func (c Coordinate) DistanceKm(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(c.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude - c.latitude)
	dLon := toRadians(other.longitude - c.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	central := 2 * math.Asin(math.Sqrt(a))

	return central * EarthRadiusKm, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that private setters can self-encapsulate validation
// during object construction.
func (c *Coordinate) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (c *Coordinate) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the southernmost valid latitude in degrees.
	GeoMinLatitude = -90.0
	// GeoMaxLatitude is the northernmost valid latitude in degrees.
	GeoMaxLatitude = 90.0
	// GeoMinLongitude is the westernmost valid longitude in degrees.
	GeoMinLongitude = -180.0
	// GeoMaxLongitude is the easternmost valid longitude in degrees.
	GeoMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
// GeoPoints must be created via NewGeoPoint to guarantee valid coordinates.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is a validated WGS84 coordinate pair. It records where a driver
// was when a tracking event was appended to a consignment.
//
// GeoPoint is an immutable value object: the zero value is invalid and
// construction fails for out-of-range coordinates.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates.
// Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoMinLatitude || latitude > GeoMaxLatitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%f is not between %0.f and %.0f", latitude, GeoMinLatitude, GeoMaxLatitude))
	}
	if longitude < GeoMinLongitude || longitude > GeoMaxLongitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%f is not between %.0f and %.0f", longitude, GeoMinLongitude, GeoMaxLongitude))
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points carry identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String renders the point as "lat,long" for logs and event payloads.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%f,%f", p.latitude, p.longitude)
}

// Validate returns ErrGeoPointIsNotConstructed for zero-value points.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

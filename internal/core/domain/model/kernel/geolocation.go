package kernel

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Geolocation is a value object for GPS coordinates captured in the field:
// the technician's position when accepting an order, or the capture point
// attached to a status-history entry. It is informational only and never
// consulted by the state machine.
//
// The zero value (0, 0) is a valid coordinate pair (Gulf of Guinea), so
// presence is modeled with pointers at the call sites, not with a guard.
//
// Example:
//
//	geo, err := kernel.NewGeolocation(-6.2088, 106.8456, 12.5)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type Geolocation struct {
	latitude  float64
	longitude float64
	accuracy  float64
}

// NewGeolocation creates a Geolocation with validated coordinates.
// Latitude must be within [-90, 90], longitude within [-180, 180], and
// accuracy (meters) must not be negative.
func NewGeolocation(latitude, longitude, accuracy float64) (Geolocation, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	if accuracy < 0 {
		return Geolocation{}, errs.NewValueIsInvalidErrorWithCause(
			"accuracy",
			fmt.Errorf("%f is not greater than or equal to 0", accuracy),
		)
	}

	return Geolocation{
		latitude:  latitude,
		longitude: longitude,
		accuracy:  accuracy,
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (g Geolocation) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in decimal degrees.
func (g Geolocation) Longitude() float64 {
	return g.longitude
}

// Accuracy returns the reported accuracy radius in meters.
func (g Geolocation) Accuracy() float64 {
	return g.accuracy
}

// Validate re-checks the coordinate ranges. Used when a Geolocation was
// reconstructed from persistence or an external payload rather than built
// through NewGeolocation.
func (g Geolocation) Validate() error {
	_, err := NewGeolocation(g.latitude, g.longitude, g.accuracy)
	return err
}

// IsEqual reports whether two geolocations carry identical coordinates and accuracy.
func (g Geolocation) IsEqual(other Geolocation) bool {
	return g.latitude == other.latitude &&
		g.longitude == other.longitude &&
		g.accuracy == other.accuracy
}

// String formats the coordinates for logs and history display.
func (g Geolocation) String() string {
	return fmt.Sprintf("(%f, %f) ±%.1fm", g.latitude, g.longitude, g.accuracy)
}

// Package geo resolves the user's position and approximates distances
// between campus points.
package geo

import (
	"context"
	"math"
	"net/url"
	"strconv"

	"github.com/erazemk/kampus/internal/model"
)

// MetersPerDegree converts a planar distance in degrees to meters.
const MetersPerDegree = 111000

// DefaultFallback is used when no position is available.
var DefaultFallback = model.Coordinates{Lat: 40.7128, Lng: -74.0060}

// Distance approximates the distance in meters between two coordinates as
// the planar Euclidean distance in degrees scaled by MetersPerDegree.
// It ignores the Earth's curvature and longitude convergence, so it is
// only usable across the few hundred meters of a campus.
func Distance(a, b model.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * MetersPerDegree
}

// Locator reports the caller's position, if one is available.
type Locator interface {
	Locate(ctx context.Context) (model.Coordinates, bool)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (model.Coordinates, bool)

func (f LocatorFunc) Locate(ctx context.Context) (model.Coordinates, bool) { return f(ctx) }

// Fixed always reports the same position.
type Fixed model.Coordinates

func (f Fixed) Locate(context.Context) (model.Coordinates, bool) {
	return model.Coordinates(f), true
}

// None never reports a position, like a denied permission prompt.
var None Locator = LocatorFunc(func(context.Context) (model.Coordinates, bool) {
	return model.Coordinates{}, false
})

// FromQuery reads lat and lng from query parameters. Missing, malformed or
// out-of-range values make the locator report no position.
func FromQuery(v url.Values) Locator {
	lat, errLat := strconv.ParseFloat(v.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(v.Get("lng"), 64)
	if errLat != nil || errLng != nil || !Valid(model.Coordinates{Lat: lat, Lng: lng}) {
		return None
	}
	return Fixed{Lat: lat, Lng: lng}
}

// Valid reports whether c lies within latitude/longitude bounds.
func Valid(c model.Coordinates) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Resolve asks l for a position and silently substitutes fallback when it
// has none. A nil locator counts as having none.
func Resolve(ctx context.Context, l Locator, fallback model.Coordinates) model.Coordinates {
	if l == nil {
		return fallback
	}
	if c, ok := l.Locate(ctx); ok {
		return c
	}
	return fallback
}

// Package geo provides coordinate offset math and bounding box construction.
package geo

import (
	"fmt"
	"math"
)

// earthRadius is the spherical-Earth radius in meters (WGS84 equatorial).
const earthRadius = 6378137

// boxRadius is the half-side of the query bounding box in meters.
const boxRadius = 5000

// Coordinate is a geographic point in EPSG:4326 degrees.
type Coordinate struct {
	Lon float64
	Lat float64
}

// Offset shifts a coordinate by dn meters northward and de meters eastward
// using a spherical-Earth approximation. The cosine term uses the original
// latitude, which is accurate enough at the kilometer scale used here.
func Offset(c Coordinate, dn, de float64) Coordinate {
	dLat := dn / earthRadius
	dLon := de / (earthRadius * math.Cos(math.Pi*c.Lat/180))

	return Coordinate{
		Lon: c.Lon + dLon*180/math.Pi,
		Lat: c.Lat + dLat*180/math.Pi,
	}
}

// BoundingBox is a geographic rectangle in EPSG:4326 degrees.
type BoundingBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// BoundingBoxAround computes a square box with a 5 km radius around c.
func BoundingBoxAround(c Coordinate) BoundingBox {
	sw := Offset(c, -boxRadius, -boxRadius)
	ne := Offset(c, boxRadius, boxRadius)

	return BoundingBox{
		MinLat: sw.Lat,
		MinLon: sw.Lon,
		MaxLat: ne.Lat,
		MaxLon: ne.Lon,
	}
}

// String renders the box in WMS 1.3.0 axis order for EPSG:4326
// (lat,lon,lat,lon). The order matters for wire compatibility.
func (b BoundingBox) String() string {
	return fmt.Sprintf("%f,%f,%f,%f", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

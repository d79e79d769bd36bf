package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enjikaka/cams/internal/geo"
)

func TestOffset_Equator(t *testing.T) {
	// 5000 m / 6378137 m = 7.83928e-4 rad = 0.0449158 degrees.
	// At the equator a meter east is worth the same as a meter north.
	p := geo.Offset(geo.Coordinate{Lon: 0, Lat: 0}, 5000, 5000)

	assert.InDelta(t, 0.0449158, p.Lat, 1e-5)
	assert.InDelta(t, 0.0449158, p.Lon, 1e-5)
}

func TestOffset_HighLatitude(t *testing.T) {
	// At 60°N cos(lat) = 0.5, so a meter east covers twice the longitude.
	p := geo.Offset(geo.Coordinate{Lon: 18.06, Lat: 60}, 5000, 5000)

	assert.InDelta(t, 60+0.0449158, p.Lat, 1e-5)
	assert.InDelta(t, 18.06+0.0898315, p.Lon, 1e-5)
}

func TestOffset_NegativeOffsets(t *testing.T) {
	p := geo.Offset(geo.Coordinate{Lon: 4.9, Lat: 52.37}, -5000, -5000)

	assert.Less(t, p.Lat, 52.37)
	assert.Less(t, p.Lon, 4.9)
}

func TestOffset_UsesOriginalLatitudeForCosine(t *testing.T) {
	// Moving north then east must scale longitude by the original latitude,
	// not the shifted one. Going +5000 north from 59.99° and from 60.01°
	// gives slightly different longitude deltas even though both end up
	// around 60.03°.
	a := geo.Offset(geo.Coordinate{Lon: 0, Lat: 59.99}, 5000, 5000)
	b := geo.Offset(geo.Coordinate{Lon: 0, Lat: 60.01}, 5000, 5000)

	assert.Less(t, a.Lon, b.Lon)
}

func TestBoundingBoxAround(t *testing.T) {
	center := geo.Coordinate{Lon: 4.895168, Lat: 52.370216}
	box := geo.BoundingBoxAround(center)

	sw := geo.Offset(center, -5000, -5000)
	ne := geo.Offset(center, 5000, 5000)

	assert.Equal(t, sw.Lat, box.MinLat)
	assert.Equal(t, sw.Lon, box.MinLon)
	assert.Equal(t, ne.Lat, box.MaxLat)
	assert.Equal(t, ne.Lon, box.MaxLon)

	// Box is centered on the query point.
	assert.InDelta(t, center.Lat, (box.MinLat+box.MaxLat)/2, 1e-9)
	assert.InDelta(t, center.Lon, (box.MinLon+box.MaxLon)/2, 1e-9)
}

func TestBoundingBox_WireOrder(t *testing.T) {
	// WMS 1.3.0 with EPSG:4326 expects lat,lon,lat,lon.
	box := geo.BoundingBox{MinLat: 52.3, MinLon: 4.8, MaxLat: 52.4, MaxLon: 4.9}

	assert.Equal(t, "52.300000,4.800000,52.400000,4.900000", box.String())
}

package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	markerTooltip = "Your Listing"
	markerPopup   = "Selected listing"
)

// MapView is everything the client needs to draw the listing map: a center
// and zoom level for the viewport plus a GeoJSON collection holding the
// single listing marker.
type MapView struct {
	Center    []float64                  `json:"center"`
	ZoomLevel int                        `json:"zoom_level"`
	Markers   *geojson.FeatureCollection `json:"markers"`
}

// NewListingMap builds the map view for a listing at the given coordinates.
// GeoJSON positions are (lon, lat); the center is kept (lat, lon) to match
// the city table.
func NewListingMap(latitude, longitude float64, zoomLevel int) *MapView {
	marker := geojson.NewFeature(orb.Point{longitude, latitude})
	marker.Properties["tooltip"] = markerTooltip
	marker.Properties["popup"] = markerPopup

	fc := geojson.NewFeatureCollection()
	fc.Append(marker)

	return &MapView{
		Center:    []float64{latitude, longitude},
		ZoomLevel: zoomLevel,
		Markers:   fc,
	}
}

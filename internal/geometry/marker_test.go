package geometry

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListingMap(t *testing.T) {
	view := NewListingMap(48.8566, 2.3522, 13)

	assert.Equal(t, []float64{48.8566, 2.3522}, view.Center)
	assert.Equal(t, 13, view.ZoomLevel)

	require.Len(t, view.Markers.Features, 1)
	marker := view.Markers.Features[0]

	// GeoJSON points are (lon, lat).
	point, ok := marker.Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, 2.3522, point.Lon())
	assert.Equal(t, 48.8566, point.Lat())

	assert.Equal(t, "Your Listing", marker.Properties["tooltip"])
	assert.Equal(t, "Selected listing", marker.Properties["popup"])
}

func TestListingMapMarshalsAsGeoJSON(t *testing.T) {
	view := NewListingMap(53.3498, -6.2603, 13)

	data, err := json.Marshal(view.Markers)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "FeatureCollection", decoded["type"])
}

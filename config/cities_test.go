package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCityNames(t *testing.T) {
	names := GetCityNames()

	assert.Len(t, names, 15)
	assert.Equal(t, "Paris", names[0], "Paris must stay the first city; its index is baked into the model")
	assert.Equal(t, "Brussels", names[len(names)-1])
}

func TestGetCityByName(t *testing.T) {
	tests := []struct {
		name           string
		city           string
		expectedCenter []float64
		expectNil      bool
	}{
		{
			name:           "First city",
			city:           "Paris",
			expectedCenter: []float64{48.8566, 2.3522},
		},
		{
			name:           "City with negative longitude",
			city:           "Dublin",
			expectedCenter: []float64{53.3498, -6.2603},
		},
		{
			name:           "Last city",
			city:           "Brussels",
			expectedCenter: []float64{50.8503, 4.3517},
		},
		{
			name:      "Unknown city",
			city:      "Utrecht",
			expectNil: true,
		},
		{
			name:      "Lookup is case sensitive",
			city:      "paris",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := GetCityByName(tt.city)

			if tt.expectNil {
				assert.Nil(t, city)
				return
			}

			assert.NotNil(t, city)
			assert.Equal(t, tt.city, city.Name)
			assert.InDelta(t, tt.expectedCenter[0], city.Center[0], 0.0001)
			assert.InDelta(t, tt.expectedCenter[1], city.Center[1], 0.0001)
			assert.Equal(t, 13, city.ZoomLevel)
		})
	}
}

func TestCityIndex(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		expected int
	}{
		{
			name:     "Paris is index zero",
			city:     "Paris",
			expected: 0,
		},
		{
			name:     "Amsterdam",
			city:     "Amsterdam",
			expected: 2,
		},
		{
			name:     "Istanbul",
			city:     "Istanbul",
			expected: 9,
		},
		{
			name:     "Brussels is the last index",
			city:     "Brussels",
			expected: 14,
		},
		{
			name:     "Unknown city",
			city:     "Utrecht",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CityIndex(tt.city))
		})
	}
}

func TestCityIndexMatchesTableOrder(t *testing.T) {
	for i, city := range SupportedCities {
		assert.Equal(t, i, CityIndex(city.Name))
	}
}

func TestRoomTypeIndex(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected int
	}{
		{
			name:     "Entire home",
			label:    "Entire home/apt",
			expected: 0,
		},
		{
			name:     "Private room",
			label:    "Private room",
			expected: 1,
		},
		{
			name:     "Shared room",
			label:    "Shared room",
			expected: 2,
		},
		{
			name:     "Unknown label",
			label:    "Hotel room",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoomTypeIndex(tt.label))
		})
	}
}

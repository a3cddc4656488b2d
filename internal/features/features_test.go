package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomrate/server/internal/models"
)

func parisForm() models.FormState {
	return models.FormState{
		City:              "Paris",
		Latitude:          48.8566,
		Longitude:         2.3522,
		RoomType:          "Entire home/apt",
		MinimumNights:     1,
		NumberOfReviews:   50,
		ReviewsPerMonth:   0.0,
		HostListingsCount: 1,
		Availability365:   200,
		ReviewsLTM:        0,
	}
}

func TestFeatureNameOrder(t *testing.T) {
	expected := []string{
		"latitude",
		"longitude",
		"room_type",
		"minimum_nights",
		"number_of_reviews",
		"reviews_per_month",
		"calculated_host_listings_count",
		"availability_365",
		"number_of_reviews_ltm",
		"city",
	}
	assert.Equal(t, expected, FeatureNames,
		"feature order is part of the artifact contract and must never change")
}

func TestBuildParisExample(t *testing.T) {
	vector, err := Build(parisForm())

	require.NoError(t, err)
	assert.Equal(t, []float64{48.8566, 2.3522, 0, 1, 50, 0.0, 1, 200, 0, 0}, vector)
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build(parisForm())
	require.NoError(t, err)

	second, err := Build(parisForm())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildEncodesCategoricals(t *testing.T) {
	tests := []struct {
		name             string
		city             string
		roomType         string
		expectedRoomType float64
		expectedCity     float64
	}{
		{
			name:             "Private room in Rome",
			city:             "Rome",
			roomType:         "Private room",
			expectedRoomType: 1,
			expectedCity:     1,
		},
		{
			name:             "Shared room in Brussels",
			city:             "Brussels",
			roomType:         "Shared room",
			expectedRoomType: 2,
			expectedCity:     14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := parisForm()
			form.City = tt.city
			form.RoomType = tt.roomType

			vector, err := Build(form)

			require.NoError(t, err)
			require.Len(t, vector, len(FeatureNames))
			assert.Equal(t, tt.expectedRoomType, vector[2])
			assert.Equal(t, tt.expectedCity, vector[9])
		})
	}
}

func TestBuildRejectsUnknownValues(t *testing.T) {
	form := parisForm()
	form.City = "Atlantis"
	_, err := Build(form)
	assert.Error(t, err)

	form = parisForm()
	form.RoomType = "Hotel room"
	_, err = Build(form)
	assert.Error(t, err)
}

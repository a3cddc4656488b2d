package features

import (
	"fmt"

	"roomrate/server/config"
	"roomrate/server/internal/models"
)

// FeatureNames lists the model's input features in training order. The
// scaler and model were fitted against exactly this order; reordering it
// corrupts predictions without any error being raised downstream.
var FeatureNames = []string{
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

// Build encodes a form state into the model's feature vector. Categorical
// fields (room type, city) become their table indices; numeric fields are
// copied verbatim. The result is always len(FeatureNames) long.
func Build(form models.FormState) ([]float64, error) {
	roomType := config.RoomTypeIndex(form.RoomType)
	if roomType < 0 {
		return nil, fmt.Errorf("unknown room type: %q", form.RoomType)
	}
	cityIdx := config.CityIndex(form.City)
	if cityIdx < 0 {
		return nil, fmt.Errorf("unknown city: %q", form.City)
	}

	return []float64{
		form.Latitude,
		form.Longitude,
		float64(roomType),
		float64(form.MinimumNights),
		float64(form.NumberOfReviews),
		form.ReviewsPerMonth,
		float64(form.HostListingsCount),
		float64(form.Availability365),
		float64(form.ReviewsLTM),
		float64(cityIdx),
	}, nil
}

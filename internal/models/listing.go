package models

import "roomrate/server/internal/geometry"

// FormState holds the resolved values of every listing input for one
// session. Latitude and longitude start out as the selected city's defaults
// and track manual edits until the next city change; LastSeenCity records
// which city those defaults came from.
type FormState struct {
	City              string  `json:"city"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	RoomType          string  `json:"room_type"`
	MinimumNights     int     `json:"minimum_nights"`
	NumberOfReviews   int     `json:"number_of_reviews"`
	ReviewsPerMonth   float64 `json:"reviews_per_month"`
	HostListingsCount int     `json:"host_listings_count"`
	Availability365   int     `json:"availability_365"`
	ReviewsLTM        int     `json:"reviews_ltm"`

	LastSeenCity string `json:"-"`
	// CoordsSet is false until the reactive default rule has run once
	CoordsSet bool `json:"-"`
}

// ListingInput is one render cycle's worth of widget values as submitted by
// the client. Latitude and longitude are pointers so that "not edited this
// cycle" is distinguishable from an explicit value.
type ListingInput struct {
	City              string   `json:"city" binding:"required"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	RoomType          string   `json:"room_type" binding:"required"`
	MinimumNights     int      `json:"minimum_nights"`
	NumberOfReviews   int      `json:"number_of_reviews"`
	ReviewsPerMonth   float64  `json:"reviews_per_month"`
	HostListingsCount int      `json:"host_listings_count"`
	Availability365   int      `json:"availability_365"`
	ReviewsLTM        int      `json:"reviews_ltm"`
	ShowImportances   bool     `json:"show_importances"`
}

// FeatureImportance is one (feature, weight) pair from the model, reported
// with its raw weight.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// PredictionResponse is the outcome of one full render cycle.
type PredictionResponse struct {
	Form               FormState           `json:"form"`
	Price              float64             `json:"price"`
	PriceFormatted     string              `json:"price_formatted"`
	FeatureImportances []FeatureImportance `json:"feature_importances,omitempty"`
	Map                *geometry.MapView   `json:"map"`
}

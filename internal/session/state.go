package session

import (
	"math"

	"roomrate/server/config"
	"roomrate/server/internal/models"
)

// Input field bounds. These mirror the ranges of the form widgets; values
// outside a range are clamped rather than rejected.
const (
	MinNightsLow, MinNightsHigh       = 1, 30
	ReviewsLow, ReviewsHigh           = 0, 500
	HostListingsLow, HostListingsHigh = 1, 10
	AvailabilityLow, AvailabilityHigh = 0, 365
	ReviewsLTMLow, ReviewsLTMHigh     = 0, 500
)

// Apply folds one render cycle's input into the session's form state.
//
// Latitude and longitude follow the city selection by default but stay
// editable: when the city differs from the one last observed (including the
// very first cycle), both are reset to the city's stored defaults and any
// submitted values are ignored for that cycle. When the city is unchanged,
// submitted values are taken verbatim and absent values leave the previous
// ones in place. Switching away from a city and back discards edits made
// before the round trip; that matches the widget behavior this API fronts.
func Apply(form *models.FormState, in models.ListingInput) {
	form.City = in.City
	form.RoomType = in.RoomType
	form.MinimumNights = clampInt(in.MinimumNights, MinNightsLow, MinNightsHigh)
	form.NumberOfReviews = clampInt(in.NumberOfReviews, ReviewsLow, ReviewsHigh)
	form.ReviewsPerMonth = math.Max(in.ReviewsPerMonth, 0)
	form.HostListingsCount = clampInt(in.HostListingsCount, HostListingsLow, HostListingsHigh)
	form.Availability365 = clampInt(in.Availability365, AvailabilityLow, AvailabilityHigh)
	form.ReviewsLTM = clampInt(in.ReviewsLTM, ReviewsLTMLow, ReviewsLTMHigh)

	if form.LastSeenCity == "" || !form.CoordsSet || form.LastSeenCity != in.City {
		city := config.GetCityByName(in.City)
		form.Latitude = city.Center[0]
		form.Longitude = city.Center[1]
		form.CoordsSet = true
		form.LastSeenCity = in.City
		return
	}

	if in.Latitude != nil {
		form.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		form.Longitude = *in.Longitude
	}
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

package models

// RidePriceRequest represents a fare quote request. The camelCase keys are
// the published wire contract for this endpoint. Pickup, destination and
// surgeMultiplier are required; the remaining factors default to 1.0 when
// omitted.
type RidePriceRequest struct {
	Pickup          *Coordinate `json:"pickup"`
	Destination     *Coordinate `json:"destination"`
	SurgeMultiplier *float64    `json:"surgeMultiplier"`
	TrafficFactor   *float64    `json:"trafficFactor,omitempty"`
	WeatherFactor   *float64    `json:"weatherFactor,omitempty"`
	TimeFactor      *float64    `json:"timeFactor,omitempty"`
}

// RidePriceResponse is the exact wire shape of a successful fare quote.
type RidePriceResponse struct {
	Success bool   `json:"success"`
	Price   string `json:"price"`
}

// FareQuote represents an estimated fare
type FareQuote struct {
	Price      float64 `json:"price"` // rounded to 2 decimal places
	DistanceKm float64 `json:"distance_km"`
	Currency   string  `json:"currency"`
}

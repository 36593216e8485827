// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Segment is one parsed itinerary stop.
type Segment struct {
	// Start is the first date of the stop as written in the source
	// (e.g. "04/09" or "01-Jan-2024").
	Start string `json:"start" yaml:"start"`

	// End is the last date of the stop, or empty when the source gave none.
	End string `json:"end" yaml:"end"`

	// City is the stop name recovered from the source line.
	City string `json:"city" yaml:"city"`

	// Display is a human-readable date range such as "04/09 - 05/09".
	Display string `json:"display" yaml:"display"`
}

// ItineraryResult is the document written by the itinerary parser.
type ItineraryResult struct {
	Itinerary []Segment `json:"itinerary" yaml:"itinerary"`
}

package domain

import "time"

type TransportMode string

const (
	TransportModeFlight TransportMode = "flight"
	TransportModeTrain  TransportMode = "train"
	TransportModeBus    TransportMode = "bus"
	// TransportModeUnset means the caller expressed no preference; the
	// feasibility evaluator falls back to a flight-like default.
	TransportModeUnset TransportMode = ""
)

type HotelTier string

const (
	HotelTierLuxury  HotelTier = "luxury"
	HotelTierComfort HotelTier = "comfort"
	HotelTierBudget  HotelTier = "budget"
)

// TripBasicInfo is the first half of a plan request: where, from where, when, how.
// StartDate and EndDate carry date-only semantics (midnight UTC).
type TripBasicInfo struct {
	Destination   string
	StartLocation string
	StartDate     time.Time
	EndDate       time.Time
	TransportMode TransportMode
}

// TripPreferences is the second half of a plan request.
//
// TicketBooking and HotelPreference are collected but informational only:
// no current formula consumes them. HotelPreference in particular does NOT
// filter the hotel slate; the generator always returns all three tiers.
type TripPreferences struct {
	// BudgetUSD is the trip budget in USD. Must be non-negative.
	BudgetUSD float64

	TicketBooking   string
	HotelPreference HotelTier
}

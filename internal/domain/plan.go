package domain

import "time"

// TransportInfo reports whether the requested mode works on the route, and
// at what cost. Alternatives and Message are populated only when infeasible.
type TransportInfo struct {
	Mode          string
	Feasible      bool
	EstimatedCost float64
	Duration      string

	Alternatives []string
	Message      *string
}

// Hotel is one entry of the generated slate. Prices are per-night USD,
// rounded to the nearest integer at generation time.
type Hotel struct {
	Name          string
	Rating        int
	PricePerNight int
	Category      HotelTier
	Description   string
	Location      string

	Amenities         []string
	NearbyAttractions []string
}

// DayItinerary is one day of the trip. Day is 1-based.
type DayItinerary struct {
	Day  int
	Date time.Time

	Activities  []string
	Attractions []string
	Restaurants []string
	LocalTips   []string
}

type WeatherInfo struct {
	// TemperatureC is the rounded midpoint of the season bucket's range.
	TemperatureC int
	Condition    string
	HumidityPct  int
	PackingTips  []string
}

// BudgetBreakdown allocates the stated budget across spend categories.
//
// Category amounts are rounded independently of Total, so they may not sum
// exactly to Total; that drift is expected, not a bug. Total may exceed the
// stated budget when the per-night floors kick in on an underfunded trip —
// the Warning field is the signal for that, the numbers are not corrected.
type BudgetBreakdown struct {
	Transport     int
	Accommodation int
	Food          int
	Activities    int
	Total         int
	Currency      string

	// Local-currency fields are set only when the destination resolved to a
	// known currency; an unknown destination stays USD-only.
	LocalCurrencyTotal *int
	LocalCurrency      *string

	Warning *string
}

// TripPlan is the aggregate produced by one generation call.
//
// A plan is immutable once constructed: a changed input produces a fresh
// plan with a new ID rather than an update to this one.
type TripPlan struct {
	ID     PlanID
	UserID UserID

	BasicInfo   TripBasicInfo
	Preferences TripPreferences

	Itinerary []DayItinerary
	Hotels    []Hotel
	Transport TransportInfo
	Weather   WeatherInfo
	Budget    BudgetBreakdown

	CreatedAt time.Time
}

package planner

import (
	"math"
	"sort"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

// hotelTemplate carries the static, destination-independent metadata of one
// slate entry. priceFactor scales the per-night hotel budget; priceCap is
// the tier's absolute per-night ceiling.
type hotelTemplate struct {
	name        string
	rating      int
	category    domain.HotelTier
	description string
	location    string
	nearby      []string
	amenities   []string
	priceFactor float64
	priceCap    float64
}

var hotelTemplates = []hotelTemplate{
	{
		name:        "Grand Luxury Hotel",
		rating:      5,
		category:    domain.HotelTierLuxury,
		description: "Five-star luxury with world-class amenities and exceptional service",
		location:    "Prime City Center",
		nearby:      []string{"City Center", "Shopping District", "Fine Dining Area"},
		amenities:   []string{"Free WiFi", "Pool", "Gym", "Spa", "Restaurant", "Room Service", "Concierge", "Valet Parking"},
		priceFactor: 0.8,
		priceCap:    400,
	},
	{
		name:        "Royal Palace Hotel",
		rating:      5,
		category:    domain.HotelTierLuxury,
		description: "Elegant accommodation with premium facilities and stunning views",
		location:    "Exclusive District",
		nearby:      []string{"Historic District", "Cultural Center", "Upscale Shopping"},
		amenities:   []string{"Free WiFi", "Pool", "Fine Dining", "Spa", "Business Center", "Airport Shuttle"},
		priceFactor: 0.8 * 0.95,
		priceCap:    400 * 0.95,
	},
	{
		name:        "Comfort Plaza Hotel",
		rating:      4,
		category:    domain.HotelTierComfort,
		description: "Modern four-star hotel with excellent service and convenient location",
		location:    "Central District",
		nearby:      []string{"Main Attractions", "Transport Hub", "Shopping Area"},
		amenities:   []string{"Free WiFi", "Restaurant", "Bar", "Gym", "Meeting Rooms", "Breakfast Included"},
		priceFactor: 0.7,
		priceCap:    200,
	},
	{
		name:        "Downtown Suites",
		rating:      4,
		category:    domain.HotelTierComfort,
		description: "Stylish hotel in the heart of downtown with great amenities",
		location:    "Downtown Core",
		nearby:      []string{"Business District", "Entertainment Area", "Restaurants"},
		amenities:   []string{"Free WiFi", "Kitchenette", "Gym", "Lounge", "Daily Housekeeping"},
		priceFactor: 0.7 * 0.9,
		priceCap:    200 * 0.9,
	},
	{
		name:        "City Budget Inn",
		rating:      3,
		category:    domain.HotelTierBudget,
		description: "Clean, comfortable budget accommodation with essential amenities",
		location:    "Accessible Location",
		nearby:      []string{"Metro Station", "Local Markets", "Parks"},
		amenities:   []string{"Free WiFi", "Breakfast", "Air Conditioning", "24/7 Front Desk"},
		priceFactor: 0.6,
		priceCap:    120,
	},
	{
		name:        "Smart Stay Hotel",
		rating:      3,
		category:    domain.HotelTierBudget,
		description: "Great value hotel with modern amenities and friendly service",
		location:    "Transit-Friendly Area",
		nearby:      []string{"Public Transport", "Local Dining", "Tourist Info Center"},
		amenities:   []string{"Free WiFi", "Self Check-in", "Shared Kitchen", "Laundry"},
		priceFactor: 0.6 * 0.85,
		priceCap:    120 * 0.85,
	},
}

// GenerateHotels derives the six-hotel slate from the trip budget and length.
// 40% of the budget is treated as the nightly accommodation envelope; each
// tier prices off a fraction of that, capped per tier.
//
// The preference hint is accepted but does not filter or reorder the slate:
// all three tiers are always returned. nights must be >= 1 (enforced at the
// validation boundary).
func GenerateHotels(_ domain.HotelTier, budget float64, nights int, _ string) []domain.Hotel {
	budgetPerNight := budget * 0.4 / float64(nights)

	hotels := make([]domain.Hotel, 0, len(hotelTemplates))
	for _, t := range hotelTemplates {
		price := math.Min(budgetPerNight*t.priceFactor, t.priceCap)
		hotels = append(hotels, domain.Hotel{
			Name:              t.name,
			Rating:            t.rating,
			PricePerNight:     int(math.Round(price)),
			Category:          t.category,
			Description:       t.description,
			Location:          t.location,
			Amenities:         t.amenities,
			NearbyAttractions: t.nearby,
		})
	}

	// Rating descending, then price ascending. No further tiebreak.
	sort.Slice(hotels, func(i, j int) bool {
		if hotels[i].Rating != hotels[j].Rating {
			return hotels[i].Rating > hotels[j].Rating
		}
		return hotels[i].PricePerNight < hotels[j].PricePerNight
	})
	return hotels
}

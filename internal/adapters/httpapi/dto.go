package httpapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

// Wire DTOs. Dates cross the wire as date-only strings (YYYY-MM-DD) via
// openapi_types.Date; times as RFC 3339.

type basicInfoDTO struct {
	Destination   string             `json:"destination"`
	StartLocation string             `json:"startLocation"`
	StartDate     openapi_types.Date `json:"startDate"`
	EndDate       openapi_types.Date `json:"endDate"`
	TransportMode string             `json:"transportMode"`
}

type preferencesDTO struct {
	Budget          float64 `json:"budget"`
	TicketBooking   string  `json:"ticketBooking,omitempty"`
	HotelPreference string  `json:"hotelPreference,omitempty"`
}

type createPlanRequest struct {
	BasicInfo   basicInfoDTO   `json:"basicInfo"`
	Preferences preferencesDTO `json:"preferences"`
}

type transportInfoDTO struct {
	Mode          string   `json:"mode"`
	Feasible      bool     `json:"feasible"`
	EstimatedCost float64  `json:"estimatedCost"`
	Duration      string   `json:"duration"`
	Alternatives  []string `json:"alternatives,omitempty"`
	Message       *string  `json:"message,omitempty"`
}

type hotelDTO struct {
	Name              string   `json:"name"`
	Rating            int      `json:"rating"`
	PricePerNight     int      `json:"pricePerNight"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Amenities         []string `json:"amenities"`
	NearbyAttractions []string `json:"nearbyAttractions"`
}

type dayItineraryDTO struct {
	Day         int                `json:"day"`
	Date        openapi_types.Date `json:"date"`
	Activities  []string           `json:"activities"`
	Attractions []string           `json:"attractions"`
	Restaurants []string           `json:"restaurants"`
	LocalTips   []string           `json:"localTips"`
}

type weatherInfoDTO struct {
	Temperature int      `json:"temperature"`
	Condition   string   `json:"condition"`
	Humidity    int      `json:"humidity"`
	PackingTips []string `json:"packingTips"`
}

type budgetBreakdownDTO struct {
	Transport          int     `json:"transport"`
	Accommodation      int     `json:"accommodation"`
	Food               int     `json:"food"`
	Activities         int     `json:"activities"`
	Total              int     `json:"total"`
	Currency           string  `json:"currency"`
	LocalCurrencyTotal *int    `json:"localCurrencyTotal,omitempty"`
	LocalCurrency      *string `json:"localCurrency,omitempty"`
	BudgetWarning      *string `json:"budgetWarning,omitempty"`
}

type planResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	BasicInfo   basicInfoDTO       `json:"basicInfo"`
	Preferences preferencesDTO     `json:"preferences"`
	Itinerary   []dayItineraryDTO  `json:"itinerary"`
	Hotels      []hotelDTO         `json:"hotels"`
	Transport   transportInfoDTO   `json:"transportInfo"`
	Weather     weatherInfoDTO     `json:"weather"`
	Budget      budgetBreakdownDTO `json:"budgetBreakdown"`
	CreatedAt   string             `json:"createdAt"`
}

type plansResponse struct {
	Plans []planResponse `json:"plans"`
}

type chatRequest struct {
	Message     string `json:"message"`
	Destination string `json:"destination"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func toPlanResponse(p domain.TripPlan) planResponse {
	out := planResponse{
		ID:     string(p.ID),
		UserID: string(p.UserID),
		BasicInfo: basicInfoDTO{
			Destination:   p.BasicInfo.Destination,
			StartLocation: p.BasicInfo.StartLocation,
			StartDate:     openapi_types.Date{Time: p.BasicInfo.StartDate},
			EndDate:       openapi_types.Date{Time: p.BasicInfo.EndDate},
			TransportMode: string(p.BasicInfo.TransportMode),
		},
		Preferences: preferencesDTO{
			Budget:          p.Preferences.BudgetUSD,
			TicketBooking:   p.Preferences.TicketBooking,
			HotelPreference: string(p.Preferences.HotelPreference),
		},
		Itinerary: make([]dayItineraryDTO, 0, len(p.Itinerary)),
		Hotels:    make([]hotelDTO, 0, len(p.Hotels)),
		Transport: transportInfoDTO{
			Mode:          p.Transport.Mode,
			Feasible:      p.Transport.Feasible,
			EstimatedCost: p.Transport.EstimatedCost,
			Duration:      p.Transport.Duration,
			Alternatives:  p.Transport.Alternatives,
			Message:       p.Transport.Message,
		},
		Weather: weatherInfoDTO{
			Temperature: p.Weather.TemperatureC,
			Condition:   p.Weather.Condition,
			Humidity:    p.Weather.HumidityPct,
			PackingTips: p.Weather.PackingTips,
		},
		Budget: budgetBreakdownDTO{
			Transport:          p.Budget.Transport,
			Accommodation:      p.Budget.Accommodation,
			Food:               p.Budget.Food,
			Activities:         p.Budget.Activities,
			Total:              p.Budget.Total,
			Currency:           p.Budget.Currency,
			LocalCurrencyTotal: p.Budget.LocalCurrencyTotal,
			LocalCurrency:      p.Budget.LocalCurrency,
			BudgetWarning:      p.Budget.Warning,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}

	for _, d := range p.Itinerary {
		out.Itinerary = append(out.Itinerary, dayItineraryDTO{
			Day:         d.Day,
			Date:        openapi_types.Date{Time: d.Date},
			Activities:  d.Activities,
			Attractions: d.Attractions,
			Restaurants: d.Restaurants,
			LocalTips:   d.LocalTips,
		})
	}
	for _, h := range p.Hotels {
		out.Hotels = append(out.Hotels, hotelDTO{
			Name:              h.Name,
			Rating:            h.Rating,
			PricePerNight:     h.PricePerNight,
			Category:          string(h.Category),
			Description:       h.Description,
			Location:          h.Location,
			Amenities:         h.Amenities,
			NearbyAttractions: h.NearbyAttractions,
		})
	}
	return out
}

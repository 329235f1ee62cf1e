package planner

import (
	"fmt"
	"math"

	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/knowledge"
)

// AllocateBudget distributes the stated budget across spend categories and
// converts the total into the destination's local currency.
//
// Food and activities each take half of what remains after accommodation and
// transport, floored at per-night minimums (50/40 USD). The floors apply
// even when the remainder is negative, so the total can exceed the stated
// budget; that is deliberate signal surfaced via the warning, not an error,
// and the numbers are not corrected. Each category is rounded independently
// of the total, so the rounded categories may drift from the rounded total
// by a unit or two.
func AllocateBudget(budget float64, nights int, transportCost, avgHotelPricePerNight float64, destination string) domain.BudgetBreakdown {
	accommodation := avgHotelPricePerNight * float64(nights)
	transport := transportCost
	remaining := budget - accommodation - transport

	food := math.Max(remaining*0.5, float64(nights)*50)
	activities := math.Max(remaining*0.5, float64(nights)*40)

	total := transport + accommodation + food + activities

	out := domain.BudgetBreakdown{
		Transport:     int(math.Round(transport)),
		Accommodation: int(math.Round(accommodation)),
		Food:          int(math.Round(food)),
		Activities:    int(math.Round(activities)),
		Total:         int(math.Round(total)),
		Currency:      "USD",
	}

	if cur, ok := knowledge.CurrencyFor(destination); ok {
		localTotal := int(math.Round(total * cur.Rate))
		out.LocalCurrencyTotal = &localTotal
		code := cur.Code
		out.LocalCurrency = &code
	}

	minRecommended := transportCost + avgHotelPricePerNight*float64(nights) + float64(nights)*100
	if budget < minRecommended*0.7 {
		w := fmt.Sprintf(
			"Your budget seems too low for this location. We recommend at least $%d for a comfortable trip.",
			int(math.Round(minRecommended)),
		)
		out.Warning = &w
	}

	return out
}

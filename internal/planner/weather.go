package planner

import (
	"math"
	"strings"
	"time"

	"github.com/wanderkit/trip-planner-api/internal/domain"
)

type seasonBucket struct {
	tempLow     float64
	tempHigh    float64
	condition   string
	humidityPct int
}

// Indexed: 0 spring, 1 summer, 2 fall, 3 winter.
var seasonBuckets = [4]seasonBucket{
	{tempLow: 15, tempHigh: 25, condition: "Mild", humidityPct: 60},
	{tempLow: 25, tempHigh: 35, condition: "Warm", humidityPct: 50},
	{tempLow: 5, tempHigh: 15, condition: "Cool", humidityPct: 70},
	{tempLow: -5, tempHigh: 10, condition: "Cold", humidityPct: 65},
}

var packingTipsByCondition = map[string][]string{
	"Warm": {
		"Pack light, breathable clothing",
		"Bring sunscreen and sunglasses",
		"Stay hydrated - carry a water bottle",
		"Wear comfortable walking shoes",
	},
	"Hot": {
		"Pack very light cotton clothes",
		"Essential: High SPF sunscreen",
		"Wide-brimmed hat recommended",
		"Drink plenty of water",
	},
	"Mild": {
		"Pack layers - weather may vary",
		"Light jacket for evenings",
		"Comfortable walking shoes",
		"Umbrella might be useful",
	},
	"Cool": {
		"Bring warm layers and sweaters",
		"Pack a waterproof jacket",
		"Long pants and closed shoes",
		"Consider gloves and scarf",
	},
	"Cold": {
		"Pack heavy winter coat",
		"Essential: Warm layers, thermal wear",
		"Winter boots, gloves, and hat",
		"Moisturizer for dry skin",
	},
}

// EstimateWeather maps the travel month (and a destination-specific seasonal
// override) to an expected temperature, condition and packing advice.
//
// Month arithmetic below is 0-indexed (January = 0) to keep the bucket
// boundaries aligned with the season table.
func EstimateWeather(destination string, startDate time.Time) domain.WeatherInfo {
	month := int(startDate.Month()) - 1

	var season int
	switch {
	case month >= 2 && month <= 4:
		season = 0 // spring
	case month >= 5 && month <= 8:
		season = 1 // summer
	case month >= 9 && month <= 10:
		season = 2 // fall
	default:
		season = 3 // winter
	}

	// Monsoon/winter approximation for the Indian subcontinent: the generic
	// northern-hemisphere buckets are a poor fit there.
	dest := strings.ToLower(destination)
	if strings.Contains(dest, "delhi") || strings.Contains(dest, "india") {
		if month >= 3 && month <= 6 {
			season = 1
		} else if month >= 10 || month <= 2 {
			season = 2
		}
	}

	bucket := seasonBuckets[season]
	avgTemp := (bucket.tempLow + bucket.tempHigh) / 2
	condition := bucket.condition
	if avgTemp > 30 {
		condition = "Hot"
	}

	tips, ok := packingTipsByCondition[condition]
	if !ok {
		tips = packingTipsByCondition["Mild"]
	}

	return domain.WeatherInfo{
		TemperatureC: int(math.Round(avgTemp)),
		Condition:    condition,
		HumidityPct:  bucket.humidityPct,
		PackingTips:  tips,
	}
}

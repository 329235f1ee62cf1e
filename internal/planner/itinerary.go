package planner

import (
	"fmt"
	"time"

	"github.com/wanderkit/trip-planner-api/internal/domain"
	"github.com/wanderkit/trip-planner-api/internal/knowledge"
)

// BuildDayItinerary expands one day of the trip from the destination profile.
// day is 1-based.
//
// Attractions rotate in blocks of up to three per day so consecutive days
// don't repeat until the list wraps. Restaurants rotate on the raw day
// number (not day-1), a different phase than attractions; that offset is
// part of the contract. Local tips are the first two profile tips and are
// identical every day.
func BuildDayItinerary(day int, date time.Time, profile knowledge.Profile) domain.DayItinerary {
	first, second, third := dayAttractions(day, profile.Attractions)

	activities := []string{
		"Morning: Breakfast and prepare for the day",
		fmt.Sprintf("Visit %s", fallback(first, "local attraction")),
		"Lunch at a local restaurant",
		fmt.Sprintf("Explore %s", fallback(second, "nearby area")),
		fmt.Sprintf("Evening: %s", fallback(third, "Leisure time")),
	}

	attractions := make([]string, 0, 3)
	for _, a := range []string{first, second, third} {
		if a != "" {
			attractions = append(attractions, a)
		}
	}

	var restaurants []string
	if n := len(profile.Restaurants); n > 0 {
		restaurants = []string{
			profile.Restaurants[day%n],
			profile.Restaurants[(day+1)%n],
		}
	}

	tips := profile.Tips
	if len(tips) > 2 {
		tips = tips[:2]
	}

	return domain.DayItinerary{
		Day:         day,
		Date:        date,
		Activities:  activities,
		Attractions: attractions,
		Restaurants: restaurants,
		LocalTips:   tips,
	}
}

// dayAttractions returns the three attraction slots for the given day, in
// rotation order. Empty strings mark slots a short profile cannot fill.
func dayAttractions(day int, attractions []string) (string, string, string) {
	n := len(attractions)
	if n == 0 {
		return "", "", ""
	}
	perDay := 3
	if n < perDay {
		perDay = n
	}
	start := ((day - 1) * perDay) % n
	return attractions[start], attractions[(start+1)%n], attractions[(start+2)%n]
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

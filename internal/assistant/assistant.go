// Package assistant is a stateless, rule-based responder for trip questions.
// It keyword-matches the message against a fixed list of topics (first match
// wins) and renders templated text from its destination knowledge table. It
// shares the planner's matching semantics but is not part of the planning
// pipeline.
package assistant

import (
	"fmt"
	"strings"
)

// GenerateChatResponse answers a free-text question about the given
// destination. It always returns a usable string: unknown destinations get
// generic advice and unmatched messages get a topic menu.
func GenerateChatResponse(userMessage, destination string) string {
	msg := strings.ToLower(userMessage)

	knowledge, known := lookupKnowledge(destination)
	if !known {
		knowledge, known = lookupKnowledge(msg)
	}

	// Topic checks run in a fixed order; the first matching topic answers.
	switch {
	case containsAny(msg, "food", "eat", "restaurant"):
		if known {
			return fmt.Sprintf("Great question about food in %s! Here are my recommendations:\n\n%s\n\nEnjoy your culinary adventure!",
				destination, numberedList(knowledge.foods))
		}
		return fmt.Sprintf("For food in %s, I recommend trying local specialties, visiting popular food markets, and asking locals for their favorite spots. Street food is often authentic and delicious!", destination)

	case containsAny(msg, "transport", "travel", "get around", "metro", "taxi"):
		if known {
			return fmt.Sprintf("Here's how to get around %s:\n\n%s\n\nHappy travels!",
				destination, numberedList(knowledge.transportation))
		}
		return fmt.Sprintf("For transportation in %s, I recommend using public transport where available, ride-sharing apps like Uber, or local taxis. Always check if there are tourist transport passes available!", destination)

	case containsAny(msg, "tip", "advice", "should i know"):
		if known {
			return fmt.Sprintf("Important tips for %s:\n\n%s\n\nHave a wonderful trip!",
				destination, numberedList(knowledge.tips))
		}
		return fmt.Sprintf("Here are some general tips for %s: Research local customs, learn a few phrases in the local language, respect cultural norms, and always keep your belongings secure.", destination)

	case containsAny(msg, "attraction", "visit", "see", "place"):
		if known {
			return fmt.Sprintf("Must-know about attractions in %s:\n\n%s\n\nEnjoy exploring!",
				destination, numberedList(knowledge.attractions))
		}
		return fmt.Sprintf("%s has many wonderful attractions! I recommend booking popular sites in advance, visiting early morning to avoid crowds, and checking opening hours before you go.", destination)

	case containsAny(msg, "weather", "climate"):
		return "I can see weather information for your trip in the main itinerary. Check the weather section for temperature, conditions, and packing tips specific to your travel dates!"

	case containsAny(msg, "budget", "cost", "expensive"):
		return "I've prepared a detailed budget breakdown for your trip. You can find it in the Budget Planner section with costs for transport, accommodation, food, and activities. The total is shown in both USD and local currency!"

	case strings.Contains(msg, "hotel"):
		return "I've recommended several hotels sorted by rating and price. You'll find luxury, mid-range, and budget-friendly options with descriptions, amenities, and nearby attractions. Check the Hotels section above!"
	}

	return fmt.Sprintf("I'm here to help with your trip to %s! You can ask me about:\n\n• Best food and restaurants\n• Transportation options\n• Travel tips and local customs\n• Attractions and sightseeing\n• Weather and packing\n• Budget and costs\n\nWhat would you like to know?", destination)
}

func numberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, it))
	}
	return strings.Join(lines, "\n")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

package knowledge

// Profile is the static knowledge bundle for a destination. Attraction and
// restaurant order matters: the itinerary builder rotates through both by
// index.
type Profile struct {
	Attractions []string
	Restaurants []string
	Foods       []string
	Tips        []string
}

type destinationEntry struct {
	key     string
	profile Profile
}

var destinationTable = []destinationEntry{
	{
		key: "paris",
		profile: Profile{
			Attractions: []string{
				"Eiffel Tower",
				"Louvre Museum",
				"Notre-Dame Cathedral",
				"Arc de Triomphe",
				"Sacré-Cœur",
				"Versailles Palace",
				"Champs-Élysées",
				"Musée d'Orsay",
			},
			Restaurants: []string{
				"Le Jules Verne",
				"L'Ambroisie",
				"Septime",
				"Le Comptoir du Relais",
				"Café de Flore",
			},
			Foods: []string{"Croissants", "Escargot", "Coq au Vin", "Crème Brûlée", "French Onion Soup"},
			Tips: []string{
				"Learn basic French phrases",
				"Buy museum passes in advance",
				"Validate metro tickets",
				"Avoid tourist traps near landmarks",
			},
		},
	},
	{
		key: "tokyo",
		profile: Profile{
			Attractions: []string{
				"Senso-ji Temple",
				"Tokyo Skytree",
				"Shibuya Crossing",
				"Meiji Shrine",
				"Tsukiji Market",
				"Imperial Palace",
				"Akihabara",
				"Tokyo Tower",
			},
			Restaurants: []string{
				"Sukiyabashi Jiro",
				"Narisawa",
				"Ichiran Ramen",
				"Tsuta",
				"Gonpachi",
			},
			Foods: []string{"Sushi", "Ramen", "Tempura", "Tonkatsu", "Wagyu Beef"},
			Tips: []string{
				"Get a Suica card for transportation",
				"Remove shoes when entering homes",
				"Cash is still preferred in many places",
				"Learn basic Japanese greetings",
			},
		},
	},
	{
		key: "new york",
		profile: Profile{
			Attractions: []string{
				"Statue of Liberty",
				"Central Park",
				"Times Square",
				"Empire State Building",
				"Brooklyn Bridge",
				"Metropolitan Museum of Art",
				"Broadway",
				"9/11 Memorial",
			},
			Restaurants: []string{
				"Le Bernardin",
				"Eleven Madison Park",
				"Peter Luger",
				"Katz's Delicatessen",
				"Joe's Pizza",
			},
			Foods: []string{"New York Pizza", "Bagels", "Hot Dogs", "Cheesecake", "Pastrami Sandwich"},
			Tips: []string{
				"Use subway for transportation",
				"Walk between neighborhoods",
				"Book Broadway tickets in advance",
				"Tip 18-20% at restaurants",
			},
		},
	},
	{
		key: "london",
		profile: Profile{
			Attractions: []string{
				"Big Ben",
				"Tower of London",
				"British Museum",
				"Buckingham Palace",
				"London Eye",
				"Tower Bridge",
				"Westminster Abbey",
				"Natural History Museum",
			},
			Restaurants: []string{
				"The Ledbury",
				"Dishoom",
				"Sketch",
				"Borough Market",
				"The Ivy",
			},
			Foods: []string{"Fish and Chips", "Sunday Roast", "Afternoon Tea", "Bangers and Mash", "Shepherd's Pie"},
			Tips: []string{
				"Get an Oyster card for the Tube",
				"Stand on the right on escalators",
				"Book popular attractions online",
				"Tipping is optional but appreciated",
			},
		},
	},
}

// genericProfile is the fallback for destinations the table doesn't know.
// Unknown destinations degrade to this rather than failing.
var genericProfile = Profile{
	Attractions: []string{
		"Historic Old Town",
		"National Museum",
		"City Center Square",
		"Local Market",
		"Scenic Viewpoint",
		"Cultural District",
		"Riverside Walk",
		"Art Gallery",
	},
	Restaurants: []string{
		"Local Fine Dining Restaurant",
		"Traditional Cuisine House",
		"Popular Street Food Market",
		"Riverside Bistro",
		"Historic Café",
	},
	Foods: []string{"Local Specialty Dish", "Regional Delicacy", "Traditional Dessert", "Street Food Favorite"},
	Tips: []string{
		"Research local customs beforehand",
		"Learn a few basic phrases",
		"Use public transportation when possible",
		"Respect local traditions",
	},
}

var destinationKeys = func() []string {
	keys := make([]string, 0, len(destinationTable))
	for _, e := range destinationTable {
		keys = append(keys, e.key)
	}
	return keys
}()

// ResolveDestination maps a free-text destination to its profile.
// The second return reports whether the table matched; a miss yields the
// generic profile so callers always get usable data.
func ResolveDestination(destination string) (Profile, bool) {
	key, ok := firstMatch(destination, destinationKeys)
	if !ok {
		return genericProfile, false
	}
	for _, e := range destinationTable {
		if e.key == key {
			return e.profile, true
		}
	}
	return genericProfile, false
}

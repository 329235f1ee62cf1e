package assistant

// destinationKnowledge is the assistant's own per-destination advice table.
// It is separate from the planner's profile table: the planner rotates
// through attraction names, the assistant answers questions with curated
// one-liners.
type destinationKnowledge struct {
	foods          []string
	transportation []string
	tips           []string
	attractions    []string
}

type knowledgeEntry struct {
	key       string
	knowledge destinationKnowledge
}

var knowledgeTable = []knowledgeEntry{
	{
		key: "paris",
		knowledge: destinationKnowledge{
			foods: []string{
				"Try authentic croissants at local boulangeries",
				"Must-try: Escargot, Coq au Vin, and Crème Brûlée",
				"Visit Le Marais for the best falafel",
				"Don't miss the macarons at Ladurée",
			},
			transportation: []string{
				"Metro is the fastest way around",
				"Buy a Paris Visite pass for unlimited travel",
				"Velib bike-sharing is great for short distances",
				"Uber and taxis are readily available",
			},
			tips: []string{
				"Learn basic French phrases - locals appreciate it",
				"Visit museums on first Sunday of the month (free!)",
				"Avoid restaurants directly around Eiffel Tower - overpriced",
				"Book Eiffel Tower tickets online in advance",
			},
			attractions: []string{
				"Eiffel Tower opens at 9 AM",
				"Louvre is closed on Tuesdays",
				"Walk along Seine River at sunset",
				"Visit Montmartre for stunning city views",
			},
		},
	},
	{
		key: "tokyo",
		knowledge: destinationKnowledge{
			foods: []string{
				"Best sushi at Tsukiji Outer Market",
				"Try authentic ramen at Ichiran",
				"Must-try: Wagyu beef and tempura",
				"Visit depachika (department store basements) for food",
			},
			transportation: []string{
				"Get a Suica or Pasmo card immediately",
				"JR Pass is great for long-distance travel",
				"Trains stop running around midnight",
				"Tokyo Metro is incredibly efficient",
			},
			tips: []string{
				"Cash is still king in many places",
				"Remove shoes when entering homes and some restaurants",
				"Tipping is not customary",
				"Download Google Translate with offline Japanese",
			},
			attractions: []string{
				"Visit Senso-ji Temple early morning (6 AM)",
				"Shibuya Crossing is busiest around 6-8 PM",
				"Tokyo Skytree offers best views on clear days",
				"Harajuku is best visited on weekends",
			},
		},
	},
	{
		key: "london",
		knowledge: destinationKnowledge{
			foods: []string{
				"Try authentic fish and chips at a local pub",
				"Borough Market for amazing street food",
				"Must-try: Sunday roast and afternoon tea",
				"Indian food in Brick Lane is excellent",
			},
			transportation: []string{
				"Get an Oyster card for cheaper fares",
				"Tube runs until midnight on weekdays",
				"Night buses run 24/7",
				"Walk between attractions - London is beautiful on foot",
			},
			tips: []string{
				"Stand on right side of escalators",
				"Book West End show tickets at TKTS for discounts",
				"Many museums are free",
				"Tipping 10-15% at restaurants",
			},
			attractions: []string{
				"Tower of London opens at 9 AM",
				"British Museum is free entry",
				"Book London Eye tickets online",
				"Visit Sky Garden for free panoramic views",
			},
		},
	},
	{
		key: "delhi",
		knowledge: destinationKnowledge{
			foods: []string{
				"Try street food at Chandni Chowk",
				"Must-try: Butter chicken, biryani, and chaat",
				"Visit Paranthe Wali Gali for parathas",
				"Karim's for authentic Mughlai cuisine",
			},
			transportation: []string{
				"Delhi Metro is clean and efficient",
				"Use Uber or Ola for taxis",
				"Auto-rickshaws - always negotiate fare",
				"Avoid peak hours (8-10 AM, 6-8 PM)",
			},
			tips: []string{
				"Dress modestly at religious sites",
				"Bargain at local markets",
				"Stay hydrated - Delhi can be very hot",
				"Keep small bills for purchases",
			},
			attractions: []string{
				"Red Fort opens at 9:30 AM",
				"India Gate is beautiful in evening",
				"Visit Qutub Minar early morning",
				"Lotus Temple is closed on Mondays",
			},
		},
	},
}

// lookupKnowledge resolves a free-text location against the table using the
// same first-substring-match-wins rule the planner's knowledge tables use.
func lookupKnowledge(query string) (destinationKnowledge, bool) {
	for _, e := range knowledgeTable {
		if containsFold(query, e.key) {
			return e.knowledge, true
		}
	}
	return destinationKnowledge{}, false
}

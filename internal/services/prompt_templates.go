package services

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	TemplateRecommendation      = "recommendation"
	TemplateItinerary           = "itinerary"
	TemplateItineraryJSON       = "itinerary_json"
	TemplatePlaces              = "places"
	TemplateItineraryFromPlaces = "itinerary_from_places"
	TemplateStuffQA             = "stuff_qa"
	TemplateWeatherSummary      = "weather_summary"
)

const exampleSummaries = `
    - Amorgos: Amorgos is a paradise for explorers, divers, and hikers. Its small bays, mountain paths and all-white churches, make it the ideal destination for an alternative Cycladic holiday. You should visit Ammos AMORGOS, a beach bar with a great view of the sea and the sunset.
    - Catania: Catania in Sicily has a long history in a picturesque scene. With Aetna on its backdrop it offers a lot to lovers of Nature. Moreover, it's on the water and has beautiful beaches with turquoise waters. Visit Villa Bellini, a beautiful park in the heart of the city.
    - Samothrace: Samothrace in the north east Aegean is famed for its wild mountain, Saos, that towers on the island and attracts travelers who prefer alternative types of tourism beyond the standard Greek island beach vibes. Mount Saos is the highest mountain in the Aegean and its gorges, forests and waterfalls make for great exploring and action.
    - Epidaurus: Ancient Epidaurus is a must for lovers of culture. Not just one of the most significant archaeological sites in Greece, but also a place that has managed to become a travel destination by preserving its ancient identity, keeping its theatre in operation, and hosting dozens of shows each year.
    - Paros: Paros has a healthy art scene with numerous galleries and public spaces given over to exhibitions. Paros Park hosts a series of summer events, such as concerts in the amphitheatre and films under the stars at Cine Enastron.
    - Samos: Experience Samos and its vibrant nightlife, a North Aegean Island in Greece. An array of bars caters to diverse tastes, from artistic soirees to lively waterfront dance parties and themed nights.
    - Mykonos: Mykonos is perhaps the epicenter of nightlife in Greece. Savor a selection of the island's finest Greek wines during a wine-tasting tour. Visit the most famous beaches, including Super Paradise, Paradise, and Paraga.
`

const exampleDays = `
    - Day 1:
        Start your morning by having a coffee in Monastiraki.
        Proceed to visit the Acropolis, the Parthenon, and the Acropolis Museum.
        Then in the afternoon, have lunch at Thissio and go for a walk at the National Garden.
        In the evening, go for dinner at Plaka.
    - Day 1:
        Rent a car and visit the Temple of Poseidon at Sounion.
        Have lunch at Vouliagmeni and go for a swim at Varkiza.
        Then go for dinner at Glyfada.
    - Day 3:
        In the morning you will take the metro to Piraeaus for your ferry to Spetses.
        You can rent a bike and go around the island.
`

var promptSources = map[string]string{
	TemplateRecommendation: `
    Below is a user input for a desired travel recommendation.

    Your goal is to:

    - Make a set of travel recommendations for the country the user prefers.
    - Recommendations needs to match a user's criteria.

    Here are some examples of criteria:

    - Outdoors: Swimming in the sea, walking along the beach, going to natural hot springs, hiking a mountain, island hopping, snorkeling, scuba diving, surfing, sailing, kayaking, fishing, camping, biking, skiing, rock climbing, paragliding
    - Cultural: Art galleries, museums, churches, amphitheatre, ancient ruins, temples, castles, palaces
    - Nightlife: Bars, clubs, pubs, live music, dancing
    - Food: Burger, pasta, pizza, greek salad, seafood

    Here are some examples of locations depending on the country:

    - Italy: Palermo, Catania, Taormina, Syracuse, Agrigento, Ragusa, Cefalù, Aeolian Islands, Lipari, Stromboli, Favignana, Trapani, Marsala, Erice, Noto, Modica, Messina, Etna, Naples
    - Greece: Amorgos, Rhodes, Santorini, Agathonisi, Chalki, Leros, Ikaria, Samothrace, Thasos, Agios Nikolaos, Skiathos, Zakynthos, Corfu, Nafplio, Spetses, Kilkis, Prespes, Lefkada, Volos, Mani, Elafonisos, Kythera
    - Spain: Barcelona, Malaga, Bilbao, Tenerife, Valencia, Madrid, Ibiza, Majorca, Menorca, Lanzarote, La Palma, La Gomera, El Hierro

    Here are examples of recommendations:
` + exampleSummaries + `
    Please start with a summary of the user's input for {{.country}} followed by recommendations.
    COUNTRY:{{.country}}

    YOUR {{.recommendations}} RESPONSE:
`,

	TemplateItinerary: `
    Your purpose is to provide a travel itinerary.
    Below you find instructions for your purpose.

    - Make a daily plan for a trip in the {{.location}} for {{.duration}} days.
    - Daily plan needs to entail a places based on user's preferred {{.filters}}.
    - These places are filtered from a table with the following columns: {{.filters}}, {{.location}}.
    - Mention these places in the daily itineraries.

    Here are some examples of daily itineraries:
` + exampleDays + `
    Here are examples of summaries for different locations:
` + exampleSummaries + `
    Please start with a summary for the {{.location}} followed by the daily plan.

    Summary for {{.location}}:

    Day 1 : Daily itinerary
    Day N : Daily itinerary
    Where N is the duration of the trip.
`,

	TemplateItineraryJSON: `
    Your purpose is to output a travel itinerary in a JSON format.
    Use the following variables to generate the recommendation: {{.location}}, {{.activities}}, {{.duration}}

    The recommendation should be a list of dictionaries, where each dictionary has the following keys:

    - location: The name of the {{.location}}
    - summary: A short summary of the {{.location}}
    - duration: The {{.duration}} of the trip in days
    - activities: A list of {{.activities}} to do in the {{.location}}
    - itinerary: A dictionary of the itinerary, where each key is a day of the trip, and each value is a dictionary with key "places" and a list of places per day as the values.

    An example of the dictionary with key places under the key itinerary: "places": ["Lindos Acropolis", "Elli Beach", "Old Town"]

    Remember the answer needs to be in JSON format.
`,

	TemplatePlaces: `
    You are knowledgeable about all places in Greece, such as beaches, mountains, restaurants, bars, museums, and hotels.
    You need to find places to visit in the given {{.location}} for {{.duration}} days.

    Follow these instructions:
    - Daily plan needs to entail places based on user's preferred {{.filters}}.
    - No more than 2 restaurants per day should be recommended.
    - There should be at least 1 place to visit per day.
    - Make a list of these places that can be used for querying.

    These are the recommended places for your trip:
`,

	TemplateItineraryFromPlaces: `
    You are a travel planner.

    The recommended places for your trip are:
    {{.places}}

    Here are examples of daily itineraries:
` + exampleDays + `
    Here are examples of summaries for different locations:
` + exampleSummaries + `
    Please start with a summary, followed by the daily itinerary.

    Daily Itinerary:
`,

	TemplateStuffQA: `Use the following pieces of context to answer the question at the end. If you don't know the answer, just say that you don't know, don't try to make up an answer.

{{.context}}

Question: {{.question}}
Helpful Answer:`,

	TemplateWeatherSummary: `You are given the current weather at {{.place}} as reported by Open-Meteo:
{{.conditions}}

Answer the question below in two or three sentences for a traveller. Mention temperature and wind.

Question: {{.question}}
Answer:`,
}

// PromptTemplates renders the named prompts. A template referencing a variable absent
// from the supplied values fails to render.
type PromptTemplates struct {
	root *template.Template
}

func NewPromptTemplates() (*PromptTemplates, error) {
	root := template.New("prompts").Option("missingkey=error")
	for name, src := range promptSources {
		if _, err := root.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("parse prompt %s: %w", name, err)
		}
	}
	return &PromptTemplates{root: root}, nil
}

func (p *PromptTemplates) Render(name string, vars map[string]any) (string, error) {
	t := p.root.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}
	var b strings.Builder
	if err := t.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return b.String(), nil
}

// JoinList renders a list variable the way the prompts expect it.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

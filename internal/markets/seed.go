package markets

import "github.com/projectscope/projectscope-backend/pkg/enums"

var seedIndicators = []Indicator{
	{
		ID:          1,
		Kind:        enums.IndicatorOpportunity,
		Title:       "Giga-project tenders accelerating",
		Description: "Saudi giga-projects released a new wave of construction packages this quarter.",
		Value:       "+18% QoQ",
		Country:     "Saudi Arabia",
		Sector:      "Infrastructure",
		IsActive:    true,
	},
	{
		ID:          2,
		Kind:        enums.IndicatorTrend,
		Title:       "Waterfront residential demand",
		Description: "Premium waterfront units in Dubai continue to outpace citywide absorption.",
		Value:       "+9.4% YoY",
		Country:     "United Arab Emirates",
		Sector:      "Real Estate",
		IsActive:    true,
	},
	{
		ID:          3,
		Kind:        enums.IndicatorAlert,
		Title:       "Steel input costs rising",
		Description: "Regional rebar prices climbed for the third consecutive month.",
		Value:       "+6.1% MoM",
		IsActive:    true,
	},
	{
		ID:          4,
		Kind:        enums.IndicatorTrend,
		Title:       "Renewables pipeline growth",
		Description: "Announced solar and water projects across the GCC keep expanding.",
		Value:       "+22% YoY",
		Sector:      "Energy",
		IsActive:    true,
	},
	{
		ID:          5,
		Kind:        enums.IndicatorOpportunity,
		Title:       "Hospitality occupancy rebound",
		Description: "Red Sea coast resorts report record forward bookings.",
		Value:       "84% occupancy",
		Country:     "Saudi Arabia",
		Sector:      "Tourism & Hospitality",
		IsActive:    false,
	},
}

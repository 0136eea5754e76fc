package projects

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/projectscope/projectscope-backend/pkg/enums"
)

func f(v float64) *float64 { return &v }

// Seed loads the fixed project catalog into the store. It fails if any seed
// entry violates a catalog invariant so a bad data edit cannot boot.
func Seed(store *Store) error {
	if err := validateSeed(seedProjects); err != nil {
		return err
	}
	for _, p := range seedProjects {
		store.Create(p)
	}
	return nil
}

func validateSeed(list []Project) error {
	var err error
	for i, p := range list {
		if p.Name == "" {
			err = multierr.Append(err, fmt.Errorf("seed[%d]: name is required", i))
		}
		if p.Country == "" || p.City == "" {
			err = multierr.Append(err, fmt.Errorf("seed[%d] %q: location is required", i, p.Name))
		}
		if p.InvestmentM < 0 {
			err = multierr.Append(err, fmt.Errorf("seed[%d] %q: investment must be non-negative", i, p.Name))
		}
		if p.Status == "" {
			err = multierr.Append(err, fmt.Errorf("seed[%d] %q: status is required", i, p.Name))
		}
	}
	return err
}

var seedTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

var seedProjects = []Project{
	{
		Name:          "Marina Gate Towers",
		Description:   "Twin 52-storey residential towers on the Dubai Marina waterfront with retail podium and private beach access.",
		Country:       "United Arab Emirates",
		City:          "Dubai",
		District:      "Dubai Marina",
		Sector:        "Real Estate",
		Subsector:     "Residential",
		ProjectType:   "Residential",
		ContractType:  "Design-Build",
		Status:        enums.StatusUnderConstruction,
		InvestmentM:   850,
		ExpectedROI:   f(12.5),
		Size:          "140,000 sqm",
		Floors:        52,
		BuiltUpArea:   "210,000 sqm",
		Features:      []string{"Waterfront", "Smart Home", "Private Beach", "Retail Podium"},
		IsLuxury:      true,
		IsWaterfront:  true,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "King Salman Park",
		Description:   "Urban park development in central Riyadh with cultural venues, sports facilities and a royal arts complex.",
		Country:       "Saudi Arabia",
		City:          "Riyadh",
		District:      "Al Olaya",
		Sector:        "Tourism & Hospitality",
		Subsector:     "Leisure",
		ProjectType:   "Mixed-Use",
		ContractType:  "EPC",
		Status:        enums.StatusUnderConstruction,
		InvestmentM:   4300,
		ExpectedROI:   f(8.0),
		Size:          "16.6 sq km",
		Features:      []string{"Cultural Venues", "Green Space", "Sports Facilities"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "NEOM The Line Segment 3",
		Description:   "Linear city module with zero-car mobility, renewable power and high-density vertical living.",
		Country:       "Saudi Arabia",
		City:          "NEOM",
		District:      "Tabuk Province",
		Sector:        "Infrastructure",
		Subsector:     "Urban Development",
		ProjectType:   "Mixed-Use",
		ContractType:  "EPC",
		Status:        enums.StatusPlanning,
		InvestmentM:   12000,
		ExpectedROI:   f(6.5),
		Size:          "34 sq km",
		Features:      []string{"Renewable Energy", "Zero-Car", "Vertical City"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Jeddah Corniche Residences",
		Description:   "Luxury seafront apartments overlooking the Red Sea with resort-grade amenities.",
		Country:       "Saudi Arabia",
		City:          "Jeddah",
		District:      "Corniche",
		Sector:        "Real Estate",
		Subsector:     "Residential",
		ProjectType:   "Residential",
		ContractType:  "Lump Sum",
		Status:        enums.StatusNearingCompletion,
		InvestmentM:   620,
		ExpectedROI:   f(11.0),
		Floors:        38,
		BuiltUpArea:   "95,000 sqm",
		Features:      []string{"Sea View", "Infinity Pool", "Concierge"},
		IsLuxury:      true,
		IsWaterfront:  true,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Lusail Plaza Towers",
		Description:   "Four commercial towers anchoring Lusail's central business district.",
		Country:       "Qatar",
		City:          "Lusail",
		District:      "Al Sadd",
		Sector:        "Real Estate",
		Subsector:     "Commercial",
		ProjectType:   "Commercial",
		ContractType:  "Design-Build",
		Status:        enums.StatusCompletedOperational,
		InvestmentM:   1400,
		CurrentROI:    f(9.2),
		Floors:        70,
		BuiltUpArea:   "380,000 sqm",
		Features:      []string{"Grade A Offices", "Sky Lobby", "District Cooling"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Etihad Rail Freight Expansion",
		Description:   "Extension of the national freight rail network connecting Khalifa Port with inland logistics hubs.",
		Country:       "United Arab Emirates",
		City:          "Abu Dhabi",
		District:      "Al Dhafra",
		Sector:        "Transportation",
		Subsector:     "Rail",
		ProjectType:   "Infrastructure",
		ContractType:  "EPC",
		Status:        enums.StatusInProgress,
		InvestmentM:   2100,
		ExpectedROI:   f(7.3),
		Capacity:      "60M tonnes/year",
		Features:      []string{"Freight Rail", "Port Link", "Logistics Hubs"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Red Sea Coral Resort",
		Description:   "Eco resort on a private lagoon island with overwater villas powered entirely by solar.",
		Country:       "Saudi Arabia",
		City:          "Umluj",
		District:      "Red Sea Coast",
		Sector:        "Tourism & Hospitality",
		Subsector:     "Hospitality",
		ProjectType:   "Hospitality",
		ContractType:  "Design-Build",
		Status:        enums.StatusUnderConstruction,
		InvestmentM:   950,
		ExpectedROI:   f(14.0),
		Capacity:      "320 keys",
		Features:      []string{"Overwater Villas", "Solar Power", "Marine Reserve"},
		IsLuxury:      true,
		IsWaterfront:  true,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Downtown Cairo Medical City",
		Description:   "Tertiary-care hospital campus with specialist clinics and a research wing.",
		Country:       "Egypt",
		City:          "Cairo",
		District:      "New Administrative Capital",
		Sector:        "Healthcare",
		Subsector:     "Hospitals",
		ProjectType:   "Healthcare",
		ContractType:  "PPP",
		Status:        enums.StatusTenderOpen,
		InvestmentM:   780,
		ExpectedROI:   f(9.8),
		Capacity:      "1,200 beds",
		Features:      []string{"Research Wing", "Specialist Clinics"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Palm Jumeirah Crescent Hotel",
		Description:   "Ultra-luxury beachfront hotel on the Palm crescent with branded residences.",
		Country:       "United Arab Emirates",
		City:          "Dubai",
		District:      "Palm Jumeirah",
		Sector:        "Tourism & Hospitality",
		Subsector:     "Hospitality",
		ProjectType:   "Hospitality",
		ContractType:  "Lump Sum",
		Status:        enums.StatusCompletedOperational,
		InvestmentM:   1100,
		CurrentROI:    f(13.5),
		Capacity:      "540 keys",
		Floors:        14,
		Features:      []string{"Private Beach", "Branded Residences", "Spa"},
		IsLuxury:      true,
		IsWaterfront:  true,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Riyadh Metro Line 7",
		Description:   "Automated metro line extension serving the northern suburbs with 12 new stations.",
		Country:       "Saudi Arabia",
		City:          "Riyadh",
		District:      "Al Narjis",
		Sector:        "Transportation",
		Subsector:     "Metro",
		ProjectType:   "Infrastructure",
		ContractType:  "EPC",
		Status:        enums.StatusTenderOpen,
		InvestmentM:   3200,
		ExpectedROI:   f(5.5),
		Size:          "28 km",
		Capacity:      "12 stations",
		Features:      []string{"Driverless", "Park and Ride"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Sharjah Sustainable City Phase 2",
		Description:   "Net-zero residential community with greenhouse farming and solar-covered parking.",
		Country:       "United Arab Emirates",
		City:          "Sharjah",
		District:      "Al Rahmaniya",
		Sector:        "Real Estate",
		Subsector:     "Residential",
		ProjectType:   "Residential",
		ContractType:  "Design-Build",
		Status:        enums.StatusUnderConstruction,
		InvestmentM:   410,
		ExpectedROI:   f(10.2),
		Size:          "668 villas",
		Features:      []string{"Net Zero", "Greenhouse Farming", "Solar Parking"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Dammam Logistics Park",
		Description:   "Bonded warehousing and light-industrial park adjacent to King Abdulaziz Port.",
		Country:       "Saudi Arabia",
		City:          "Dammam",
		District:      "Second Industrial City",
		Sector:        "Infrastructure",
		Subsector:     "Logistics",
		ProjectType:   "Industrial",
		ContractType:  "BOT",
		Status:        enums.StatusOnHold,
		InvestmentM:   270,
		ExpectedROI:   f(8.7),
		Size:          "2.4M sqm",
		Features:      []string{"Bonded Warehousing", "Port Access", "Rail Spur"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Doha West Bay Solar District",
		Description:   "Rooftop and facade photovoltaic retrofit across the West Bay commercial district.",
		Country:       "Qatar",
		City:          "Doha",
		District:      "West Bay",
		Sector:        "Energy",
		Subsector:     "Renewables",
		ProjectType:   "Infrastructure",
		ContractType:  "EPC",
		Status:        enums.StatusInProgress,
		InvestmentM:   190,
		ExpectedROI:   f(9.0),
		Capacity:      "145 MW",
		Features:      []string{"Photovoltaic", "Retrofit", "Grid Storage"},
		IsLuxury:      false,
		IsWaterfront:  false,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Abu Dhabi Reem Island Mall",
		Description:   "Regional shopping and entertainment destination with an indoor canal and cinema complex.",
		Country:       "United Arab Emirates",
		City:          "Abu Dhabi",
		District:      "Al Reem Island",
		Sector:        "Real Estate",
		Subsector:     "Retail",
		ProjectType:   "Commercial",
		ContractType:  "Lump Sum",
		Status:        enums.StatusNearingCompletion,
		InvestmentM:   530,
		ExpectedROI:   f(10.8),
		BuiltUpArea:   "195,000 sqm",
		Features:      []string{"Indoor Canal", "Cinema", "Anchor Stores"},
		IsLuxury:      false,
		IsWaterfront:  true,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Alexandria Desalination Plant",
		Description:   "Reverse-osmosis desalination facility supplying the western Alexandria governorate.",
		Country:       "Egypt",
		City:          "Alexandria",
		District:      "Borg El Arab",
		Sector:        "Energy",
		Subsector:     "Water",
		ProjectType:   "Infrastructure",
		ContractType:  "PPP",
		Status:        enums.StatusPlanning,
		InvestmentM:   340,
		ExpectedROI:   f(7.0),
		Capacity:      "300,000 m3/day",
		Features:      []string{"Reverse Osmosis", "Solar Assist"},
		IsLuxury:      false,
		IsWaterfront:  true,
		IsSustainable: true,
		CreatedAt:     seedTime,
	},
	{
		Name:          "Muscat Heritage Waterfront",
		Description:   "Mixed-use redevelopment of the Muttrah harbor front with hotels, souq expansion and marina berths.",
		Country:       "Oman",
		City:          "Muscat",
		District:      "Muttrah",
		Sector:        "Tourism & Hospitality",
		Subsector:     "Mixed-Use",
		ProjectType:   "Mixed-Use",
		ContractType:  "PPP",
		Status:        enums.StatusPlanning,
		InvestmentM:   720,
		ExpectedROI:   f(9.5),
		Size:          "3.1 km frontage",
		Features:      []string{"Marina", "Souq Expansion", "Boutique Hotels"},
		IsLuxury:      false,
		IsWaterfront:  true,
		IsSustainable: false,
		CreatedAt:     seedTime,
	},
}

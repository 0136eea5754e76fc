package markets

import (
	"github.com/projectscope/projectscope-backend/pkg/enums"
)

// Indicator is a display-only market signal card. Seeded once at startup and
// read-only thereafter.
type Indicator struct {
	ID          int                 `json:"id"`
	Kind        enums.IndicatorKind `json:"kind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Value       string              `json:"value"`
	Country     string              `json:"country,omitempty"`
	Sector      string              `json:"sector,omitempty"`
	IsActive    bool                `json:"isActive"`
}

// TrendingSector is one row of the trending-sectors aggregation.
type TrendingSector struct {
	Name         string  `json:"name"`
	ProjectCount int     `json:"projectCount"`
	GrowthRate   float64 `json:"growthRate"`
	AverageValue float64 `json:"averageValue"`
}

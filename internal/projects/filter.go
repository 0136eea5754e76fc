package projects

import "strings"

// Criteria is a sparse filter over the project catalog. Zero values mean "no
// constraint": empty strings and the client sentinels "all"/"All Types"/... are
// treated as absent, nil pointers leave numeric bounds open and boolean facets
// unfiltered.
type Criteria struct {
	Country     string
	Sector      string
	ProjectType string
	City        string
	District    string
	Status      string

	// Inclusive bounds over InvestmentM; either side may be open.
	MinInvestment *float64
	MaxInvestment *float64

	IsLuxury      *bool
	IsWaterfront  *bool
	IsSustainable *bool
}

// IsSentinel reports whether a string filter value means "no constraint".
// Client forms send "all" (any case) or "All ..." labels such as "All Types"
// for unset dropdowns; both conventions must be honored.
func IsSentinel(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || v == "all" || strings.HasPrefix(v, "all ")
}

// Filter returns the projects matching every supplied constraint, preserving
// the input order. It is a pure function; an empty result is not an error.
func Filter(list []Project, c Criteria) []Project {
	out := make([]Project, 0, len(list))
	for _, p := range list {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Project, c Criteria) bool {
	// Country is the one substring match: the dashboards pass partial,
	// case-insensitive country fragments ("saudi", "emirates").
	if !IsSentinel(c.Country) {
		if !strings.Contains(strings.ToLower(p.Country), strings.ToLower(strings.TrimSpace(c.Country))) {
			return false
		}
	}
	if !IsSentinel(c.Sector) && p.Sector != c.Sector {
		return false
	}
	if !IsSentinel(c.ProjectType) && p.ProjectType != c.ProjectType {
		return false
	}
	if !IsSentinel(c.City) && p.City != c.City {
		return false
	}
	if !IsSentinel(c.District) && p.District != c.District {
		return false
	}
	if !IsSentinel(c.Status) && p.Status != c.Status {
		return false
	}

	if c.MinInvestment != nil && p.InvestmentM < *c.MinInvestment {
		return false
	}
	if c.MaxInvestment != nil && p.InvestmentM > *c.MaxInvestment {
		return false
	}

	if c.IsLuxury != nil && p.IsLuxury != *c.IsLuxury {
		return false
	}
	if c.IsWaterfront != nil && p.IsWaterfront != *c.IsWaterfront {
		return false
	}
	if c.IsSustainable != nil && p.IsSustainable != *c.IsSustainable {
		return false
	}

	return true
}

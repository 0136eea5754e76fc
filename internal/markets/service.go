package markets

import (
	"hash/fnv"
	"sort"

	"github.com/projectscope/projectscope-backend/internal/projects"
)

// Service serves market indicator cards and sector aggregations. Indicators
// are static seed data; trending sectors are computed from the live catalog.
type Service struct {
	indicators []Indicator
	catalog    *projects.Store
}

func NewService(catalog *projects.Store) *Service {
	return &Service{
		indicators: append([]Indicator(nil), seedIndicators...),
		catalog:    catalog,
	}
}

// ActiveIndicators returns the indicators with the active flag set, in seed order.
func (s *Service) ActiveIndicators() []Indicator {
	out := make([]Indicator, 0, len(s.indicators))
	for _, ind := range s.indicators {
		if ind.IsActive {
			out = append(out, ind)
		}
	}
	return out
}

// TrendingSectors aggregates the catalog by sector: project count and average
// investment are real; the growth rate is a simulated display figure, derived
// deterministically from the sector name so responses are stable across calls.
func (s *Service) TrendingSectors() []TrendingSector {
	type bucket struct {
		count int
		total float64
	}
	buckets := map[string]*bucket{}
	order := []string{}

	for _, p := range s.catalog.All() {
		if p.Sector == "" {
			continue
		}
		b, ok := buckets[p.Sector]
		if !ok {
			b = &bucket{}
			buckets[p.Sector] = b
			order = append(order, p.Sector)
		}
		b.count++
		b.total += p.InvestmentM
	}

	out := make([]TrendingSector, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		out = append(out, TrendingSector{
			Name:         name,
			ProjectCount: b.count,
			GrowthRate:   simulatedGrowthRate(name),
			AverageValue: b.total / float64(b.count),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProjectCount > out[j].ProjectCount
	})
	return out
}

// simulatedGrowthRate maps a sector name to a stable percentage in [3.0, 18.0).
func simulatedGrowthRate(sector string) float64 {
	h := fnv.New32a()
	h.Write([]byte(sector))
	return 3.0 + float64(h.Sum32()%1500)/100.0
}

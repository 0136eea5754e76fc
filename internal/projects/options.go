package projects

import (
	"sort"

	"github.com/projectscope/projectscope-backend/pkg/enums"
)

// FilterOptions are the server-derived distinct-value lists that populate the
// dashboard dropdowns, plus two static location hierarchy tables kept for
// countries the catalog does not cover yet.
type FilterOptions struct {
	Countries       []string            `json:"countries"`
	Sectors         []string            `json:"sectors"`
	ProjectTypes    []string            `json:"projectTypes"`
	Cities          []string            `json:"cities"`
	Districts       []string            `json:"districts"`
	Statuses        []string            `json:"statuses"`
	CountryToCities map[string][]string `json:"countryToCities"`
	CityToDistricts map[string][]string `json:"cityToDistricts"`
}

var countryToCities = map[string][]string{
	"Saudi Arabia":         {"Riyadh", "Jeddah", "Dammam", "NEOM", "Umluj", "Al Khobar", "Mecca", "Medina"},
	"United Arab Emirates": {"Dubai", "Abu Dhabi", "Sharjah", "Ajman", "Ras Al Khaimah"},
	"Qatar":                {"Doha", "Lusail", "Al Wakrah"},
	"Egypt":                {"Cairo", "Alexandria", "Giza", "New Administrative Capital"},
	"Oman":                 {"Muscat", "Salalah", "Sohar"},
	"Kuwait":               {"Kuwait City", "Al Ahmadi"},
	"Bahrain":              {"Manama", "Muharraq"},
}

var cityToDistricts = map[string][]string{
	"Dubai":      {"Dubai Marina", "Palm Jumeirah", "Downtown", "Business Bay", "JBR"},
	"Abu Dhabi":  {"Al Reem Island", "Al Dhafra", "Saadiyat Island", "Yas Island"},
	"Riyadh":     {"Al Olaya", "Al Narjis", "King Abdullah Financial District", "Diplomatic Quarter"},
	"Jeddah":     {"Corniche", "Al Hamra", "Obhur"},
	"Doha":       {"West Bay", "The Pearl", "Msheireb"},
	"Cairo":      {"New Administrative Capital", "Zamalek", "Maadi"},
	"Muscat":     {"Muttrah", "Al Qurum", "Al Mouj"},
	"Alexandria": {"Borg El Arab", "Montaza", "Smouha"},
}

// Options derives dropdown values from the catalog.
func (s *Store) Options() FilterOptions {
	all := s.All()
	return FilterOptions{
		Countries:       distinct(all, func(p Project) string { return p.Country }),
		Sectors:         distinct(all, func(p Project) string { return p.Sector }),
		ProjectTypes:    distinct(all, func(p Project) string { return p.ProjectType }),
		Cities:          distinct(all, func(p Project) string { return p.City }),
		Districts:       distinct(all, func(p Project) string { return p.District }),
		Statuses:        enums.KnownStatuses(),
		CountryToCities: copyTable(countryToCities),
		CityToDistricts: copyTable(cityToDistricts),
	}
}

// Cities returns the sorted distinct cities of projects whose country matches
// per the filter engine's country semantics (case-insensitive substring).
func (s *Store) Cities(country string) []string {
	matched := s.List(Criteria{Country: country})
	return distinct(matched, func(p Project) string { return p.City })
}

// Districts returns the sorted distinct districts for a country/city pair.
// The city is matched exactly, like every non-country string filter.
func (s *Store) Districts(country, city string) []string {
	matched := s.List(Criteria{Country: country, City: city})
	return distinct(matched, func(p Project) string { return p.District })
}

func distinct(list []Project, key func(Project) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range list {
		v := key(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func copyTable(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}

package types

import "strings"

// Location is a geocoded place: the canonical name returned by the geocoder
// and the coordinates used for every weather lookup
type Location struct {
	Name        string `json:"name"`
	Coordinates Coords `json:"coordinates"`
	Country     string `json:"country,omitempty"`
	Admin1      string `json:"admin1,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// DisplayName joins name, region and country, skipping blanks and repeats
func (l Location) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Name, l.Admin1, l.Country} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(parts) > 0 && parts[len(parts)-1] == p {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

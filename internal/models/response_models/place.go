package response_models

type Place struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Tags      []string `json:"tags"`
	Rating    *float64 `json:"rating"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

// HasTag reports whether the place carries the exact tag.
func (p Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GeocodedPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SelectionResponse struct {
	Places []Place  `json:"places"`
	Map    *MapView `json:"map,omitempty"`
}

type Country struct {
	Name         string   `json:"name"`
	Destinations []string `json:"destinations"`
}

package response_models

type MapMarker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

// MapView describes a map widget: where to centre it and which markers to draw.
type MapView struct {
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom"`
	Markers []MapMarker `json:"markers"`
}

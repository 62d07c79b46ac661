package domain

// Destination is a place a video was shot at. Slug is derived from the name
// (lowercase, hyphenated), unique across the catalog, and used for routing.
type Destination struct {
	ID       string
	Name     string
	Country  string
	Slug     string
	Lat      float64
	Lng      float64
	ImageURL string
}

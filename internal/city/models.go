package city

import "time"

// City is a selectable scope with a reference coordinate. Every distance in
// a city's place list is computed from that one coordinate.
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
}

// Package entity contains the core business objects of the project.
package entity

// Location is a point on the globe in WGS 84 degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`  // Degrees, -90..90.
	Longitude float64 `json:"longitude"` // Degrees, -180..180.
}

// Opportunity is a broadcast record consumed from the opportunity queue.
// It is immutable once received: one message, one processing pass, then
// discarded. The location is a pointer so a payload that omits it stays
// distinguishable from one at (0, 0).
type Opportunity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    *Location `json:"location,omitempty"`
}

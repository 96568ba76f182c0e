package entity

// Location is an unordered {city, state} pair. The ordering of a location
// list is significant for display: the first entry is the primary one.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

package models

// User is an account that owns favorites. The password hash lives only in
// the store and is never part of the serialized shape.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// Character is a reference record; the favorites subsystem never mutates it.
type Character struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
}

// Location is a reference record.
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Episode is a reference record. Name is stored but excluded from the wire
// shape to match the public API contract.
type Episode struct {
	ID      int64  `json:"id"`
	Name    string `json:"-"`
	AirDate string `json:"air_date"`
	Episode string `json:"episode"`
}

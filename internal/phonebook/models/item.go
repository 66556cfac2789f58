package models

import "time"

// Item is a persisted phone book entry. The (FirstName, PhoneNumber) pair is
// unique across all items; the service enforces this before insert/update so
// clients get a friendly message instead of a storage constraint violation.
type Item struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	CountryCode string
	TimeZone    string
	InsertedOn  time.Time
	UpdatedOn   time.Time
}

// Fields carries the mutable attributes of an item, as received from clients.
type Fields struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	CountryCode string
	TimeZone    string
}

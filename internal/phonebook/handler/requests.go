package handler

import (
	"net/http"
	"strconv"

	"phonebook/internal/phonebook/models"
	"phonebook/internal/phonebook/store"
)

// itemRequest is the JSON body for create and update.
type itemRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	CountryCode string `json:"countryCode"`
	TimeZone    string `json:"timeZone"`
}

func (r itemRequest) fields() models.Fields {
	return models.Fields{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		CountryCode: r.CountryCode,
		TimeZone:    r.TimeZone,
	}
}

// listQueryFromRequest reads limit/offset/searchPhrase query parameters.
// Unparsable numbers fall back to defaults; clamping happens in the store.
func listQueryFromRequest(r *http.Request) store.ListQuery {
	q := store.ListQuery{
		SearchPhrase: r.URL.Query().Get("searchPhrase"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			q.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			q.Offset = offset
		}
	}
	return q
}

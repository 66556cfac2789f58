package handler

import (
	"phonebook/internal/phonebook/models"
	"phonebook/internal/phonebook/store"
)

// envelope is the mutation response body. The legacy API answered business
// failures with HTTP 200 and status "fail"; that contract is preserved.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successEnvelope(message string) envelope {
	return envelope{Status: "success", Message: message}
}

func failEnvelope(message string) envelope {
	return envelope{Status: "fail", Message: message}
}

// itemResource mirrors the legacy serializer's field labels, including the
// "County Code" spelling clients already depend on.
type itemResource struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"First Name"`
	LastName    string `json:"Last Name"`
	PhoneNumber string `json:"Phone Number"`
	CountryCode string `json:"County Code"`
	TimeZone    string `json:"Time Zone"`
}

func toResource(item *models.Item) itemResource {
	return itemResource{
		ID:          item.ID,
		FirstName:   item.FirstName,
		LastName:    item.LastName,
		PhoneNumber: item.PhoneNumber,
		CountryCode: item.CountryCode,
		TimeZone:    item.TimeZone,
	}
}

type usedParameters struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type listMeta struct {
	Total          int            `json:"total"`
	UsedParameters usedParameters `json:"usedParameters"`
}

type listResponse struct {
	Data []itemResource `json:"data"`
	Meta listMeta       `json:"meta"`
}

type viewResponse struct {
	Data itemResource `json:"data"`
}

func toListResponse(items []*models.Item, total int, query store.ListQuery) listResponse {
	resources := make([]itemResource, 0, len(items))
	for _, item := range items {
		resources = append(resources, toResource(item))
	}
	return listResponse{
		Data: resources,
		Meta: listMeta{
			Total: total,
			UsedParameters: usedParameters{
				Limit:  query.Limit,
				Offset: query.Offset,
			},
		},
	}
}

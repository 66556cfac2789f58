// Package reference fetches and caches the upstream reference lists (country
// codes, time zones) used to validate phone book payloads. Lists are fetched
// lazily and cached with a TTL; a fetch failure is surfaced to callers rather
// than letting unverifiable data through.
package reference

import "errors"

// ListName identifies a cached reference list.
type ListName string

const (
	ListCountries ListName = "countriesList"
	ListTimeZones ListName = "timeZonesList"
)

var (
	// ErrFetch indicates the upstream API could not be reached or answered
	// with a non-success status.
	ErrFetch = errors.New("reference fetch failed")

	// ErrMalformedResponse indicates the upstream answered but the body did
	// not match the expected {status, result} envelope.
	ErrMalformedResponse = errors.New("malformed reference response")

	// ErrUnknownList indicates a list name this package does not serve.
	ErrUnknownList = errors.New("unknown reference list")
)

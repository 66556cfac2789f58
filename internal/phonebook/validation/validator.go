// Package validation checks phone book payloads field by field, collecting
// every violation instead of stopping at the first. Country codes and time
// zones are checked for membership in the remotely sourced reference lists.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"phonebook/internal/phonebook/models"
	"phonebook/internal/reference"
)

// Kind classifies a single field violation.
type Kind string

const (
	KindPresence         Kind = "presence"
	KindFormat           Kind = "format"
	KindInvalidReference Kind = "invalid_reference"
)

// Violation is one failed field rule.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// Violations collects all failed rules for a payload. An empty set means the
// payload is acceptable.
type Violations []Violation

// Summary renders the violations the way the legacy API did: a single
// "Reasons: ..." string with entries separated by semicolons.
func (v Violations) Summary() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Message
	}
	return "Reasons: " + strings.Join(parts, "; ")
}

// HasField reports whether any violation concerns the named field.
func (v Violations) HasField(field string) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}
	return false
}

var phoneNumberPattern = regexp.MustCompile(`^\+12 \d{3} \d{9}$`)

// Lists resolves reference list membership sets. *reference.Cache satisfies it.
type Lists interface {
	Lookup(ctx context.Context, list reference.ListName) (map[string]struct{}, error)
}

// Validator applies the phone book field rules.
type Validator struct {
	lists Lists
}

// New constructs a Validator over the given reference lists.
func New(lists Lists) *Validator {
	return &Validator{lists: lists}
}

// Validate evaluates every field rule independently and returns the collected
// violations. A non-nil error means the reference lists could not be resolved;
// in that case the payload must be rejected, but the failure is an upstream
// availability problem, not a content violation.
func (v *Validator) Validate(ctx context.Context, fields models.Fields) (Violations, error) {
	countries, err := v.lists.Lookup(ctx, reference.ListCountries)
	if err != nil {
		return nil, fmt.Errorf("resolve country codes: %w", err)
	}
	timeZones, err := v.lists.Lookup(ctx, reference.ListTimeZones)
	if err != nil {
		return nil, fmt.Errorf("resolve time zones: %w", err)
	}

	var violations Violations

	if strings.TrimSpace(fields.FirstName) == "" {
		violations = append(violations, Violation{
			Field:   "firstName",
			Kind:    KindPresence,
			Message: "The first name is required.",
		})
	}

	if strings.TrimSpace(fields.LastName) == "" {
		violations = append(violations, Violation{
			Field:   "lastName",
			Kind:    KindPresence,
			Message: "The last name is required.",
		})
	}

	switch {
	case strings.TrimSpace(fields.PhoneNumber) == "":
		violations = append(violations, Violation{
			Field:   "phoneNumber",
			Kind:    KindPresence,
			Message: "The phone number is required.",
		})
	case !phoneNumberPattern.MatchString(fields.PhoneNumber):
		violations = append(violations, Violation{
			Field:   "phoneNumber",
			Kind:    KindFormat,
			Message: "The phone number should be in the proper format. E.g. +12 223 444224455",
		})
	}

	if _, ok := countries[fields.CountryCode]; !ok {
		violations = append(violations, Violation{
			Field:   "countryCode",
			Kind:    KindInvalidReference,
			Message: "Incorrect country code",
		})
	}

	if _, ok := timeZones[fields.TimeZone]; !ok {
		violations = append(violations, Violation{
			Field:   "timeZone",
			Kind:    KindInvalidReference,
			Message: "Incorrect time zone",
		})
	}

	return violations, nil
}

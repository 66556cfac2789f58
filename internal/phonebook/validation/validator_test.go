package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/phonebook/models"
	"phonebook/internal/reference"
)

type staticLists struct {
	countries map[string]struct{}
	timeZones map[string]struct{}
	err       error
}

func (s staticLists) Lookup(_ context.Context, list reference.ListName) (map[string]struct{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	if list == reference.ListCountries {
		return s.countries, nil
	}
	return s.timeZones, nil
}

func newValidator() *Validator {
	return New(staticLists{
		countries: map[string]struct{}{"US": {}, "CA": {}},
		timeZones: map[string]struct{}{"UTC": {}, "Europe/Riga": {}},
	})
}

func validFields() models.Fields {
	return models.Fields{
		FirstName:   "Alice",
		LastName:    "Smith",
		PhoneNumber: "+12 223 444224455",
		CountryCode: "US",
		TimeZone:    "UTC",
	}
}

func TestValidatePassesCleanPayload(t *testing.T) {
	violations, err := newValidator().Validate(context.Background(), validFields())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidatePresenceRules(t *testing.T) {
	fields := validFields()
	fields.FirstName = ""
	fields.PhoneNumber = ""

	violations, err := newValidator().Validate(context.Background(), fields)
	require.NoError(t, err)

	assert.True(t, violations.HasField("firstName"))
	assert.True(t, violations.HasField("phoneNumber"))
	for _, violation := range violations {
		if violation.Field == "firstName" || violation.Field == "phoneNumber" {
			assert.Equal(t, KindPresence, violation.Kind)
		}
	}
}

func TestValidatePhoneNumberFormat(t *testing.T) {
	bad := []string{
		"12345",
		"+1 223 444224455",
		"+12 22 444224455",
		"+12 223 44422445",
		"+12 223 4442244556",
		"+12223444224455",
	}
	for _, number := range bad {
		fields := validFields()
		fields.PhoneNumber = number

		violations, err := newValidator().Validate(context.Background(), fields)
		require.NoError(t, err)
		require.True(t, violations.HasField("phoneNumber"), "expected violation for %q", number)
		assert.Equal(t, KindFormat, violations[0].Kind)
	}

	fields := validFields()
	fields.PhoneNumber = "+12 223 444224455"
	violations, err := newValidator().Validate(context.Background(), fields)
	require.NoError(t, err)
	assert.False(t, violations.HasField("phoneNumber"))
}

func TestValidateReferenceMembership(t *testing.T) {
	fields := validFields()
	fields.CountryCode = "FR"
	fields.TimeZone = "Mars/Olympus"

	violations, err := newValidator().Validate(context.Background(), fields)
	require.NoError(t, err)

	require.Len(t, violations, 2)
	assert.Equal(t, KindInvalidReference, violations[0].Kind)
	assert.Equal(t, KindInvalidReference, violations[1].Kind)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	violations, err := newValidator().Validate(context.Background(), models.Fields{})
	require.NoError(t, err)

	// firstName, lastName, phoneNumber, countryCode, timeZone all fail at once.
	assert.Len(t, violations, 5)
	assert.Equal(t,
		"Reasons: The first name is required.; The last name is required.; "+
			"The phone number is required.; Incorrect country code; Incorrect time zone",
		violations.Summary(),
	)
}

func TestValidateReferenceUnavailable(t *testing.T) {
	v := New(staticLists{err: errors.New("upstream down")})

	_, err := v.Validate(context.Background(), validFields())
	require.Error(t, err, "unverifiable payloads must be rejected, not passed")
}

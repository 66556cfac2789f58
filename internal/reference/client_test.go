package reference

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, countriesBody, timezonesBody string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		switch r.URL.Path {
		case "/countries":
			_, _ = w.Write([]byte(countriesBody))
		case "/timezones":
			_, _ = w.Write([]byte(timezonesBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchListSuccess(t *testing.T) {
	upstream := newUpstream(t,
		`{"status":"success","result":["US","CA","GB"]}`,
		`{"status":"success","result":["UTC","Europe/Riga"]}`,
		http.StatusOK,
	)
	client := NewHTTPClient(upstream.URL, nil)

	countries, err := client.FetchList(context.Background(), ListCountries)
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "CA", "GB"}, countries)

	zones, err := client.FetchList(context.Background(), ListTimeZones)
	require.NoError(t, err)
	assert.Equal(t, []string{"UTC", "Europe/Riga"}, zones)
}

func TestFetchListUpstreamFailure(t *testing.T) {
	upstream := newUpstream(t, `oops`, `oops`, http.StatusInternalServerError)
	client := NewHTTPClient(upstream.URL, nil)

	_, err := client.FetchList(context.Background(), ListCountries)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchListUnreachableUpstream(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", nil)

	_, err := client.FetchList(context.Background(), ListCountries)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchListMalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `<html>maintenance</html>`},
		{"status fail", `{"status":"fail","result":["US"]}`},
		{"result missing", `{"status":"success"}`},
		{"result not array", `{"status":"success","result":{"US":"United States"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upstream := newUpstream(t, tc.body, tc.body, http.StatusOK)
			client := NewHTTPClient(upstream.URL, nil)

			_, err := client.FetchList(context.Background(), ListCountries)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestFetchListUnknownList(t *testing.T) {
	client := NewHTTPClient("http://example.invalid", nil)

	_, err := client.FetchList(context.Background(), ListName("phonesList"))
	assert.ErrorIs(t, err, ErrUnknownList)
}

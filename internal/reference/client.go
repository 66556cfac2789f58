package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client fetches a reference list from upstream.
type Client interface {
	FetchList(ctx context.Context, list ListName) ([]string, error)
}

// HTTPClient queries the remote reference-data API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client against the given base URL. Passing a nil
// http.Client uses http.DefaultClient; deployments inject one with timeouts.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, http: httpClient}
}

// listEnvelope is the upstream response shape.
type listEnvelope struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

func (c *HTTPClient) endpoint(list ListName) (string, error) {
	switch list {
	case ListCountries:
		return c.baseURL + "/countries", nil
	case ListTimeZones:
		return c.baseURL + "/timezones", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownList, list)
	}
}

// FetchList retrieves the named list. Transport failures and non-2xx answers
// wrap ErrFetch; envelope violations wrap ErrMalformedResponse.
func (c *HTTPClient) FetchList(ctx context.Context, list ListName) ([]string, error) {
	url, err := c.endpoint(list)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Status != "success" {
		return nil, fmt.Errorf("%w: status %q", ErrMalformedResponse, envelope.Status)
	}
	if len(envelope.Result) == 0 {
		return nil, fmt.Errorf("%w: result missing", ErrMalformedResponse)
	}

	var values []string
	if err := json.Unmarshal(envelope.Result, &values); err != nil {
		return nil, fmt.Errorf("%w: result is not an array of strings", ErrMalformedResponse)
	}
	return values, nil
}

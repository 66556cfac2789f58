package reference

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/pkg/platform/sentinel"
)

type fakeClient struct {
	calls  atomic.Int32
	values []string
	err    error
}

func (f *fakeClient) FetchList(_ context.Context, _ ListName) ([]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.values, nil
}

func TestLookupFetchesLazilyAndCaches(t *testing.T) {
	client := &fakeClient{values: []string{"US", "CA"}}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(client, time.Hour, WithCacheClock(func() time.Time { return now }))

	assert.Equal(t, int32(0), client.calls.Load(), "nothing fetched before first lookup")

	set, err := cache.Lookup(context.Background(), ListCountries)
	require.NoError(t, err)
	assert.Contains(t, set, "US")
	assert.Contains(t, set, "CA")
	assert.NotContains(t, set, "FR")
	assert.Equal(t, int32(1), client.calls.Load())

	// Second lookup within TTL hits the cache.
	_, err = cache.Lookup(context.Background(), ListCountries)
	require.NoError(t, err)
	assert.Equal(t, int32(1), client.calls.Load(), "lookup within TTL must not refetch")
}

func TestLookupRefetchesAfterTTL(t *testing.T) {
	client := &fakeClient{values: []string{"US"}}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(client, time.Hour, WithCacheClock(func() time.Time { return now }))

	_, err := cache.Lookup(context.Background(), ListCountries)
	require.NoError(t, err)
	require.Equal(t, int32(1), client.calls.Load())

	now = now.Add(time.Hour + time.Second)

	_, err = cache.Lookup(context.Background(), ListCountries)
	require.NoError(t, err)
	assert.Equal(t, int32(2), client.calls.Load(), "stale entry must trigger a refetch")
}

func TestLookupPropagatesFetchFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	cache := NewCache(client, time.Hour)

	_, err := cache.Lookup(context.Background(), ListCountries)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestLookupKeepsListsIndependent(t *testing.T) {
	client := &fakeClient{values: []string{"UTC"}}
	cache := NewCache(client, time.Hour)

	_, err := cache.Lookup(context.Background(), ListCountries)
	require.NoError(t, err)
	_, err = cache.Lookup(context.Background(), ListTimeZones)
	require.NoError(t, err)

	assert.Equal(t, int32(2), client.calls.Load(), "each list is fetched separately")
}

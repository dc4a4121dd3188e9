package flags

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	flags map[string][]FeatureFlag
	err   error
	calls int
}

func (s *stubRepo) FetchFlags(ctx context.Context, countryCode string) ([]FeatureFlag, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.flags[CacheKey(countryCode)], nil
}

func (s *stubRepo) ListAll(ctx context.Context) ([]FeatureFlag, error) { return nil, nil }
func (s *stubRepo) Upsert(ctx context.Context, f *FeatureFlag) error   { return nil }

func (s *stubRepo) Delete(ctx context.Context, key, countryCode string) error { return nil }

func strPtr(s string) *string { return &s }

func newTestCache(repo Repository, ttlSeconds int) (*Cache, *time.Time) {
	c := NewCache(repo, ttlSeconds)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetFlagsServesCachedWithinTTL(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"ES": {{Key: "chat", CountryCode: strPtr("ES"), Enabled: true}},
	}}
	cache, now := newTestCache(repo, 300)

	res := cache.GetFlags(context.Background(), "ES")
	require.False(t, res.Stale)
	require.False(t, res.Degraded)
	require.Equal(t, 1, repo.calls)

	// Within the TTL the store is not queried again.
	*now = now.Add(299 * time.Second)
	res = cache.GetFlags(context.Background(), "ES")
	require.Equal(t, 1, repo.calls)
	require.Len(t, res.Flags, 1)

	// Past the TTL a fresh fetch happens.
	*now = now.Add(2 * time.Second)
	res = cache.GetFlags(context.Background(), "ES")
	require.Equal(t, 2, repo.calls)
	require.False(t, res.Stale)
}

func TestGetFlagsServesStaleOnStoreFailure(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"ES": {{Key: "events", CountryCode: strPtr("ES"), Enabled: true}},
	}}
	cache, now := newTestCache(repo, 300)

	first := cache.GetFlags(context.Background(), "ES")
	require.False(t, first.Stale)

	repo.err = errors.New("connection refused")
	*now = now.Add(10 * time.Minute)

	res := cache.GetFlags(context.Background(), "ES")
	require.True(t, res.Stale)
	require.False(t, res.Degraded)
	require.Equal(t, first.Flags, res.Flags)
}

func TestGetFlagsDefaultsWhenNeverCached(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	cache, _ := newTestCache(repo, 300)

	res := cache.GetFlags(context.Background(), "ES")
	require.True(t, res.Degraded)
	require.False(t, res.Stale)
	require.Equal(t, DefaultFlags, res.Flags)
}

func TestGetFlagsRecoversAfterFailure(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"ES": {{Key: "chat", CountryCode: strPtr("ES"), Enabled: true}},
	}}
	cache, now := newTestCache(repo, 300)

	cache.GetFlags(context.Background(), "ES")

	repo.err = errors.New("down")
	*now = now.Add(10 * time.Minute)
	res := cache.GetFlags(context.Background(), "ES")
	require.True(t, res.Stale)

	repo.err = nil
	res = cache.GetFlags(context.Background(), "ES")
	require.False(t, res.Stale)
}

func TestGetFlagsSeparateKeysPerCountry(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"ES":     {{Key: "chat", CountryCode: strPtr("ES"), Enabled: true}},
		"global": {{Key: "chat", Enabled: false}},
	}}
	cache, _ := newTestCache(repo, 300)

	cache.GetFlags(context.Background(), "ES")
	cache.GetFlags(context.Background(), "")
	require.Equal(t, 2, repo.calls)

	cache.GetFlags(context.Background(), "es") // normalizes to the ES key
	require.Equal(t, 2, repo.calls)
}

func TestIsEnabledCountryRowBeatsGlobal(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"BR": {
			{Key: "chat", Enabled: false},
			{Key: "chat", CountryCode: strPtr("BR"), Enabled: true},
		},
	}}
	cache, _ := newTestCache(repo, 300)

	require.True(t, cache.IsEnabled(context.Background(), "chat", "BR"))
}

func TestIsEnabledGlobalRowApplies(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"PE": {{Key: "events", Enabled: true}},
	}}
	cache, _ := newTestCache(repo, 300)

	require.True(t, cache.IsEnabled(context.Background(), "events", "PE"))
	require.False(t, cache.IsEnabled(context.Background(), "unknown_flag", "PE"))
}

func TestClearForcesRefetch(t *testing.T) {
	repo := &stubRepo{flags: map[string][]FeatureFlag{
		"ES": {{Key: "chat", CountryCode: strPtr("ES"), Enabled: true}},
	}}
	cache, _ := newTestCache(repo, 300)

	cache.GetFlags(context.Background(), "ES")
	require.Equal(t, 1, repo.calls)

	cache.Clear("ES")
	cache.GetFlags(context.Background(), "ES")
	require.Equal(t, 2, repo.calls)

	// Empty code flushes everything.
	cache.Clear("")
	cache.GetFlags(context.Background(), "ES")
	require.Equal(t, 3, repo.calls)
}

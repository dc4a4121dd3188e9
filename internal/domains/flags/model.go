package flags

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeatureFlag is one toggle row. A nil CountryCode means the flag is
// global; a country-specific row overrides the global row for that
// country only.
type FeatureFlag struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	CountryCode *string   `json:"country_code"`
	Enabled     bool      `json:"enabled"`
	Notes       string    `json:"notes,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsGlobal reports whether the flag applies to every country.
func (f FeatureFlag) IsGlobal() bool {
	return f.CountryCode == nil || *f.CountryCode == ""
}

// DefaultFlags is served when the store is unreachable and no cached
// value exists. Conservative defaults: interactive features stay off.
var DefaultFlags = []FeatureFlag{
	{Key: "events", Enabled: true},
	{Key: "decision_form", Enabled: true},
	{Key: "chat", Enabled: false},
	{Key: "study_progress", Enabled: false},
}

// GlobalCacheKey is the cache key used when no country is requested.
const GlobalCacheKey = "global"

// CacheKey normalizes a country code into a cache key.
func CacheKey(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return GlobalCacheKey
	}
	return code
}

// Result is the outcome of a flag lookup. Stale marks a cached value
// served past its TTL because a refresh failed; Degraded marks the
// built-in default set.
type Result struct {
	Flags    []FeatureFlag `json:"flags"`
	Stale    bool          `json:"stale,omitempty"`
	Degraded bool          `json:"degraded,omitempty"`
}

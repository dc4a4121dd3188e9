package flags

import "context"

// Repository is the data access contract for feature flag rows.
type Repository interface {
	// FetchFlags returns flags whose country_code is NULL or equals
	// countryCode; only the NULL rows when countryCode is empty.
	FetchFlags(ctx context.Context, countryCode string) ([]FeatureFlag, error)

	ListAll(ctx context.Context) ([]FeatureFlag, error)
	Upsert(ctx context.Context, flag *FeatureFlag) error
	Delete(ctx context.Context, key string, countryCode string) error
}

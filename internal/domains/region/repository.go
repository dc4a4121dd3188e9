package region

import "context"

// Repository is the data access contract for regions and cities.
type Repository interface {
	// ListCodes returns every region code for country validation.
	ListCodes(ctx context.Context) ([]string, error)

	ListRegions(ctx context.Context) ([]Region, error)
	GetRegion(ctx context.Context, code string) (*Region, error)
	UpsertRegion(ctx context.Context, r *Region) error
	DeleteRegion(ctx context.Context, code string) error

	ListCities(ctx context.Context, regionCode string) ([]City, error)
	CreateCity(ctx context.Context, c *City) (*City, error)
	DeleteCity(ctx context.Context, id int64) error
}

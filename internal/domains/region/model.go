package region

import "time"

// Region is one row of the reference region list in the hosted store.
// Locale is the UI locale served to visitors from that country.
type Region struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// City belongs to a region and backs the church directory filters.
type City struct {
	ID         int64     `json:"id"`
	RegionCode string    `json:"region_code"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// Resolution is the outcome of resolving a visitor's country and locale.
// Degraded is set when the hardcoded defaults stepped in: the fallback
// region list was used for validation, or no usable country was found at
// all.
type Resolution struct {
	CountryCode string `json:"country_code"`
	Locale      string `json:"locale"`
	Degraded    bool   `json:"degraded"`
}

// GeoHeaders is the fixed priority order for geolocation headers: the
// platform edge header first, then the CDN header, then the two custom
// fallbacks.
var GeoHeaders = []string{
	"X-Vercel-IP-Country",
	"CF-IPCountry",
	"X-Country-Code",
	"X-Geo-Country",
}

// FallbackCountryCodes is the hardcoded validation list used when the
// regions table cannot be queried. Availability wins over strictness
// here: a stale list beats failing the request.
var FallbackCountryCodes = []string{
	"ES", "MX", "AR", "CO", "PE", "VE", "CL", "EC", "GT", "CU",
	"BO", "DO", "HN", "PY", "SV", "NI", "CR", "PA", "UY", "PT",
	"BR",
}

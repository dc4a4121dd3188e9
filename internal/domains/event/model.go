package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a conference, concert or outreach shown on the events page.
type Event struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	StartsAt    time.Time        `json:"starts_at"`
	EndsAt      *time.Time       `json:"ends_at,omitempty"`
	RegionCode  string           `json:"region_code"`
	City        string           `json:"city"`
	Venue       string           `json:"venue"`
	CoverURL    string           `json:"cover_url,omitempty"`
	// Fee is nil for free events. Stored as NUMERIC, never float.
	Fee       *decimal.Decimal `json:"fee,omitempty"`
	Currency  string           `json:"currency,omitempty"`
	Published bool             `json:"published"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Filter narrows event listings. Empty fields match everything.
type Filter struct {
	RegionCode    string
	UpcomingOnly  bool
	PublishedOnly bool
}

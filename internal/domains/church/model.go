package church

import (
	"time"

	"github.com/google/uuid"
)

// Church is a partner congregation shown in the church finder.
type Church struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RegionCode   string    `json:"region_code"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	Pastor       string    `json:"pastor,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	ServiceTimes []string  `json:"service_times"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter narrows church finder results. Empty fields match everything.
type Filter struct {
	RegionCode string
	City       string
}

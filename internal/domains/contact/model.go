package contact

import (
	"time"

	"github.com/google/uuid"
)

// Decision kinds accepted by the decision form.
const (
	DecisionFirstTime    = "first_time"
	DecisionRecommitment = "recommitment"
	DecisionPrayer       = "prayer"
	DecisionOther        = "other"
)

var DecisionKinds = []string{DecisionFirstTime, DecisionRecommitment, DecisionPrayer, DecisionOther}

// Message is a contact form submission.
type Message struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CountryCode string    `json:"country_code"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	VisitorID   string    `json:"visitor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Decision is a decision form submission (salvation, recommitment,
// prayer request). These get a followup email and are exported for the
// followup team.
type Decision struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CountryCode string    `json:"country_code"`
	Locale      string    `json:"locale"`
	Message     string    `json:"message,omitempty"`
	VisitorID   string    `json:"visitor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

package email

import "context"

// ContactNotificationData carries a contact form submission to the
// ministry team inbox.
type ContactNotificationData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// DecisionFollowupData carries a decision form submission. The followup
// goes to the person who submitted the form, with a copy to the team.
type DecisionFollowupData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	Kind        string `json:"kind"`
	Locale      string `json:"locale"`
}

type EmailService interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
	SendDecisionFollowup(ctx context.Context, data DecisionFollowupData) error
}

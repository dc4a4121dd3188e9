package shared

// Asynq task type names. Kept here so the API (producer) and the worker
// (consumer) agree without importing each other's domains.
const (
	TypeSendContactNotification = "contact:send_notification"
	TypeSendDecisionFollowup    = "contact:send_decision_followup"
	TypePruneChatSessions       = "chat:prune_sessions"
)

// Queue names, highest priority first.
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

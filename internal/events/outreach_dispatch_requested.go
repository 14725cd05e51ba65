package events

import "time"

const (
	OutreachDispatchTopic          = "wsc.outreach.dispatch.v1"
	OutreachDispatchRequestedEvent = "outreach.dispatch.requested"
)

// OutreachDispatchRequested asks the delivery consumer to push one outreach
// log to the automation webhook.
type OutreachDispatchRequested struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	LogID      string    `json:"log_id"`
	EntryID    string    `json:"empresa_cobranca_id"`
	CompanyID  string    `json:"empresa_id"`
	Period     string    `json:"competencia"`
	OccurredAt time.Time `json:"occurred_at"`
}

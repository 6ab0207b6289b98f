// Package events publishes ledger change events for downstream consumers.
// Publishing is best-effort: failures are logged by callers, never
// propagated into the write path.
package events

// Topics for ledger change events.
const (
	TopicExpenseCreated    = "expense.created"
	TopicSettlementCreated = "settlement.created"
)

// Publisher publishes an event payload to a topic.
type Publisher interface {
	Publish(topic string, event any) error
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

// Publish discards the event.
func (NopPublisher) Publish(string, any) error { return nil }

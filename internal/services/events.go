package services

import "log"

// EventPublisher publishes entity lifecycle events (user.created,
// store.deleted, ...) after successful mutations.
type EventPublisher interface {
	PublishEntityEvent(event string, payload any) error
}

// publishEvent publishes best-effort: a nil publisher is a no-op and a
// publish failure is logged, never surfaced to the caller.
func publishEvent(pub EventPublisher, event string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.PublishEntityEvent(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}

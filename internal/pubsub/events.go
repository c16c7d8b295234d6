// Package pubsub provides a small generic publish/subscribe broker used to
// fan out log lines and story file changes to the Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType classifies a published event.
type EventType string

const (
	// LoggedEvent carries a formatted log line.
	LoggedEvent EventType = "logged"
	// ChangedEvent signals that a watched file changed on disk.
	ChangedEvent EventType = "changed"
	// FailedEvent signals that a producer hit an error it could not recover from.
	FailedEvent EventType = "failed"
)

// Event is a published value with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher accepts events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

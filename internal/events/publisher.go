package events

import (
	"sort"

	"github.com/alexisbeaulieu97/maquette/internal/logger"
)

// Publisher is the process-wide broadcast channel for library events.
// It is the transport behind the registry's change notifications; the
// subscriber list on the registry itself is the core contract.
type Publisher interface {
	Publish(event string, payload map[string]any)
}

// LoggingPublisher emits each event as a structured log entry.
type LoggingPublisher struct {
	log *logger.Logger
}

// NewLoggingPublisher creates a publisher that writes events through log.
func NewLoggingPublisher(log *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{log: log}
}

// Publish renders the event as a structured log entry with payload keys
// in deterministic order.
func (p *LoggingPublisher) Publish(event string, payload map[string]any) {
	if p == nil || p.log == nil {
		return
	}

	fields := map[string]any{"event": event}
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields[key] = payload[key]
	}

	p.log.WithFields(fields).Info("event published")
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(string, map[string]any) {}

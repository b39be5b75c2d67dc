// Package sink provides the buffered inbox that decouples event fan-out
// from individual connection write speed.
package sink

import (
	"context"
	"log/slog"

	"jobtalk/domain/event"
)

// ConnectionSink buffers events for one live connection. The connection's
// write pump drains Events; Consume is called by the gateway's fan-out.
type ConnectionSink struct {
	Events chan event.DomainEvent
	log    *slog.Logger
}

func NewConnectionSink(log *slog.Logger, bufferSize int) *ConnectionSink {
	return &ConnectionSink{
		Events: make(chan event.DomainEvent, bufferSize),
		log:    log,
	}
}

// Consume hands the event to the connection without blocking the caller.
// A full buffer means the connection cannot keep up; the event is dropped
// and logged rather than stalling delivery to other connections.
func (s *ConnectionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.log.Warn("connection buffer full, dropping event", "event", e.Name())
		return nil
	}
}

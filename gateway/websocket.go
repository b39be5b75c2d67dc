// Package gateway is the live-connection protocol layer: it authenticates
// connections, keeps each user's broadcast group in sync with the registry,
// accepts send requests and fans persisted messages out to the receiver's
// connections.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jobtalk/contract"
	"jobtalk/domain"
	"jobtalk/domain/event"
	"jobtalk/errors"
	"jobtalk/runtime"
	"jobtalk/services"
	"jobtalk/sink"
)

const (
	pingInterval   = 25 * time.Second
	pongTimeout    = 60 * time.Second
	writeTimeout   = 10 * time.Second
	maxMessageSize = 64 * 1024
)

// clientEnvelope is what connections send: a send_message or typing intent.
type clientEnvelope struct {
	Type          string  `json:"type"`
	ReceiverID    string  `json:"receiverId"`
	Message       string  `json:"message"`
	JobID         *string `json:"jobId,omitempty"`
	ApplicationID *string `json:"applicationId,omitempty"`
	IsTyping      bool    `json:"isTyping"`
}

// serverEnvelope is what connections receive.
type serverEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type Gateway struct {
	log        *slog.Logger
	identity   contract.IdentityProvider
	chat       services.IChatService
	registry   *runtime.Registry
	upgrader   websocket.Upgrader
	bufferSize int
}

func NewGateway(log *slog.Logger, identity contract.IdentityProvider,
	chat services.IChatService, registry *runtime.Registry, bufferSize int) *Gateway {
	return &Gateway{
		log:      log,
		identity: identity,
		chat:     chat,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		bufferSize: bufferSize,
	}
}

// Handle authenticates and upgrades one connection, joins it to the user's
// broadcast group, and blocks until the client disconnects or a network
// error occurs. Leaving the registry on exit is the only side effect of a
// disconnect.
func (g *Gateway) Handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}

	identity, err := g.identity.ResolveCredential(c.Request.Context(), token)
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"message": err.Error()})
		return
	}
	if identity.Blocked {
		c.JSON(errors.MapToHTTPStatus(errors.ErrUserBlocked),
			gin.H{"message": errors.ErrUserBlocked.Error()})
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.log.Warn("websocket upgrade failed", "user", identity.UserID, "error", err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	connSink := sink.NewConnectionSink(g.log, g.bufferSize)
	g.registry.Join(identity.UserID, connSink)
	g.log.Info("user connected", "user", identity.UserID,
		"connections", g.registry.Connections(identity.UserID))
	defer func() {
		g.registry.Leave(identity.UserID, connSink)
		_ = conn.Close()
		g.log.Info("user disconnected", "user", identity.UserID)
	}()

	go g.writePump(ctx, conn, connSink)
	g.readLoop(ctx, conn, identity, connSink)
}

// readLoop parses and dispatches client envelopes until the connection
// drops. The pong handler keeps the read deadline moving for live clients.
func (g *Gateway) readLoop(ctx context.Context, conn *websocket.Conn,
	identity domain.Identity, own *sink.ConnectionSink) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		var envelope clientEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.Warn("connection read failed", "user", identity.UserID, "error", err)
			}
			return
		}

		switch envelope.Type {
		case "send_message":
			g.handleSend(ctx, identity, envelope, own)
		case "typing":
			// Ephemeral, best-effort, never persisted.
			g.fanout(ctx, envelope.ReceiverID,
				event.TypingNotified{UserID: identity.UserID, IsTyping: envelope.IsTyping})
		default:
			_ = own.Consume(ctx, event.DeliveryError{
				Reason: fmt.Sprintf("unknown event type %q", envelope.Type),
			})
		}
	}
}

// handleSend runs the full send pipeline. Failures are reported to the
// issuing connection only; a persisted message is always fanned out.
func (g *Gateway) handleSend(ctx context.Context, identity domain.Identity,
	envelope clientEnvelope, own *sink.ConnectionSink) {
	delivered, err := g.chat.SendMessage(ctx, identity, services.SendMessageCommand{
		ReceiverID:    envelope.ReceiverID,
		Body:          envelope.Message,
		JobID:         envelope.JobID,
		ApplicationID: envelope.ApplicationID,
	})
	if err != nil {
		_ = own.Consume(ctx, event.DeliveryError{Reason: err.Error()})
		return
	}

	// Two independent deliveries: every connection in the receiver's group,
	// then the acknowledgment to the issuing connection alone.
	g.fanout(ctx, delivered.ReceiverID, event.MessageReceived{Message: delivered})
	_ = own.Consume(ctx, event.MessageSent{Message: delivered})
}

func (g *Gateway) fanout(ctx context.Context, userID string, e event.DomainEvent) {
	for _, s := range g.registry.Group(userID) {
		if err := s.Consume(ctx, e); err != nil {
			g.log.Warn("fanout delivery failed", "user", userID, "event", e.Name(), "error", err)
		}
	}
}

// writePump is the single writer of the connection. It drains the sink and
// keeps the client alive with pings; closing the connection on exit also
// unblocks the read loop.
func (g *Gateway) writePump(ctx context.Context, conn *websocket.Conn, connSink *sink.ConnectionSink) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-connSink.Events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(toServerEnvelope(e)); err != nil {
				g.log.Warn("failed to push event to connection", "event", e.Name(), "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func toServerEnvelope(e event.DomainEvent) serverEnvelope {
	switch evt := e.(type) {
	case event.MessageReceived:
		return serverEnvelope{Type: evt.Name(), Payload: toMessagePayload(evt.Message)}
	case event.MessageSent:
		return serverEnvelope{Type: evt.Name(), Payload: toMessagePayload(evt.Message)}
	case event.DeliveryError:
		return serverEnvelope{Type: evt.Name(), Payload: ErrorPayload{Message: evt.Reason}}
	case event.TypingNotified:
		return serverEnvelope{Type: evt.Name(), Payload: TypingPayload{UserID: evt.UserID, IsTyping: evt.IsTyping}}
	default:
		return serverEnvelope{Type: e.Name()}
	}
}

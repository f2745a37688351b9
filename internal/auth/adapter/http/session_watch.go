package http

import (
	"context"
	"sync"
	"time"

	"clubsite/internal/shared/eventbus"
	"clubsite/internal/shared/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionWatchHandler streams auth state changes over WebSocket. Consoles
// subscribe once and react to sign-in and sign-out events, including
// sign-outs initiated from other connections.
type SessionWatchHandler struct {
	bus eventbus.EventBusInterface
	log logger.Logger

	mu      sync.RWMutex
	clients map[string]chan sessionChange
}

// sessionChange is the message pushed to watchers.
type sessionChange struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
	At    time.Time   `json:"at"`
}

// NewSessionWatchHandler creates the watch hub and subscribes it to the auth
// events on the bus.
func NewSessionWatchHandler(bus eventbus.EventBusInterface, log logger.Logger) *SessionWatchHandler {
	h := &SessionWatchHandler{
		bus:     bus,
		log:     log.WithComponent("session_watch"),
		clients: make(map[string]chan sessionChange),
	}

	forward := func(ctx context.Context, event eventbus.Event) error {
		h.broadcast(sessionChange{
			Event: event.Type(),
			Data:  event.Data(),
			At:    event.Timestamp(),
		})
		return nil
	}
	bus.Subscribe(eventbus.EventTypeSignedIn, forward)
	bus.Subscribe(eventbus.EventTypeSignedOut, forward)

	return h
}

// RegisterRoutes registers the WebSocket watch endpoint.
func (h *SessionWatchHandler) RegisterRoutes(router fiber.Router) {
	watch := router.Group("/auth")

	watch.Use("/watch", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	watch.Get("/watch", websocket.New(h.handleConnection))
}

func (h *SessionWatchHandler) handleConnection(conn *websocket.Conn) {
	watcherID := uuid.NewString()
	events := make(chan sessionChange, 16)

	h.mu.Lock()
	h.clients[watcherID] = events
	h.mu.Unlock()

	h.log.Info("Session watcher connected", zap.String("watcherID", watcherID))

	defer func() {
		h.mu.Lock()
		delete(h.clients, watcherID)
		h.mu.Unlock()
		close(events)
		h.log.Info("Session watcher disconnected", zap.String("watcherID", watcherID))
	}()

	done := make(chan struct{})

	// Drain incoming frames so close frames are processed; watchers only read.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case change := <-events:
			if err := conn.WriteJSON(change); err != nil {
				h.log.Debug("Failed to write session change",
					zap.String("watcherID", watcherID),
					zap.Error(err))
				return
			}
		}
	}
}

// broadcast fans the change out to all connected watchers. A watcher whose
// buffer is full misses the event rather than blocking the bus.
func (h *SessionWatchHandler) broadcast(change sessionChange) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.clients {
		select {
		case ch <- change:
		default:
			h.log.Warn("Session watcher buffer full, dropping event",
				zap.String("watcherID", id),
				zap.String("event", change.Event))
		}
	}
}

package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/emomoto/auto-recruiter/internal/observability/metrics"
)

// DefaultWelcomeMessage is the placeholder bot activity sent to every new connection.
const DefaultWelcomeMessage = "Recruitment bot has screened 10 profiles."

// ErrHubClosed is returned by Serve once Shutdown has started.
var ErrHubClosed = errors.New("realtime hub is shut down")

// HubOptions configure a Hub. Zero values take the defaults noted per field.
type HubOptions struct {
	WelcomeMessage string        // DefaultWelcomeMessage
	PingInterval   time.Duration // 30s
	PongTimeout    time.Duration // PingInterval * 10 / 9
	WriteTimeout   time.Duration // 10s
	SendBuffer     int           // 16
	Observer       Observer      // LogObserver
	Logger         *slog.Logger
	Clock          func() time.Time
}

// Hub owns every live connection. The gateway reaches connections only through Broadcast.
type Hub struct {
	welcome  []byte
	pumps    pumpConfig
	buffer   int
	observer Observer
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.RWMutex
	conns  map[string]*conn
	closed bool
	active sync.WaitGroup
}

// NewHub constructs a Hub.
func NewHub(opts HubOptions) *Hub {
	msg := opts.WelcomeMessage
	if msg == "" {
		msg = DefaultWelcomeMessage
	}
	welcome, err := encode(NewBotActivity(msg))
	if err != nil {
		// BotActivity always encodes.
		panic(err)
	}

	ping := opts.PingInterval
	if ping <= 0 {
		ping = 30 * time.Second
	}
	pongWait := opts.PongTimeout
	if pongWait <= 0 {
		pongWait = ping * 10 / 9
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	buffer := opts.SendBuffer
	if buffer < 1 {
		buffer = 16
	}
	observer := opts.Observer
	if observer == nil {
		observer = LogObserver{Logger: opts.Logger}
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	return &Hub{
		welcome: welcome,
		pumps: pumpConfig{
			pingInterval: ping,
			pongWait:     pongWait,
			writeTimeout: writeTimeout,
		},
		buffer:   buffer,
		observer: observer,
		logger:   opts.Logger,
		now:      now,
		conns:    make(map[string]*conn),
	}
}

func (h *Hub) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

// Serve runs one upgraded connection until it is Disconnected and returns the reason.
// The welcome event is the first frame the client receives; Observer.Connected fires
// before any pump starts and Observer.Disconnected after both have stopped.
// Serve closes ws before returning.
func (h *Hub) Serve(ctx context.Context, ws *websocket.Conn, info ConnInfo) (DisconnectReason, error) {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if info.RemoteAddr == "" {
		info.RemoteAddr = ws.RemoteAddr().String()
	}
	info.ConnectedAt = h.now()

	c := newConn(ws, info, h.buffer)
	if !h.register(c) {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "server shutting down"),
			time.Now().Add(h.pumps.writeTimeout))
		_ = ws.Close()
		return "", ErrHubClosed
	}
	defer h.active.Done()

	metrics.RealtimeConnections.Inc()
	metrics.RealtimeEvents.WithLabelValues(EventBotActivity, "sent").Inc()
	h.observer.Connected(info)

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		c.readPump(h.pumps)
	}()

	// The welcome is written by writePump ahead of the queue, so broadcasts
	// issued from Observer.Connected can neither overtake nor evict it.
	c.writePump(ctx, h.pumps, h.welcome)
	if err := ws.Close(); err != nil {
		h.log().Debug("realtime socket close", "conn_id", info.ID, "error", err)
	}
	<-readDone

	h.unregister(c)
	metrics.RealtimeConnections.Dec()
	metrics.RealtimeDisconnects.WithLabelValues(string(c.reason)).Inc()
	h.observer.Disconnected(info, c.reason)
	return c.reason, nil
}

func (h *Hub) register(c *conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[c.info.ID] = c
	h.active.Add(1)
	return true
}

func (h *Hub) unregister(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.info.ID] == c {
		delete(h.conns, c.info.ID)
	}
}

// Broadcast queues ev on every connection and returns how many accepted it.
// Connections whose queue is full are disconnected as slow consumers.
func (h *Hub) Broadcast(ev Event) (int, error) {
	frame, err := encode(ev)
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, c := range h.conns {
		if c.enqueue(frame) {
			sent++
		} else {
			metrics.RealtimeEvents.WithLabelValues(ev.Name, "dropped").Inc()
		}
	}
	metrics.RealtimeEvents.WithLabelValues(ev.Name, "sent").Add(float64(sent))
	return sent, nil
}

// BroadcastActivity implements ports.ActivityBroadcaster.
func (h *Hub) BroadcastActivity(message string) int {
	n, err := h.Broadcast(NewBotActivity(message))
	if err != nil {
		h.log().Error("broadcast bot activity", "error", err)
	}
	return n
}

// Count returns the number of Connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Shutdown disconnects every client and waits for their Serve calls to return.
// New connections are refused from the first call on.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.close(ReasonServerShutdown)
	}

	done := make(chan struct{})
	go func() {
		h.active.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// State is a connection lifecycle state.
type State int32

const (
	// StateConnected is entered once the hub has registered the connection.
	StateConnected State = iota
	// StateDisconnected is terminal.
	StateDisconnected
)

func (s State) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "disconnected"
}

// maxClientFrame bounds what a client may send; client frames are read only to detect closure.
const maxClientFrame = 4096

type conn struct {
	ws   *websocket.Conn
	info ConnInfo
	send chan []byte

	state  atomic.Int32
	once   sync.Once
	reason DisconnectReason
	done   chan struct{}
}

func newConn(ws *websocket.Conn, info ConnInfo, buffer int) *conn {
	return &conn{
		ws:   ws,
		info: info,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

func (c *conn) State() State { return State(c.state.Load()) }

// close moves the connection to Disconnected. Only the first reason is kept.
func (c *conn) close(reason DisconnectReason) {
	c.once.Do(func() {
		c.reason = reason
		c.state.Store(int32(StateDisconnected))
		close(c.done)
	})
}

// enqueue offers frame without blocking. A full queue disconnects the client.
func (c *conn) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		c.close(ReasonSlowConsumer)
		return false
	}
}

type pumpConfig struct {
	pingInterval time.Duration
	pongWait     time.Duration
	writeTimeout time.Duration
}

// readPump discards client frames and reports why the read side ended.
func (c *conn) readPump(cfg pumpConfig) {
	c.ws.SetReadLimit(maxClientFrame)
	_ = c.ws.SetReadDeadline(time.Now().Add(cfg.pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(cfg.pongWait))
	})

	for {
		if _, _, err := c.ws.NextReader(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				c.close(ReasonClientClosed)
			} else {
				c.close(ReasonTransportError)
			}
			return
		}
	}
}

// writePump writes first, then drains the send queue and pings until the
// connection is closed. first is written even when the connection was closed
// in the meantime, so it is never lost to a race with done.
func (c *conn) writePump(ctx context.Context, cfg pumpConfig, first []byte) {
	if !c.writeFrame(cfg, first) {
		return
	}

	ticker := time.NewTicker(cfg.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-c.send:
			if !c.writeFrame(cfg, frame) {
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(cfg.writeTimeout)); err != nil {
				c.close(ReasonWriteError)
				return
			}
		case <-ctx.Done():
			c.close(ReasonServerShutdown)
			c.writeClose(cfg)
			return
		case <-c.done:
			c.writeClose(cfg)
			return
		}
	}
}

func (c *conn) writeFrame(cfg pumpConfig, frame []byte) bool {
	_ = c.ws.SetWriteDeadline(time.Now().Add(cfg.writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.close(ReasonWriteError)
		return false
	}
	return true
}

func (c *conn) writeClose(cfg pumpConfig) {
	code, text := websocket.CloseNormalClosure, ""
	switch c.reason {
	case ReasonServerShutdown:
		code, text = websocket.CloseGoingAway, "server shutting down"
	case ReasonSlowConsumer:
		code, text = websocket.ClosePolicyViolation, "send queue full"
	case ReasonClientClosed:
	default:
		// transport is already broken
		return
	}
	// Best effort; the socket is closed right after either way.
	_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(cfg.writeTimeout))
}

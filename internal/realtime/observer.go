package realtime

import (
	"log/slog"
	"time"
)

// DisconnectReason says why a connection reached the Disconnected state.
type DisconnectReason string

const (
	// ReasonClientClosed means the client sent a close frame.
	ReasonClientClosed DisconnectReason = "client_closed"
	// ReasonTransportError means a read failed or the pong deadline passed.
	ReasonTransportError DisconnectReason = "transport_error"
	// ReasonWriteError means a frame could not be written.
	ReasonWriteError DisconnectReason = "write_error"
	// ReasonSlowConsumer means the send queue was full during a broadcast.
	ReasonSlowConsumer DisconnectReason = "slow_consumer"
	// ReasonServerShutdown means the hub was shut down or the serving context ended.
	ReasonServerShutdown DisconnectReason = "server_shutdown"
)

// ConnInfo identifies one connection for observers and logs.
type ConnInfo struct {
	ID          string
	RemoteAddr  string
	Username    string // empty for anonymous connections
	ConnectedAt time.Time
}

// Observer learns about connection lifecycle transitions. For every connection
// Connected is called exactly once, before Disconnected, which is also called exactly once.
// Calls for one connection never overlap; calls for different connections may.
type Observer interface {
	Connected(info ConnInfo)
	Disconnected(info ConnInfo, reason DisconnectReason)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnConnected    func(ConnInfo)
	OnDisconnected func(ConnInfo, DisconnectReason)
}

func (o ObserverFuncs) Connected(info ConnInfo) {
	if o.OnConnected != nil {
		o.OnConnected(info)
	}
}

func (o ObserverFuncs) Disconnected(info ConnInfo, reason DisconnectReason) {
	if o.OnDisconnected != nil {
		o.OnDisconnected(info, reason)
	}
}

// Observers fans lifecycle calls out to each non-nil observer in order.
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type multiObserver []Observer

func (m multiObserver) Connected(info ConnInfo) {
	for _, o := range m {
		o.Connected(info)
	}
}

func (m multiObserver) Disconnected(info ConnInfo, reason DisconnectReason) {
	for _, o := range m {
		o.Disconnected(info, reason)
	}
}

// LogObserver logs lifecycle transitions.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o LogObserver) Connected(info ConnInfo) {
	o.logger().Info("realtime client connected",
		"conn_id", info.ID,
		"remote_addr", info.RemoteAddr,
		"user", info.Username,
	)
}

func (o LogObserver) Disconnected(info ConnInfo, reason DisconnectReason) {
	o.logger().Info("realtime client disconnected",
		"conn_id", info.ID,
		"reason", string(reason),
		"connected_for", time.Since(info.ConnectedAt).Round(time.Millisecond).String(),
	)
}

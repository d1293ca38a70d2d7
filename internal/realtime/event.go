// Package realtime runs the notification channel: one websocket per client,
// a welcome bot-activity event on connect and server-initiated broadcasts.
package realtime

import (
	"encoding/json"
	"fmt"
)

// EventBotActivity is the only server-to-client event.
const EventBotActivity = "bot-activity"

// Event is one server-to-client frame: {"event": name, "data": payload}.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// BotActivity is the payload of a bot-activity event.
type BotActivity struct {
	Message string `json:"message"`
}

// NewBotActivity builds a bot-activity event.
func NewBotActivity(message string) Event {
	return Event{Name: EventBotActivity, Data: BotActivity{Message: message}}
}

func encode(ev Event) ([]byte, error) {
	if ev.Name == "" {
		return nil, fmt.Errorf("event name is required")
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", ev.Name, err)
	}
	return b, nil
}

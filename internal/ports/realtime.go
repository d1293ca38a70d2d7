package ports

// ActivityBroadcaster pushes a bot-activity message to every connected client.
// It returns how many connections accepted the event.
type ActivityBroadcaster interface {
	BroadcastActivity(message string) int
}

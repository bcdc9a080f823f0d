package broadcast

// Member is one realtime connection's view of the bus. Deliver must not
// block: it reports false when the member cannot accept the event, and the
// bus treats that as a per-member delivery failure only.
type Member interface {
	ID() string
	Deliver(event []byte) bool
}

// Bus is a volatile group fan-out primitive. Events published to a group
// reach every member joined at publish time, in publish order per
// publisher. Nothing is stored or replayed.
type Bus interface {
	// Join adds the member to the group. Joining twice is a no-op.
	Join(group string, m Member)

	// Leave removes the member from the group. Unknown members are ignored.
	Leave(group string, memberID string)

	// Publish delivers event to every current member of the group. Delivery
	// failures are isolated per member and never surface to the publisher.
	Publish(group string, event []byte)
}

// Group names used by the application.
const (
	GroupAdminNotifications = "admin_notifications"
	GroupCarUpdates         = "car_updates"
	chatGroupPrefix         = "chat_"
)

// ChatGroup names the fan-out group for one car's chat room.
func ChatGroup(carID string) string {
	return chatGroupPrefix + carID
}

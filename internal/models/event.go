package models

// User lifecycle operations carried by UserEvent.
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// UserEvent is published whenever a user is created, updated or deleted.
type UserEvent struct {
	EventID   string `json:"event_id"`           // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`          // Timestamp is the Unix timestamp (in seconds) of the change.
	UserUUID  string `json:"user_uuid"`          // UserUUID identifies the affected user.
	Username  string `json:"username,omitempty"` // Username is set when known at publish time.
	Operation string `json:"operation"`          // Operation is one of create, update or delete.
}

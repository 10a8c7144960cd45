package core

// EventType represents the type of change in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	// EventTags signals that the tag registry changed.
	EventTags EventType = "TAGS"
)

// Event represents a change in the vault.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return string(e.Type) + " " + e.ID
}

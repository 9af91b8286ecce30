package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventProjectsChanged EventType = "projects_changed"
	EventMembersChanged  EventType = "members_changed"
	// EventLinksChanged covers assignment changes, which touch both collections
	EventLinksChanged EventType = "links_changed"
	EventDataLoaded   EventType = "data_loaded"
)

// Event represents a change notification
type Event struct {
	Type      EventType
	ProjectID int       // 0 when the change is not tied to one project
	MemberID  int       // 0 when the change is not tied to one member
	Timestamp time.Time // When the event occurred
	// SequenceID is assigned by the bus and increases monotonically
	SequenceID int64
}

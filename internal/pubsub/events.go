package pubsub

// EventType names the kind of event being published.
type EventType string

const (
	RegisteredEvent   EventType = "registered"
	DeregisteredEvent EventType = "deregistered"
	ModifiedEvent     EventType = "modified"
	PrunedEvent       EventType = "pruned"
	EntryEvent        EventType = "entry"
)

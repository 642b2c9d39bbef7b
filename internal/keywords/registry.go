package keywords

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/pubsub"
)

// Registry errors
var (
	ErrAlreadyRegistered = errors.New("keyword already registered")
	ErrNilKeyword        = errors.New("keyword cannot be nil")
)

// Event describes a registry occurrence published to observers. Events are
// purely observational; no registry behaviour depends on their delivery.
type Event struct {
	ID      uuid.UUID
	Keyword string
	Kind    Kind
	Entity  string
}

// Registry tracks every live keyword so that reference pruning can reach
// each one. It is an observer set: entries are insertion-ordered, appear
// exactly once, and the registry never owns the keywords it holds. All
// mutation happens on the single setup thread; no locking is performed.
type Registry struct {
	entries []Keyword
	events  *pubsub.Broker[Event]
	pruning bool
}

// NewRegistry creates an empty keyword registry.
func NewRegistry() *Registry {
	return &Registry{
		events: pubsub.NewBroker[Event](),
	}
}

// Events returns the broker carrying registry events, for observers such
// as a settings panel or the log.
func (r *Registry) Events() *pubsub.Broker[Event] {
	return r.events
}

// Register adds a keyword to the registry. Registering the same keyword
// twice is an error: every live keyword appears exactly once.
func (r *Registry) Register(kw Keyword) error {
	if kw == nil {
		return ErrNilKeyword
	}
	if r.Contains(kw) {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, kw.Name())
	}
	r.entries = append(r.entries, kw)
	r.events.Publish(pubsub.RegisteredEvent, Event{ID: uuid.New(), Keyword: kw.Name(), Kind: kw.Kind()})
	return nil
}

// Deregister removes a keyword from the registry. Removing a keyword that
// is not registered is a no-op.
func (r *Registry) Deregister(kw Keyword) {
	for i, existing := range r.entries {
		if existing == kw {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.events.Publish(pubsub.DeregisteredEvent, Event{ID: uuid.New(), Keyword: kw.Name(), Kind: kw.Kind()})
			return
		}
	}
}

// Contains reports whether the keyword is registered.
func (r *Registry) Contains(kw Keyword) bool {
	for _, existing := range r.entries {
		if existing == kw {
			return true
		}
	}
	return false
}

// Len returns the number of registered keywords.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keywords returns the registered keywords in insertion order. The slice
// is a copy; callers cannot disturb the registry through it.
func (r *Registry) Keywords() []Keyword {
	out := make([]Keyword, len(r.entries))
	copy(out, r.entries)
	return out
}

// ObjectNoLongerValid must be called exactly once, synchronously, before a
// domain object is released. Every registered keyword is asked to remove
// its references to the object; variants whose kind cannot hold such a
// reference do nothing. The broadcast is linear in the number of live
// keywords, which is acceptable because destruction events are rare
// compared with keyword reads.
//
// A prune handler must never trigger further destruction; a reentrant call
// panics so the contract violation surfaces immediately rather than
// corrupting the broadcast.
func (r *Registry) ObjectNoLongerValid(e coredata.Entity) {
	if r.pruning {
		panic(fmt.Sprintf("keywords: reentrant invalidation for %q - prune handlers must only clear references", e.Name()))
	}
	r.pruning = true
	defer func() { r.pruning = false }()

	for _, kw := range r.entries {
		kw.RemoveReferencesTo(e)
	}
	r.events.Publish(pubsub.PrunedEvent, Event{ID: uuid.New(), Entity: e.Name()})
}

// AttachTo wires the registry's pruning broadcast into the core data's
// removal hooks, so entity removal automatically invalidates references.
func (r *Registry) AttachTo(cd *coredata.CoreData) {
	cd.OnEntityRemoved(r.ObjectNoLongerValid)
}

package scoper

import (
	"fmt"

	"fortio.org/safecast"

	"rlc/internal/source"
)

// Scopes stores all allocated scopes in a compact slice-based arena.
type Scopes struct {
	data []Scope
}

// NewScopes creates an arena with optional capacity hint.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 32
	}
	return &Scopes{
		data: make([]Scope, 1, capacity+1), // index 0 reserved for NoScopeID
	}
}

// New allocates a new scope and returns its ID.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner Owner, file source.FileID, span source.Span) ScopeID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	id := ScopeID(value)
	s.data = append(s.data, Scope{
		Kind:      kind,
		Parent:    parent,
		Owner:     owner,
		File:      file,
		Span:      span,
		NameIndex: make(map[source.StringID][]ItemID),
	})
	if parentScope := s.Get(parent); parentScope != nil {
		parentScope.Children = append(parentScope.Children, id)
	}
	return id
}

// Get returns the scope pointer or nil if ID is invalid.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports total number of scopes excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Items stores declared items in a compact arena.
type Items struct {
	data []Item
}

// NewItems creates an item arena with optional capacity hint.
func NewItems(capacity uint32) *Items {
	if capacity == 0 {
		capacity = 64
	}
	return &Items{
		data: make([]Item, 1, capacity+1), // index 0 reserved for NoItemID
	}
}

// New allocates an item in the arena and returns its ID.
func (s *Items) New(item *Item) ItemID {
	if item == nil {
		panic("scoper.Items.New: nil item")
	}
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("items arena overflow: %w", err))
	}
	s.data = append(s.data, *item)
	return ItemID(value)
}

// Get returns an item pointer or nil for invalid ID.
func (s *Items) Get(id ItemID) *Item {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports number of stored items excluding sentinel.
func (s *Items) Len() int { return len(s.data) - 1 }

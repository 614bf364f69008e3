package scoper

// ScopeID identifies a scope in the table arena.
type ScopeID uint32

// NoScopeID marks the absence of a scope reference.
const NoScopeID ScopeID = 0

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// ItemID identifies a declared item in the table arena.
type ItemID uint32

// NoItemID marks the absence of an item reference.
const NoItemID ItemID = 0

// IsValid reports whether the item ID refers to an allocated item.
func (id ItemID) IsValid() bool { return id != NoItemID }

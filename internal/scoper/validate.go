package scoper

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Validate walks the arenas checking structural invariants. Returns nil if
// everything is consistent; otherwise joins all detected issues.
func (t *Table) Validate() error {
	var errs []error
	n := len(t.Scopes.data)

	for idx := 1; idx < n; idx++ {
		scopeID, err := toScopeID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scope := &t.Scopes.data[idx]
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", scopeID))
		}
		if scope.Parent.IsValid() {
			if int(scope.Parent) >= n || scope.Parent == scopeID {
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", scopeID, scope.Parent))
			} else if !containsScope(t.Scopes.data[scope.Parent].Children, scopeID) {
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", scopeID, scope.Parent))
			}
		} else if scope.Kind != ScopePrelude {
			errs = append(errs, fmt.Errorf("%s scope %d has no parent", scope.Kind, scopeID))
		}
		for _, child := range scope.Children {
			if int(child) >= n || child == scopeID || t.Scopes.data[child].Parent != scopeID {
				errs = append(errs, fmt.Errorf("scope %d child %d missing parent backlink", scopeID, child))
			}
		}
		for _, sib := range scope.Siblings {
			if !sib.IsValid() || int(sib) >= n || sib == scopeID {
				errs = append(errs, fmt.Errorf("scope %d has invalid sibling %d", scopeID, sib))
			}
		}

		// индекс имён и список элементов должны совпадать
		listed := make(map[ItemID]struct{}, len(scope.Items))
		for _, id := range scope.Items {
			listed[id] = struct{}{}
		}
		covered := 0
		for name, bucket := range scope.NameIndex {
			for _, id := range bucket {
				if _, ok := listed[id]; !ok {
					errs = append(errs, fmt.Errorf("scope %d name index %d references missing item %d", scopeID, name, id))
					continue
				}
				covered++
			}
		}
		if covered != len(scope.Items) {
			errs = append(errs, fmt.Errorf("scope %d lists %d items, name index covers %d", scopeID, len(scope.Items), covered))
		}
	}

	for idx := 1; idx < len(t.Items.data); idx++ {
		item := &t.Items.data[idx]
		if !item.Scope.IsValid() || int(item.Scope) >= n {
			errs = append(errs, fmt.Errorf("item %d has invalid scope %d", idx, item.Scope))
			continue
		}
		itemID := ItemID(idx) //nolint:gosec // bounded by arena length
		if !containsItem(t.Scopes.data[item.Scope].Items, itemID) {
			errs = append(errs, fmt.Errorf("item %d is missing from scope %d list", idx, item.Scope))
		}
		if item.Own.IsValid() {
			if int(item.Own) >= n {
				errs = append(errs, fmt.Errorf("item %d has invalid own scope %d", idx, item.Own))
			} else if owner := t.Scopes.data[item.Own].Owner; owner.Kind != OwnerItem || owner.Item != itemID {
				errs = append(errs, fmt.Errorf("item %d own scope %d is not owned by it", idx, item.Own))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func containsScope(list []ScopeID, id ScopeID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func containsItem(list []ItemID, id ItemID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func toScopeID(idx int) (ScopeID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoScopeID, fmt.Errorf("scope index %d overflow: %w", idx, err)
	}
	return ScopeID(value), nil
}

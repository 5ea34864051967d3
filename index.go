/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import "sync"

// indexEngine accelerates exact-match filtering. An index over a field is
// built lazily by one linear pass on the first equality lookup against that
// field, then cached for the life of the model. Members never mutate after
// Build, so cached indexes are never invalidated.
type indexEngine struct {
	mu      sync.RWMutex
	members []*Member
	byField map[string]map[any][]*Member
}

func newIndexEngine(members []*Member) *indexEngine {
	return &indexEngine{
		members: members,
		byField: make(map[string]map[any][]*Member),
	}
}

// lookup returns the members whose field equals the given value, in
// declaration order. Only equality criteria consult the index; In/Not
// predicates must use the linear path instead.
func (e *indexEngine) lookup(field string, value any) []*Member {
	e.mu.RLock()
	idx, ok := e.byField[field]
	e.mu.RUnlock()

	if !ok {
		idx = e.build(field)
	}
	return idx[canonicalKey(value)]
}

func (e *indexEngine) build(field string) map[any][]*Member {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Another reader may have built it between the RUnlock and here.
	if idx, ok := e.byField[field]; ok {
		return idx
	}

	idx := make(map[any][]*Member)
	for _, m := range e.members {
		v, ok := m.FieldOK(field)
		if !ok {
			continue
		}
		key := canonicalKey(v)
		idx[key] = append(idx[key], m)
	}
	e.byField[field] = idx
	return idx
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"fmt"
	"sync"

	"github.com/suparena/staticmodel/errors"
)

// Model is an immutable registry of declared members. A Model is produced
// once by Builder.Build and is read-only thereafter, so concurrent readers
// need no coordination.
type Model struct {
	name       string
	cfg        config
	members    []*Member
	byName     map[string]*Member
	byKey      map[any]*Member
	fieldNames []string
	fieldSet   map[string]struct{}
	parent     *Model
	idx        *indexEngine

	submu     sync.RWMutex
	submodels []*Model
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Len returns the number of members in the registry, inherited ones included.
func (m *Model) Len() int {
	return len(m.members)
}

// FieldNames returns the model's field names: configured order first, then
// discovery order across members. The set is computed once at Build time.
func (m *Model) FieldNames() []string {
	out := make([]string, len(m.fieldNames))
	copy(out, m.fieldNames)
	return out
}

// PrimaryKeyField returns the name of the field used for member identity.
func (m *Model) PrimaryKeyField() string {
	return m.cfg.primaryKey
}

// DisplayField returns the name of the field used for human-readable labels.
func (m *Model) DisplayField() string {
	return m.cfg.displayField
}

// Members returns a QuerySet over the full registry in declaration order.
func (m *Model) Members() *QuerySet {
	return &QuerySet{model: m, src: m.members}
}

// Member returns the member declared under the given name.
func (m *Model) Member(name string) (*Member, error) {
	if mem, ok := m.byName[name]; ok {
		return mem, nil
	}
	return nil, errors.NewDoesNotExistError(m.name, fmt.Sprintf("name=%s", name))
}

// GetByKey returns the member whose primary key equals the given value.
// This is the reverse-lookup half of the persistence adapter boundary.
func (m *Model) GetByKey(key any) (*Member, error) {
	if mem, ok := m.byKey[canonicalKey(key)]; ok {
		return mem, nil
	}
	return nil, errors.NewDoesNotExistError(
		m.name, fmt.Sprintf("%s=%v", m.cfg.primaryKey, key))
}

// GetByKeyString resolves a canonical key string produced by
// Member.KeyString back to its member.
func (m *Model) GetByKeyString(key string) (*Member, error) {
	for _, mem := range m.members {
		if mem.KeyString() == key {
			return mem, nil
		}
	}
	return nil, errors.NewDoesNotExistError(
		m.name, fmt.Sprintf("%s=%s", m.cfg.primaryKey, key))
}

// Parent returns the model this one extends, or nil.
func (m *Model) Parent() *Model {
	return m.parent
}

// Submodels returns the models built by extending this one, in build order.
func (m *Model) Submodels() []*Model {
	m.submu.RLock()
	defer m.submu.RUnlock()

	out := make([]*Model, len(m.submodels))
	copy(out, m.submodels)
	return out
}

func (m *Model) registerSubmodel(sub *Model) {
	m.submu.Lock()
	defer m.submu.Unlock()
	m.submodels = append(m.submodels, sub)
}

func (m *Model) String() string {
	return fmt.Sprintf("<StaticModel %s: members=%d, fields=%v>",
		m.name, len(m.members), m.fieldNames)
}

// knownField reports whether the field name is known anywhere in the model
// hierarchy being queried.
func (m *Model) knownField(name string) bool {
	_, ok := m.fieldSet[name]
	return ok
}

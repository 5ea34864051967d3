/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/suparena/staticmodel/errors"
)

// Member is one immutable, statically declared record of a Model.
// Members are created exactly once, at Build time, and are never mutated
// afterward; they live as long as the model that declared them.
type Member struct {
	model  *Model
	name   string
	fields Fields
	pos    int
}

// Model returns the model that declared this member.
func (m *Member) Model() *Model {
	return m.model
}

// Name returns the declared member name (for example "RED").
func (m *Member) Name() string {
	return m.name
}

// Field returns the value of the named field.
// It returns an InvalidFieldError if the member does not carry the field.
func (m *Member) Field(name string) (any, error) {
	if v, ok := m.fields[name]; ok {
		return v, nil
	}
	return nil, errors.NewInvalidFieldError(m.model.name, name)
}

// FieldOK returns the value of the named field and whether the member
// carries it. Members of the same model may declare different field subsets.
func (m *Member) FieldOK(name string) (any, bool) {
	v, ok := m.fields[name]
	return v, ok
}

// FieldAs returns the value of the named field asserted to type T.
func FieldAs[T any](m *Member, name string) (T, error) {
	var zero T
	v, err := m.Field(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("field %q of %s.%s holds %T, not %T",
			name, m.model.name, m.name, v, zero)
	}
	return typed, nil
}

// Fields returns the full field-to-value mapping for this member, keyed by
// every field name the model knows. Fields the member does not carry map to
// nil rather than being omitted. The returned map is a copy.
func (m *Member) Fields() map[string]any {
	out := make(map[string]any, len(m.model.fieldNames))
	for _, name := range m.model.fieldNames {
		out[name] = m.fields[name]
	}
	return out
}

// Key returns the member's primary key value.
func (m *Member) Key() any {
	return m.fields[m.model.cfg.primaryKey]
}

// KeyString returns the canonical scalar representation of the primary key,
// suitable for storage by persistence adapters and reversible via
// Model.GetByKeyString.
func (m *Member) KeyString() string {
	return KeyString(m.Key())
}

// Equal reports whether two members are the same declared constant:
// declared by the same model and carrying the same primary key.
func (m *Member) Equal(o *Member) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.model == o.model && equalValues(m.Key(), o.Key())
}

// String returns the member's human-readable label: the display field value,
// falling back to the primary key when the member does not carry it.
func (m *Member) String() string {
	if v, ok := m.fields[m.model.cfg.displayField]; ok {
		return KeyString(v)
	}
	return m.KeyString()
}

// GoString renders the member with its name and field values, in model
// field order.
func (m *Member) GoString() string {
	var parts []string
	for _, name := range m.model.fieldNames {
		if v, ok := m.fields[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%#v", name, v))
		}
	}
	return fmt.Sprintf("<%s.%s: %s>", m.model.name, m.name, strings.Join(parts, ", "))
}

// MarshalJSON serializes the member as its full field mapping.
func (m *Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Fields())
}

// formatCriteria renders filter criteria for error messages, sorted by
// field name so messages are deterministic.
func formatCriteria(criteria Fields) string {
	names := make([]string, 0, len(criteria))
	for name := range criteria {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, criteria[name]))
	}
	return strings.Join(parts, ", ")
}

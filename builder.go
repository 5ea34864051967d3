/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"fmt"
	"sort"

	"github.com/suparena/staticmodel/errors"
)

// config holds the per-model declaration settings.
type config struct {
	fieldOrder      []string
	primaryKey      string
	displayField    string
	defaultField    string
	memberNameField string

	explicitPK      bool
	explicitDisplay bool
}

// Option configures a model under construction.
type Option func(*config)

// WithFields declares the model's field names and their order up front.
// Explicit field order is required for the positional DeclareRow form and
// otherwise takes precedence over discovery order.
func WithFields(names ...string) Option {
	return func(c *config) {
		c.fieldOrder = append([]string(nil), names...)
	}
}

// WithPrimaryKey designates the field whose value must be unique per model
// and is used for identity, equality and key lookups. Defaults to the first
// field name.
func WithPrimaryKey(name string) Option {
	return func(c *config) {
		c.primaryKey = name
		c.explicitPK = true
	}
}

// WithDisplayField designates the field used for human-readable labels.
// Defaults to the second field name, or the primary key when the model has
// a single field.
func WithDisplayField(name string) Option {
	return func(c *config) {
		c.displayField = name
		c.explicitDisplay = true
	}
}

// WithDefaultField names the field a bare DeclareValue scalar binds to.
func WithDefaultField(name string) Option {
	return func(c *config) {
		c.defaultField = name
	}
}

// WithMemberNameField makes each member's declared name queryable under the
// given field name.
func WithMemberNameField(name string) Option {
	return func(c *config) {
		c.memberNameField = name
	}
}

type declKind int

const (
	declFields declKind = iota
	declRow
	declValue
)

type decl struct {
	kind   declKind
	name   string
	fields Fields
	row    []any
	value  any
}

// Builder collects member declarations for one model and freezes them into
// an immutable Model. The builder is the explicit, registration-time
// counterpart of declaring constants in a class body: call Declare once per
// member, in the order the members should iterate, then Build.
type Builder struct {
	name   string
	cfg    config
	parent *Model
	decls  []decl
}

// New starts the declaration of a model.
func New(name string, opts ...Option) *Builder {
	b := &Builder{name: name}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// Extend starts the declaration of a model seeded with this model's members.
// The child shares the parent's members by reference, parent members first;
// a child member whose primary key collides with a parent member replaces it
// at the parent's position. The parent's configuration carries over and may
// be overridden by options, except for the primary key field: shared members
// are keyed once, so changing it is a ConfigurationError at Build time.
func (m *Model) Extend(name string, opts ...Option) *Builder {
	cfg := m.cfg
	cfg.fieldOrder = m.FieldNames()
	b := &Builder{name: name, cfg: cfg, parent: m}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// Declare adds a member from a field-to-value mapping.
func (b *Builder) Declare(name string, fields Fields) *Builder {
	b.decls = append(b.decls, decl{kind: declFields, name: name, fields: fields})
	return b
}

// DeclareRow adds a member from positional values zipped against the
// model's explicit field order. Fewer values than fields is allowed; the
// trailing fields are simply absent on the member.
func (b *Builder) DeclareRow(name string, values ...any) *Builder {
	b.decls = append(b.decls, decl{kind: declRow, name: name, row: values})
	return b
}

// DeclareValue adds a member from a single bare value bound to the model's
// default field. Build fails with a ConfigurationError when no default field
// is configured.
func (b *Builder) DeclareValue(name string, value any) *Builder {
	b.decls = append(b.decls, decl{kind: declValue, name: name, value: value})
	return b
}

// MustBuild is like Build but panics on a configuration error. Intended for
// package-level model declarations, where a malformed model is a programming
// error.
func (b *Builder) MustBuild() *Model {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Build validates the declarations and freezes them into an immutable Model.
// All ConfigurationError cases surface here rather than at Declare time.
func (b *Builder) Build() (*Model, error) {
	confErr := func(format string, args ...any) error {
		return errors.NewConfigurationError(b.name, fmt.Sprintf(format, args...))
	}

	resolved, err := b.resolveDecls(confErr)
	if err != nil {
		return nil, err
	}

	model := &Model{name: b.name, cfg: b.cfg, parent: b.parent}

	model.fieldNames, model.fieldSet = b.collectFieldNames(resolved)
	if len(model.fieldNames) == 0 && len(resolved) > 0 {
		return nil, confErr("at least one field must be defined")
	}

	if err := b.resolveKeyFields(model, confErr); err != nil {
		return nil, err
	}
	model.cfg = b.cfg

	if err := b.assembleMembers(model, resolved, confErr); err != nil {
		return nil, err
	}

	model.idx = newIndexEngine(model.members)

	if b.parent != nil {
		b.parent.registerSubmodel(model)
	}
	return model, nil
}

// resolveDecls normalizes the three declaration forms into plain field maps.
func (b *Builder) resolveDecls(confErr func(string, ...any) error) ([]decl, error) {
	seen := make(map[string]struct{}, len(b.decls))
	resolved := make([]decl, 0, len(b.decls))

	for _, d := range b.decls {
		if d.name == "" {
			return nil, confErr("member declared without a name")
		}
		if _, dup := seen[d.name]; dup {
			return nil, confErr("member %s already declared", d.name)
		}
		seen[d.name] = struct{}{}

		fields := make(Fields, len(d.fields)+1)
		switch d.kind {
		case declFields:
			for k, v := range d.fields {
				fields[k] = v
			}
		case declRow:
			if len(b.cfg.fieldOrder) == 0 {
				return nil, confErr(
					"member %s declared positionally but no field order is configured", d.name)
			}
			if len(d.row) > len(b.cfg.fieldOrder) {
				return nil, confErr("member %s declares %d values for %d fields",
					d.name, len(d.row), len(b.cfg.fieldOrder))
			}
			for i, v := range d.row {
				fields[b.cfg.fieldOrder[i]] = v
			}
		case declValue:
			if b.cfg.defaultField == "" {
				return nil, confErr(
					"member %s declared as a bare value but no default field is configured", d.name)
			}
			fields[b.cfg.defaultField] = d.value
		}

		if nf := b.cfg.memberNameField; nf != "" {
			if v, ok := fields[nf]; ok && !equalValues(v, d.name) {
				return nil, confErr("member %s sets %s=%v, which conflicts with its declared name",
					d.name, nf, v)
			}
			fields[nf] = d.name
		}

		resolved = append(resolved, decl{kind: declFields, name: d.name, fields: fields})
	}
	return resolved, nil
}

// collectFieldNames computes the model's field-name set once: configured
// order first, then parent fields, then discovery across members in
// declaration order (new names within one member sorted for determinism).
func (b *Builder) collectFieldNames(resolved []decl) ([]string, map[string]struct{}) {
	var names []string
	set := make(map[string]struct{})
	add := func(name string) {
		if _, ok := set[name]; !ok {
			set[name] = struct{}{}
			names = append(names, name)
		}
	}

	for _, name := range b.cfg.fieldOrder {
		add(name)
	}
	if b.parent != nil {
		// Inherited members stay in the registry, so their fields stay in
		// the field set even when WithFields narrows the configured order.
		for _, name := range b.parent.fieldNames {
			if name == b.cfg.memberNameField {
				continue
			}
			add(name)
		}
	}
	for _, d := range resolved {
		unseen := make([]string, 0, len(d.fields))
		for name := range d.fields {
			if name == b.cfg.memberNameField {
				continue
			}
			if _, ok := set[name]; !ok {
				unseen = append(unseen, name)
			}
		}
		sort.Strings(unseen)
		for _, name := range unseen {
			add(name)
		}
	}
	// The member-name field always sorts after declared and discovered
	// fields, keeping it out of the primary key and display defaults.
	if b.cfg.memberNameField != "" {
		add(b.cfg.memberNameField)
	}
	return names, set
}

// resolveKeyFields fills in primary key and display field defaults and
// validates explicit choices against the field set.
func (b *Builder) resolveKeyFields(model *Model, confErr func(string, ...any) error) error {
	if b.cfg.primaryKey == "" && len(model.fieldNames) > 0 {
		b.cfg.primaryKey = model.fieldNames[0]
	}
	if b.cfg.explicitPK && !containsField(model.fieldSet, b.cfg.primaryKey) {
		return confErr("primary key field %q is not declared by any member", b.cfg.primaryKey)
	}
	// Inherited members are keyed by the parent's primary key field; a child
	// with a different one would split the registry into two key domains.
	if b.parent != nil && b.cfg.primaryKey != b.parent.cfg.primaryKey {
		return confErr("cannot change primary key field from %q to %q when extending %s",
			b.parent.cfg.primaryKey, b.cfg.primaryKey, b.parent.name)
	}

	if b.cfg.displayField == "" {
		if len(model.fieldNames) > 1 {
			b.cfg.displayField = model.fieldNames[1]
		} else {
			b.cfg.displayField = b.cfg.primaryKey
		}
	}
	if b.cfg.explicitDisplay && !containsField(model.fieldSet, b.cfg.displayField) {
		return confErr("display field %q is not declared by any member", b.cfg.displayField)
	}
	return nil
}

// assembleMembers seeds parent members, applies primary-key overrides in
// place and appends the model's own members in declaration order.
func (b *Builder) assembleMembers(model *Model, resolved []decl, confErr func(string, ...any) error) error {
	model.byName = make(map[string]*Member)
	model.byKey = make(map[any]*Member)

	if b.parent != nil {
		model.members = make([]*Member, len(b.parent.members))
		copy(model.members, b.parent.members)
		for name, mem := range b.parent.byName {
			model.byName[name] = mem
		}
	}

	parentPos := make(map[any]int, len(model.members))
	for i, mem := range model.members {
		parentPos[canonicalKey(mem.Key())] = i
	}

	ownKeys := make(map[any]string, len(resolved))
	for _, d := range resolved {
		pkValue, ok := d.fields[b.cfg.primaryKey]
		if !ok {
			return confErr("member %s does not declare primary key field %q",
				d.name, b.cfg.primaryKey)
		}
		key := canonicalKey(pkValue)

		if prev, dup := ownKeys[key]; dup {
			return confErr("members %s and %s declare the same primary key %v",
				prev, d.name, pkValue)
		}
		ownKeys[key] = d.name

		mem := &Member{model: model, name: d.name, fields: d.fields}

		if pos, override := parentPos[key]; override {
			// Last-declared wins, original position kept.
			replaced := model.members[pos]
			if model.byName[replaced.name] == replaced {
				delete(model.byName, replaced.name)
			}
			mem.pos = pos
			model.members[pos] = mem
		} else {
			if parent, ok := model.byName[d.name]; ok && b.parent != nil {
				return confErr("member %s collides with inherited member %s without overriding its key",
					d.name, parent.name)
			}
			mem.pos = len(model.members)
			model.members = append(model.members, mem)
		}
		model.byName[d.name] = mem
	}

	for _, mem := range model.members {
		model.byKey[canonicalKey(mem.Key())] = mem
	}
	return nil
}

func containsField(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

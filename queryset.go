/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"fmt"
	"sort"

	"github.com/suparena/staticmodel/errors"
)

// QuerySet is a lazy, chainable, read-only view over a model's registry.
// Filter composes criteria into a new QuerySet without mutating the prior
// one; evaluation is deferred until a materializing call (Get, All, Values,
// iteration helpers). Results always preserve registry declaration order.
type QuerySet struct {
	model    *Model
	src      []*Member
	criteria []criterion
}

// Choice is a (key, label) pair suitable for presentation widgets.
type Choice struct {
	Key   any
	Label any
}

// Filter returns a new QuerySet narrowed by the given criteria.
//
// Values may be scalars (equality), In(...) sets (the field matches any of
// the values) or Not(...) wrappers. Multiple fields within one call AND
// together, as do chained Filter calls. An empty criteria map is the
// identity filter: it selects every member.
//
// Filter fails with an InvalidFieldError when a criterion names a field
// absent from the model's entire field set.
func (q *QuerySet) Filter(criteria Fields) (*QuerySet, error) {
	next := &QuerySet{
		model:    q.model,
		src:      q.src,
		criteria: append([]criterion(nil), q.criteria...),
	}
	if len(criteria) == 0 {
		return next, nil
	}

	names := make([]string, 0, len(criteria))
	for name := range criteria {
		if !q.model.knownField(name) {
			return nil, errors.NewInvalidFieldError(q.model.name, name)
		}
		names = append(names, name)
	}
	// Deterministic criterion order regardless of map iteration.
	sort.Strings(names)
	for _, name := range names {
		next.criteria = append(next.criteria, criterion{field: name, value: criteria[name]})
	}
	return next, nil
}

// Get returns the single member matching the criteria. It fails with a
// DoesNotExistError when nothing matches and a MultipleReturnedError when
// more than one member does.
func (q *QuerySet) Get(criteria Fields) (*Member, error) {
	qs, err := q.Filter(criteria)
	if err != nil {
		return nil, err
	}

	matches := qs.materialize()
	switch len(matches) {
	case 0:
		return nil, errors.NewDoesNotExistError(q.model.name, formatCriteria(criteria))
	case 1:
		return matches[0], nil
	default:
		return nil, errors.NewMultipleReturnedError(
			q.model.name, formatCriteria(criteria), len(matches))
	}
}

// All materializes the QuerySet into a member slice in declaration order.
func (q *QuerySet) All() []*Member {
	matches := q.materialize()
	out := make([]*Member, len(matches))
	copy(out, matches)
	return out
}

// First returns the first matching member in declaration order, or false
// when the QuerySet is empty.
func (q *QuerySet) First() (*Member, bool) {
	matches := q.materialize()
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// Len returns the number of matching members.
func (q *QuerySet) Len() int {
	return len(q.materialize())
}

// Contains reports whether the member is among the matches.
func (q *QuerySet) Contains(m *Member) bool {
	for _, mem := range q.materialize() {
		if mem == m {
			return true
		}
	}
	return false
}

// Values returns one field-to-value mapping per matching member, in filter
// order. With no field names it renders every field the model knows. A field
// absent on a given member maps to an explicit nil placeholder; it is never
// silently omitted and never an error.
func (q *QuerySet) Values(fields ...string) []map[string]any {
	if len(fields) == 0 {
		fields = q.model.fieldNames
	}

	matches := q.materialize()
	out := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		row := make(map[string]any, len(fields))
		for _, name := range fields {
			v, _ := m.FieldOK(name)
			row[name] = v
		}
		out = append(out, row)
	}
	return out
}

// ValuesList returns one value tuple per matching member, in filter order.
// With no field names it renders every field the model knows. Fields absent
// on a member yield nil placeholders.
func (q *QuerySet) ValuesList(fields ...string) [][]any {
	if len(fields) == 0 {
		fields = q.model.fieldNames
	}

	matches := q.materialize()
	out := make([][]any, 0, len(matches))
	for _, m := range matches {
		row := make([]any, len(fields))
		for i, name := range fields {
			row[i], _ = m.FieldOK(name)
		}
		out = append(out, row)
	}
	return out
}

// FlatValuesList is the flattened form of ValuesList. It requires exactly
// one field and fails with a ConfigurationError otherwise.
func (q *QuerySet) FlatValuesList(fields ...string) ([]any, error) {
	if len(fields) != 1 {
		return nil, errors.NewConfigurationError(q.model.name,
			fmt.Sprintf("flat values require exactly one field, got %d", len(fields)))
	}
	field := fields[0]

	matches := q.materialize()
	out := make([]any, 0, len(matches))
	for _, m := range matches {
		v, _ := m.FieldOK(field)
		out = append(out, v)
	}
	return out, nil
}

// Choices returns (key, label) pairs for the matching members. With no
// fields it pairs the primary key with the display field; a single field is
// used for both key and label; two fields are used as given. More than two
// fields is a ConfigurationError, and an unknown field an InvalidFieldError.
func (q *QuerySet) Choices(fields ...string) ([]Choice, error) {
	switch len(fields) {
	case 0:
		fields = []string{q.model.cfg.primaryKey, q.model.cfg.displayField}
	case 1:
		fields = []string{fields[0], fields[0]}
	case 2:
	default:
		return nil, errors.NewConfigurationError(q.model.name,
			fmt.Sprintf("choices accept at most two fields, got %d", len(fields)))
	}
	for _, name := range fields {
		if !q.model.knownField(name) {
			return nil, errors.NewInvalidFieldError(q.model.name, name)
		}
	}

	matches := q.materialize()
	out := make([]Choice, 0, len(matches))
	for _, m := range matches {
		key, _ := m.FieldOK(fields[0])
		label, _ := m.FieldOK(fields[1])
		out = append(out, Choice{Key: key, Label: label})
	}
	return out, nil
}

// materialize evaluates the pending criteria. Plain equality criteria
// consult the model's lazy index first and intersect candidate sets; In/Not
// criteria apply as linear predicates over the remaining candidates. The
// source order, and therefore declaration order, is preserved throughout.
func (q *QuerySet) materialize() []*Member {
	cands := q.src
	for _, c := range q.criteria {
		if len(cands) == 0 {
			return nil
		}
		if c.indexable() {
			matched := q.model.idx.lookup(c.field, c.value)
			set := make(map[*Member]struct{}, len(matched))
			for _, m := range matched {
				set[m] = struct{}{}
			}
			cands = keep(cands, func(m *Member) bool {
				if _, ok := set[m]; !ok {
					return false
				}
				// The index matches on canonical keys; confirm with the
				// criterion itself so canonicalized collisions cannot leak.
				v, ok := m.FieldOK(c.field)
				return ok && c.match(v)
			})
		} else {
			cands = keep(cands, func(m *Member) bool {
				v, ok := m.FieldOK(c.field)
				return ok && c.match(v)
			})
		}
	}
	return cands
}

func keep(members []*Member, pred func(*Member) bool) []*Member {
	out := make([]*Member, 0, len(members))
	for _, m := range members {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

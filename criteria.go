/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

// Fields is a mapping from field name to value. It is used both to declare
// members and to express filter criteria.
type Fields map[string]any

// inValue matches a field against any of a set of acceptable values.
type inValue struct {
	values []any
}

// In builds a set-membership criterion value: the field matches when it
// equals any of the given values.
func In(values ...any) any {
	return inValue{values: values}
}

// notValue negates the criterion value it wraps.
type notValue struct {
	value any
}

// Not builds a negation criterion value. It may wrap a scalar or an In set:
//
//	qs.Filter(staticmodel.Fields{"continent": staticmodel.Not("Europe")})
//	qs.Filter(staticmodel.Fields{"pk": staticmodel.Not(staticmodel.In(1, 2))})
func Not(value any) any {
	return notValue{value: value}
}

// criterion is one pending filter condition on a QuerySet.
type criterion struct {
	field string
	value any
}

// indexable reports whether the criterion is a plain equality test that may
// consult the model's index. Set-membership and negation values always take
// the linear path.
func (c criterion) indexable() bool {
	switch c.value.(type) {
	case inValue, notValue:
		return false
	}
	return true
}

// match evaluates the criterion against a single field value.
func (c criterion) match(got any) bool {
	return matchValue(got, c.value)
}

func matchValue(got, want any) bool {
	switch w := want.(type) {
	case inValue:
		for _, v := range w.values {
			if matchValue(got, v) {
				return true
			}
		}
		return false
	case notValue:
		return !matchValue(got, w.value)
	default:
		return equalValues(got, w)
	}
}

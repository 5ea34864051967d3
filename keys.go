/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"fmt"
	"reflect"
	"strconv"
)

// KeyString returns the canonical scalar representation of a primary key
// value. Persistence adapters store this string and resolve it back through
// Model.GetByKeyString.
func KeyString(v any) string {
	switch k := v.(type) {
	case nil:
		return ""
	case string:
		return k
	case bool:
		return strconv.FormatBool(k)
	case int:
		return strconv.Itoa(k)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", k)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", k)
	case float32:
		return strconv.FormatFloat(float64(k), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64)
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprintf("%v", k)
	}
}

// canonicalKey normalizes a field value for use as an index map key.
// Comparable values index as themselves; non-comparable values (slices,
// maps, functions) fall back to their Go-syntax rendering.
func canonicalKey(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%#v", v)
}

// equalValues compares two field values the way filter criteria do:
// deep equality, so slice- and map-valued fields compare by content.
func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

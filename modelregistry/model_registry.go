/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelregistry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/staticmodel"
)

var (
	mu     sync.RWMutex
	models = make(map[string]*staticmodel.Model)
)

// Register adds a built model under its own name.
// If a model is already registered under that name, it panics to prevent
// accidental overrides. Registration is expected to happen during
// initialization, typically from init() functions or package-level vars.
func Register(m *staticmodel.Model) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := models[m.Name()]; exists {
		panic(fmt.Sprintf("model registry: model %q already registered", m.Name()))
	}
	models[m.Name()] = m
}

// Lookup returns the registered model with the given name.
func Lookup(name string) (*staticmodel.Model, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := models[name]
	if !ok {
		return nil, fmt.Errorf("model registry: no model registered under %q", name)
	}
	return m, nil
}

// Resolve looks up a model by name and returns its member with the given
// primary key. Deserialization adapters use this to turn a (model, key)
// pair from the wire back into a member.
func Resolve(name string, key any) (*staticmodel.Member, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return m.GetByKey(key)
}

// ResolveKeyString is Resolve for canonical key strings produced by
// Member.KeyString.
func ResolveKeyString(name, key string) (*staticmodel.Member, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return m.GetByKeyString(key)
}

// Names returns the registered model names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelregistry

import (
	"testing"

	"github.com/suparena/staticmodel"
	"github.com/suparena/staticmodel/errors"
)

func buildModel(t *testing.T, name string) *staticmodel.Model {
	t.Helper()
	m, err := staticmodel.New(name,
		staticmodel.WithFields("pk", "label"),
	).
		Declare("RED", staticmodel.Fields{"pk": 1, "label": "Red"}).
		Declare("GREEN", staticmodel.Fields{"pk": 2, "label": "Green"}).
		Build()
	if err != nil {
		t.Fatalf("Failed to build model: %v", err)
	}
	return m
}

func TestRegisterAndLookup(t *testing.T) {
	m := buildModel(t, "RegistryColor")
	Register(m)

	got, err := Lookup("RegistryColor")
	if err != nil {
		t.Fatalf("Failed to look up model: %v", err)
	}
	if got != m {
		t.Fatal("Lookup should return the registered model instance")
	}

	if _, err := Lookup("NoSuchModel"); err == nil {
		t.Fatal("Expected an error for an unregistered model")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	m := buildModel(t, "RegistryDup")
	Register(m)

	defer func() {
		if recover() == nil {
			t.Error("Expected duplicate registration to panic")
		}
	}()
	Register(buildModel(t, "RegistryDup"))
}

func TestResolve(t *testing.T) {
	Register(buildModel(t, "RegistryResolve"))

	t.Run("ByKey", func(t *testing.T) {
		mem, err := Resolve("RegistryResolve", 1)
		if err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if mem.Name() != "RED" {
			t.Errorf("Expected RED, got %q", mem.Name())
		}
	})

	t.Run("ByKeyString", func(t *testing.T) {
		mem, err := ResolveKeyString("RegistryResolve", "2")
		if err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if mem.Name() != "GREEN" {
			t.Errorf("Expected GREEN, got %q", mem.Name())
		}
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := Resolve("RegistryResolve", 99)
		if err == nil {
			t.Fatal("Expected an error for an unknown key")
		}
		if !errors.IsDoesNotExist(err) {
			t.Errorf("Expected ErrDoesNotExist kind, got %v", err)
		}
	})

	t.Run("UnknownModel", func(t *testing.T) {
		if _, err := Resolve("NoSuchModel", 1); err == nil {
			t.Fatal("Expected an error for an unknown model")
		}
	})
}

func TestNames(t *testing.T) {
	Register(buildModel(t, "RegistryA"))
	Register(buildModel(t, "RegistryB"))

	names := Names()
	idxA, idxB := -1, -1
	for i, name := range names {
		switch name {
		case "RegistryA":
			idxA = i
		case "RegistryB":
			idxB = i
		}
	}
	if idxA == -1 || idxB == -1 {
		t.Fatalf("Expected both registered names in %v", names)
	}
	if idxA > idxB {
		t.Error("Names should be sorted")
	}
}

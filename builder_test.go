/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package staticmodel

import (
	"testing"

	"github.com/suparena/staticmodel/errors"
)

func buildColor(t *testing.T) *Model {
	t.Helper()
	m, err := New("Color",
		WithFields("pk", "label"),
		WithPrimaryKey("pk"),
		WithDisplayField("label"),
	).
		Declare("RED", Fields{"pk": 1, "label": "Red"}).
		Declare("GREEN", Fields{"pk": 2, "label": "Green"}).
		Build()
	if err != nil {
		t.Fatalf("Failed to build Color: %v", err)
	}
	return m
}

func TestBuild(t *testing.T) {
	t.Run("BasicModel", func(t *testing.T) {
		m := buildColor(t)

		if m.Name() != "Color" {
			t.Errorf("Expected name Color, got %q", m.Name())
		}
		if m.Len() != 2 {
			t.Errorf("Expected 2 members, got %d", m.Len())
		}
		if got := m.FieldNames(); len(got) != 2 || got[0] != "pk" || got[1] != "label" {
			t.Errorf("Expected fields [pk label], got %v", got)
		}
		if m.PrimaryKeyField() != "pk" || m.DisplayField() != "label" {
			t.Errorf("Unexpected key fields: pk=%q display=%q",
				m.PrimaryKeyField(), m.DisplayField())
		}
	})

	t.Run("DefaultKeyFields", func(t *testing.T) {
		m, err := New("Thing", WithFields("id", "name", "organic")).
			DeclareRow("METAL", 9, "Metal", false).
			DeclareRow("PLANT", 10, "Plant", true).
			Build()
		if err != nil {
			t.Fatalf("Failed to build: %v", err)
		}

		// Primary key defaults to the first field, display to the second.
		if m.PrimaryKeyField() != "id" {
			t.Errorf("Expected default primary key id, got %q", m.PrimaryKeyField())
		}
		if m.DisplayField() != "name" {
			t.Errorf("Expected default display field name, got %q", m.DisplayField())
		}
	})

	t.Run("FieldDiscovery", func(t *testing.T) {
		m, err := New("Sparse", WithPrimaryKey("id")).
			Declare("A", Fields{"id": 1, "extra": "x"}).
			Declare("B", Fields{"id": 2, "other": "y"}).
			Build()
		if err != nil {
			t.Fatalf("Failed to build: %v", err)
		}

		// Union of member fields; new names discovered per member in
		// declaration order, sorted within a member.
		got := m.FieldNames()
		want := []string{"extra", "id", "other"}
		if len(got) != len(want) {
			t.Fatalf("Expected fields %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected fields %v, got %v", want, got)
			}
		}
	})

	t.Run("ShorthandValueForm", func(t *testing.T) {
		m, err := New("Status", WithDefaultField("code")).
			DeclareValue("OPEN", "open").
			DeclareValue("CLOSED", "closed").
			Build()
		if err != nil {
			t.Fatalf("Failed to build: %v", err)
		}

		mem, err := m.Member("OPEN")
		if err != nil {
			t.Fatalf("Failed to get member: %v", err)
		}
		if v, _ := mem.FieldOK("code"); v != "open" {
			t.Errorf("Expected code=open, got %v", v)
		}
	})

	t.Run("MemberNameField", func(t *testing.T) {
		m, err := New("Color", WithMemberNameField("name")).
			Declare("RED", Fields{"pk": 1}).
			Build()
		if err != nil {
			t.Fatalf("Failed to build: %v", err)
		}

		mem, err := m.Members().Get(Fields{"name": "RED"})
		if err != nil {
			t.Fatalf("Member name should be queryable: %v", err)
		}
		if mem.Name() != "RED" {
			t.Errorf("Expected RED, got %q", mem.Name())
		}
	})

	t.Run("MustBuildPanicsOnError", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected MustBuild to panic")
			}
		}()
		New("Broken").
			Declare("A", Fields{"pk": 1}).
			Declare("B", Fields{"pk": 1}).
			MustBuild()
	})
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{
			name: "duplicate primary key",
			builder: New("Color").
				Declare("RED", Fields{"pk": 1}).
				Declare("CRIMSON", Fields{"pk": 1}),
		},
		{
			name: "duplicate member name",
			builder: New("Color").
				Declare("RED", Fields{"pk": 1}).
				Declare("RED", Fields{"pk": 2}),
		},
		{
			name:    "unnamed member",
			builder: New("Color").Declare("", Fields{"pk": 1}),
		},
		{
			name:    "bare value without default field",
			builder: New("Color").DeclareValue("RED", 1),
		},
		{
			name:    "row without field order",
			builder: New("Color").DeclareRow("RED", 1, "Red"),
		},
		{
			name: "row longer than field order",
			builder: New("Color", WithFields("pk")).
				DeclareRow("RED", 1, "Red"),
		},
		{
			name: "missing primary key value",
			builder: New("Color", WithPrimaryKey("pk")).
				Declare("RED", Fields{"pk": 1}).
				Declare("GREEN", Fields{"label": "Green"}),
		},
		{
			name: "primary key field never declared",
			builder: New("Color", WithPrimaryKey("id")).
				Declare("RED", Fields{"pk": 1}),
		},
		{
			name: "display field never declared",
			builder: New("Color", WithDisplayField("label")).
				Declare("RED", Fields{"pk": 1}),
		},
		{
			name: "member name field conflict",
			builder: New("Color", WithMemberNameField("name")).
				Declare("RED", Fields{"pk": 1, "name": "CRIMSON"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Expected a configuration error")
			}
			if !errors.IsConfiguration(err) {
				t.Errorf("Expected ErrConfiguration kind, got %v", err)
			}
		})
	}
}

func TestExtend(t *testing.T) {
	parent := New("Object", WithFields("id", "code")).
		DeclareRow("WAR", 1, "war").
		DeclareRow("PEACE", 2, "peace").
		MustBuild()

	t.Run("ParentMembersFirst", func(t *testing.T) {
		child, err := parent.Extend("Place").
			Declare("GENEVA", Fields{"id": 3, "code": "geneva"}).
			Build()
		if err != nil {
			t.Fatalf("Failed to extend: %v", err)
		}

		names := make([]string, 0, child.Len())
		for _, mem := range child.Members().All() {
			names = append(names, mem.Name())
		}
		want := []string{"WAR", "PEACE", "GENEVA"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Expected order %v, got %v", want, names)
			}
		}
	})

	t.Run("SharesParentMembersByReference", func(t *testing.T) {
		child := parent.Extend("Alias").MustBuild()

		parentWar, _ := parent.Member("WAR")
		childWar, err := child.Member("WAR")
		if err != nil {
			t.Fatalf("Inherited member missing: %v", err)
		}
		if parentWar != childWar {
			t.Error("Inherited member should be the same instance")
		}
	})

	t.Run("OverrideReplacesInPlace", func(t *testing.T) {
		child := parent.Extend("Conflict").
			Declare("SKIRMISH", Fields{"id": 1, "code": "skirmish"}).
			MustBuild()

		members := child.Members().All()
		if len(members) != 2 {
			t.Fatalf("Expected 2 members after override, got %d", len(members))
		}
		if members[0].Name() != "SKIRMISH" {
			t.Errorf("Override should keep the original position, got %q first", members[0].Name())
		}
		if _, err := child.Member("WAR"); !errors.IsDoesNotExist(err) {
			t.Error("Replaced member name should no longer resolve")
		}

		// The parent registry is untouched.
		if mem, _ := parent.Member("WAR"); mem == nil || mem.Name() != "WAR" {
			t.Error("Parent registry must not change when a child overrides")
		}
	})

	t.Run("NameCollisionWithoutOverride", func(t *testing.T) {
		_, err := parent.Extend("Bad").
			Declare("WAR", Fields{"id": 9, "code": "war2"}).
			Build()
		if err == nil || !errors.IsConfiguration(err) {
			t.Errorf("Expected ErrConfiguration kind, got %v", err)
		}
	})

	t.Run("FieldsOptionKeepsInheritedFields", func(t *testing.T) {
		child := parent.Extend("Wide", WithFields("id", "area")).
			Declare("GENEVA", Fields{"id": 3, "code": "geneva", "area": 15.93}).
			MustBuild()

		// The field set is the union across all members; inherited members
		// still carry code even though WithFields named only id and area.
		got := child.FieldNames()
		want := []string{"id", "area", "code"}
		if len(got) != len(want) {
			t.Fatalf("Expected fields %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected fields %v, got %v", want, got)
			}
		}

		qs, err := child.Members().Filter(Fields{"code": "war"})
		if err != nil {
			t.Fatalf("Inherited field should stay queryable: %v", err)
		}
		if qs.Len() != 1 {
			t.Fatalf("Expected 1 match on inherited field, got %d", qs.Len())
		}

		values := child.Members().Values()
		if v, ok := values[0]["code"]; !ok || v != "war" {
			t.Errorf("Values must render inherited fields, got %v", values[0])
		}
		if v, ok := values[0]["area"]; !ok || v != nil {
			t.Errorf("Expected nil placeholder for area on inherited member, got %v", values[0])
		}
	})

	t.Run("PrimaryKeyChangeRejected", func(t *testing.T) {
		_, err := parent.Extend("Rekey", WithPrimaryKey("code")).
			Declare("LOVE", Fields{"id": 4, "code": "love"}).
			Build()
		if err == nil || !errors.IsConfiguration(err) {
			t.Fatalf("Expected ErrConfiguration kind, got %v", err)
		}

		// Inherited members keep resolving by the shared primary key.
		child := parent.Extend("SameKey", WithPrimaryKey("id")).MustBuild()
		mem, err := child.GetByKey(1)
		if err != nil {
			t.Fatalf("Inherited member should resolve by key: %v", err)
		}
		if mem.Name() != "WAR" {
			t.Errorf("Expected WAR, got %q", mem.Name())
		}
	})

	t.Run("InheritedConfiguration", func(t *testing.T) {
		child := parent.Extend("Cfg").MustBuild()
		if child.PrimaryKeyField() != parent.PrimaryKeyField() {
			t.Errorf("Child should inherit primary key field, got %q", child.PrimaryKeyField())
		}
		if child.Parent() != parent {
			t.Error("Child should record its parent")
		}
	})
}

func TestSubmodels(t *testing.T) {
	parent := New("Base", WithFields("id")).
		DeclareRow("ONE", 1).
		MustBuild()

	a := parent.Extend("A").MustBuild()
	b := parent.Extend("B").MustBuild()

	subs := parent.Submodels()
	if len(subs) != 2 || subs[0] != a || subs[1] != b {
		t.Errorf("Expected submodels [A B], got %v", subs)
	}
}

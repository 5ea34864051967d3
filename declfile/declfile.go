/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package declfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/staticmodel"
	"github.com/suparena/staticmodel/errors"
	"github.com/suparena/staticmodel/modelregistry"
)

// File is the top-level structure of a declaration file.
type File struct {
	Models []ModelDecl `yaml:"models"`
}

// ModelDecl declares one model and its members.
type ModelDecl struct {
	Name            string       `yaml:"name"`
	Extends         string       `yaml:"extends,omitempty"`
	Fields          []string     `yaml:"fields,omitempty"`
	PrimaryKey      string       `yaml:"primaryKey,omitempty"`
	DisplayField    string       `yaml:"displayField,omitempty"`
	DefaultField    string       `yaml:"defaultField,omitempty"`
	MemberNameField string       `yaml:"memberNameField,omitempty"`
	Members         []MemberDecl `yaml:"members"`
}

// MemberDecl declares one member in exactly one of the three forms the
// builder accepts: a field mapping, a positional row, or a bare value.
type MemberDecl struct {
	Name   string         `yaml:"name"`
	Fields map[string]any `yaml:"fields,omitempty"`
	Row    []any          `yaml:"row,omitempty"`
	Value  yaml.Node      `yaml:"value,omitempty"`
}

// Parse reads a YAML declaration document and builds its models in file
// order. A model may extend another model declared earlier in the same file,
// or failing that one already present in the global model registry.
func Parse(data []byte) ([]*staticmodel.Model, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigurationError("", fmt.Sprintf("malformed declaration file: %v", err))
	}
	if len(f.Models) == 0 {
		return nil, errors.NewConfigurationError("", "declaration file declares no models")
	}

	built := make(map[string]*staticmodel.Model, len(f.Models))
	out := make([]*staticmodel.Model, 0, len(f.Models))

	for _, decl := range f.Models {
		if decl.Name == "" {
			return nil, errors.NewConfigurationError("", "model declared without a name")
		}

		b, err := newBuilder(decl, built)
		if err != nil {
			return nil, err
		}
		for _, md := range decl.Members {
			if err := declareMember(b, decl.Name, md); err != nil {
				return nil, err
			}
		}

		m, err := b.Build()
		if err != nil {
			return nil, err
		}
		built[decl.Name] = m
		out = append(out, m)
	}
	return out, nil
}

// Load reads and parses a declaration file from disk.
func Load(path string) ([]*staticmodel.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration file: %w", err)
	}
	return Parse(data)
}

// RegisterAll parses a declaration document and registers every model it
// declares in the global model registry.
func RegisterAll(data []byte) ([]*staticmodel.Model, error) {
	models, err := Parse(data)
	if err != nil {
		return nil, err
	}
	for _, m := range models {
		modelregistry.Register(m)
	}
	return models, nil
}

func newBuilder(decl ModelDecl, built map[string]*staticmodel.Model) (*staticmodel.Builder, error) {
	var opts []staticmodel.Option
	if len(decl.Fields) > 0 {
		opts = append(opts, staticmodel.WithFields(decl.Fields...))
	}
	if decl.PrimaryKey != "" {
		opts = append(opts, staticmodel.WithPrimaryKey(decl.PrimaryKey))
	}
	if decl.DisplayField != "" {
		opts = append(opts, staticmodel.WithDisplayField(decl.DisplayField))
	}
	if decl.DefaultField != "" {
		opts = append(opts, staticmodel.WithDefaultField(decl.DefaultField))
	}
	if decl.MemberNameField != "" {
		opts = append(opts, staticmodel.WithMemberNameField(decl.MemberNameField))
	}

	if decl.Extends == "" {
		return staticmodel.New(decl.Name, opts...), nil
	}

	parent, ok := built[decl.Extends]
	if !ok {
		var err error
		parent, err = modelregistry.Lookup(decl.Extends)
		if err != nil {
			return nil, errors.NewConfigurationError(decl.Name,
				fmt.Sprintf("extends unknown model %q", decl.Extends))
		}
	}
	return parent.Extend(decl.Name, opts...), nil
}

func declareMember(b *staticmodel.Builder, model string, md MemberDecl) error {
	if md.Name == "" {
		return errors.NewConfigurationError(model, "member declared without a name")
	}

	forms := 0
	if md.Fields != nil {
		forms++
	}
	if md.Row != nil {
		forms++
	}
	hasValue := md.Value.Kind != 0
	if hasValue {
		forms++
	}
	if forms != 1 {
		return errors.NewConfigurationError(model,
			fmt.Sprintf("member %s must declare exactly one of fields, row or value", md.Name))
	}

	switch {
	case md.Fields != nil:
		b.Declare(md.Name, staticmodel.Fields(md.Fields))
	case md.Row != nil:
		b.DeclareRow(md.Name, md.Row...)
	default:
		var v any
		if err := md.Value.Decode(&v); err != nil {
			return errors.NewConfigurationError(model,
				fmt.Sprintf("member %s has an undecodable value: %v", md.Name, err))
		}
		b.DeclareValue(md.Name, v)
	}
	return nil
}

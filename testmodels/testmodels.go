/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides sample models shared by tests and examples.
package testmodels

import (
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/staticmodel"
)

// Colors returns the two-member example model used throughout the docs.
func Colors() *staticmodel.Model {
	return staticmodel.New("Color",
		staticmodel.WithFields("pk", "label"),
		staticmodel.WithPrimaryKey("pk"),
		staticmodel.WithDisplayField("label"),
	).
		Declare("RED", staticmodel.Fields{"pk": 1, "label": "Red"}).
		Declare("GREEN", staticmodel.Fields{"pk": 2, "label": "Green"}).
		MustBuild()
}

// RatingSystems returns a model whose members carry date-time metadata.
func RatingSystems() *staticmodel.Model {
	introduced := func(year int) strfmt.DateTime {
		return strfmt.DateTime(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	}

	return staticmodel.New("RatingSystem",
		staticmodel.WithFields("id", "name", "introduced"),
		staticmodel.WithMemberNameField("code"),
	).
		DeclareRow("WORLD", "W", "World Ranking", introduced(2001)).
		DeclareRow("REGIONAL", "R", "Regional Ranking", introduced(2009)).
		DeclareRow("CLUB", "C", "Club Ladder", introduced(2015)).
		MustBuild()
}

// Objects returns the parent model of the extension fixtures.
func Objects() *staticmodel.Model {
	return staticmodel.New("Object",
		staticmodel.WithFields("id", "code", "name"),
	).
		DeclareRow("WAR", 1, "war", "War").
		DeclareRow("PEACE", 2, "peace", "Peace").
		DeclareRow("HATE", 3, "hate", "Hate").
		DeclareRow("LOVE", 4, "love", "Love").
		MustBuild()
}

// Places extends Objects with location metadata; its members declare a
// wider field set than the inherited ones.
func Places(parent *staticmodel.Model) *staticmodel.Model {
	return parent.Extend("Place",
		staticmodel.WithFields("id", "code", "name", "gisLocation", "continent"),
	).
		DeclareRow("JERUSALEM", 5, "jerusalem", "Jerusalem", []float64{31.77, 35.22}, "Asia").
		DeclareRow("GENEVA", 6, "geneva", "Geneva", []float64{46.2, 6.15}, "Europe").
		DeclareRow("AUSCHWITZ", 7, "auschwitz", "Auschwitz", []float64{50.04, 19.18}, "Europe").
		DeclareRow("PARIS", 8, "paris", "Paris", []float64{48.85, 2.35}, "Europe").
		MustBuild()
}

/*
Package staticmodel lets applications declare models whose instances are
fixed, in-code members — enumerated constants with attached metadata — and
query those members like rows of a lightweight in-memory table.

A model is declared once with an explicit builder and frozen into an
immutable registry:

	color := staticmodel.New("Color",
	    staticmodel.WithFields("pk", "label"),
	    staticmodel.WithPrimaryKey("pk"),
	    staticmodel.WithDisplayField("label"),
	).
	    Declare("RED", staticmodel.Fields{"pk": 1, "label": "Red"}).
	    Declare("GREEN", staticmodel.Fields{"pk": 2, "label": "Green"}).
	    MustBuild()

Members are then queried through the model's QuerySet:

	red, err := color.Members().Get(staticmodel.Fields{"label": "Red"})
	labels, err := color.Members().FlatValuesList("label")
	choices, err := color.Members().Choices()

Key Features:
  - Declaration-order registries frozen at Build time; read-only thereafter,
    so concurrent readers need no locking
  - Chainable, lazily evaluated filters with equality, In() set-membership
    and Not() negation criteria
  - Lazy per-field equality indexes, built once and cached for the life of
    the model
  - Model extension: a child registry shares the parent's members by
    reference and may override them by primary key
  - Semantic error types checked with errors.Is()
  - Canonical key strings and reverse lookup for persistence and
    serialization adapters
  - YAML declaration files (declfile package) and a process-global model
    registry (modelregistry package)

For more information, see the documentation at
https://github.com/suparena/staticmodel
*/
package staticmodel

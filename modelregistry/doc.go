/*
Package modelregistry manages a process-global registry of built models.

Persistence and serialization collaborators hold only a model name and a
canonical key string for a member; the registry lets them resolve that pair
back into the member itself:

	func init() {
	    modelregistry.Register(testmodels.Colors())
	}

	member, err := modelregistry.Resolve("Color", 1)
	member, err := modelregistry.ResolveKeyString("Color", "1")

The registry is thread-safe and should be populated during initialization,
typically in init() functions. Registering two models under the same name
panics, as that is a wiring mistake rather than a runtime condition.
*/
package modelregistry

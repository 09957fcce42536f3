package interop

import "reflect"

// Serializer marshals and unmarshals a single value to and from an opaque
// byte encoding. It has no required relationship to encoding/gob, JSON, or
// any other concrete format; a caller wanting persistence picks one and
// wraps it to satisfy this interface. No implementation lives in this
// module: items and frames carry no serialization tag of their own, the
// same way the graph itself carries no storage backend.
type Serializer interface {
	// Marshal encodes v into a caller-owned byte slice.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into v, which must be a non-nil pointer.
	Unmarshal(data []byte, v any) error
}

// ClassLoader resolves a type name to a zero value it can be unmarshaled
// into, mirroring a dynamic-plugin registry: types register themselves by
// name ahead of time, and a loader built from stored data looks its
// concrete type up by the name it was stored under rather than a
// compile-time type parameter.
type ClassLoader interface {
	// Register associates name with the dynamic type of sample, so a
	// later Lookup(name) can produce fresh zero values of that type.
	// Re-registering a name already in use replaces its type.
	Register(name string, sample any)
	// Lookup returns the reflect.Type registered under name, or false
	// if name was never registered.
	Lookup(name string) (reflect.Type, bool)
	// New returns a fresh zero value of the type registered under
	// name, or an error if name is unregistered.
	New(name string) (any, error)
}

// Package interop collects the external-collaborator contracts named
// alongside the frame graph but left outside its design weight:
// serialization and dynamic plugin loading. Neither is implemented here;
// both are satisfied elsewhere by whatever storage or plugin mechanism a
// caller already has (see Serializer and ClassLoader).
package interop

package interop_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/envgraph/interop"
	"github.com/stretchr/testify/require"
)

// jsonSerializer is a minimal Serializer built on encoding/json, used here
// only to exercise the interface shape.
type jsonSerializer struct{}

func (jsonSerializer) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonSerializer) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// mapClassLoader is a minimal in-memory ClassLoader.
type mapClassLoader struct {
	types map[string]reflect.Type
}

func newMapClassLoader() *mapClassLoader {
	return &mapClassLoader{types: make(map[string]reflect.Type)}
}

func (l *mapClassLoader) Register(name string, sample any) {
	l.types[name] = reflect.TypeOf(sample)
}

func (l *mapClassLoader) Lookup(name string) (reflect.Type, bool) {
	t, ok := l.types[name]
	return t, ok
}

func (l *mapClassLoader) New(name string) (any, error) {
	t, ok := l.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unregistered class: %s", name)
	}
	return reflect.New(t).Interface(), nil
}

var (
	_ interop.Serializer  = jsonSerializer{}
	_ interop.ClassLoader = (*mapClassLoader)(nil)
)

type pose struct {
	X, Y, Z float64
}

func TestSerializer_RoundTrip(t *testing.T) {
	t.Parallel()
	var s interop.Serializer = jsonSerializer{}

	data, err := s.Marshal(pose{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)

	var got pose
	require.NoError(t, s.Unmarshal(data, &got))
	require.Equal(t, pose{X: 1, Y: 2, Z: 3}, got)
}

func TestClassLoader_RegisterLookupNew(t *testing.T) {
	t.Parallel()
	var l interop.ClassLoader = newMapClassLoader()

	l.Register("pose", pose{})
	typ, ok := l.Lookup("pose")
	require.True(t, ok)
	require.Equal(t, reflect.TypeOf(pose{}), typ)

	v, err := l.New("pose")
	require.NoError(t, err)
	require.IsType(t, &pose{}, v)
}

func TestClassLoader_LookupUnregistered(t *testing.T) {
	t.Parallel()
	var l interop.ClassLoader = newMapClassLoader()

	_, ok := l.Lookup("missing")
	require.False(t, ok)

	_, err := l.New("missing")
	require.Error(t, err)
}

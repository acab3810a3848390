package envcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_KeysPreserveDeclarationOrder(t *testing.T) {
	keys := []string{"ZULU", "ALPHA", "MIKE"}
	input := map[string]string{"ZULU": "1", "ALPHA": "2", "MIKE": "3"}

	rec, err := Resolve(keys, input, nil)
	require.NoError(t, err)
	assert.Equal(t, keys, rec.Keys())
	assert.Equal(t, 3, rec.Len())
}

func TestRecord_AsMapIsDetached(t *testing.T) {
	rec, err := Resolve(
		[]string{"NAME"},
		map[string]string{"NAME": "original"},
		nil,
	)
	require.NoError(t, err)

	snapshot := rec.AsMap()
	snapshot["NAME"] = "mutated"
	snapshot["INJECTED"] = "nope"

	assert.Equal(t, "original", rec.Value("NAME"))
	_, ok := rec.Get("INJECTED")
	assert.False(t, ok)
}

func TestRecord_KeysCopyIsDetached(t *testing.T) {
	rec, err := Resolve([]string{"A"}, map[string]string{"A": "1"}, nil)
	require.NoError(t, err)

	ks := rec.Keys()
	ks[0] = "tampered"
	assert.Equal(t, []string{"A"}, rec.Keys())
}

func TestRecord_GetUnknownKey(t *testing.T) {
	rec, err := Resolve([]string{"A"}, map[string]string{"A": "1"}, nil)
	require.NoError(t, err)

	v, ok := rec.Get("B")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Nil(t, rec.Value("B"))
}

func TestRecord_FrozenRejectsWrites(t *testing.T) {
	rec, err := Resolve([]string{"A"}, map[string]string{"A": "1"}, nil)
	require.NoError(t, err)

	assert.Panics(t, func() { rec.set("A", "overwrite") })
}

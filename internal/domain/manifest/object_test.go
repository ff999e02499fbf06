package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestObject_PreservesOrder verifies that decode followed by encode keeps key order and raw values.
func TestObject_PreservesOrder(t *testing.T) {
	t.Parallel()

	const doc = `{"name":"demo","version":"1.0.0","scripts":{"start":"node .","build":"tsc"},"a":[1,2.50,{"z":1,"y":2}]}`

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(doc), &obj))
	require.Equal(t, []string{"name", "version", "scripts", "a"}, obj.Keys())

	out, err := json.Marshal(&obj)
	require.NoError(t, err)
	require.Equal(t, doc, string(out))
}

// TestObject_SetAndDelete checks positions of updated, appended and removed keys.
func TestObject_SetAndDelete(t *testing.T) {
	t.Parallel()

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"b":1,"a":2,"c":3}`), &obj))

	require.NoError(t, obj.Set("a", "two"))
	require.NoError(t, obj.Set("d", true))
	obj.Delete("b")
	obj.Delete("missing")

	require.Equal(t, []string{"a", "c", "d"}, obj.Keys())
	require.Equal(t, 3, obj.Len())

	out, err := json.Marshal(&obj)
	require.NoError(t, err)
	require.Equal(t, `{"a":"two","c":3,"d":true}`, string(out))
}

// TestObject_NoHTMLEscape keeps characters common in shell scripts readable.
func TestObject_NoHTMLEscape(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	require.NoError(t, obj.Set("test", "xa && ava > out.txt"))

	raw, ok := obj.Raw("test")
	require.True(t, ok)
	require.Equal(t, `"xa && ava > out.txt"`, string(raw))
}

// TestObject_Decode distinguishes missing fields from type mismatches.
func TestObject_Decode(t *testing.T) {
	t.Parallel()

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"n":5}`), &obj))

	var s string

	ok, err := obj.Decode("missing", &s)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = obj.Decode("n", &s)
	require.True(t, ok)
	require.Error(t, err)
}

// TestObject_NotObject rejects arrays, scalars and null.
func TestObject_NotObject(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{`[]`, `"x"`, `null`, `42`} {
		var obj Object
		require.ErrorIs(t, json.Unmarshal([]byte(doc), &obj), ErrNotObject, doc)
	}
}

// TestObject_DuplicateKeys keeps the first position and the last value.
func TestObject_DuplicateKeys(t *testing.T) {
	t.Parallel()

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), &obj))

	out, err := json.Marshal(&obj)
	require.NoError(t, err)
	require.Equal(t, `{"a":3,"b":2}`, string(out))
}

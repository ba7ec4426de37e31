package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/observe"
)

func newTestNamespace(t *testing.T) (*Namespace, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return NewNamespace(backend, zap.NewNop(), observe.New()), backend
}

func TestGetReturnsDefaultWhenMissing(t *testing.T) {
	ns, backend := newTestNamespace(t)

	got := Get(ns, KeyTasbeeh, map[string]int{"fallback": 1})
	assert.Equal(t, map[string]int{"fallback": 1}, got)
	// A defaulted read must not materialize the key.
	assert.Equal(t, 0, backend.Len())
}

func TestGetToleratesGarbageValues(t *testing.T) {
	ns, backend := newTestNamespace(t)

	for _, raw := range []string{"", "null", "undefined", "{not json", `"wrong shape"`} {
		require.NoError(t, backend.Set(KeyBudget, raw))
		got := Get(ns, KeyBudget, 42)
		assert.Equal(t, 42, got, "raw=%q", raw)
	}
}

func TestPutRoundTrip(t *testing.T) {
	ns, _ := newTestNamespace(t)

	type rec struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	Put(ns, KeyProfile, rec{Name: "a", Count: 3})
	assert.Equal(t, rec{Name: "a", Count: 3}, Get(ns, KeyProfile, rec{}))
}

func TestPutSwallowsWriteFailures(t *testing.T) {
	ns, backend := newTestNamespace(t)
	backend.FailWrites = true

	// Must not panic or surface an error; the record is simply absent.
	Put(ns, KeyProfile, "value")
	backend.FailWrites = false
	assert.Equal(t, "none", Get(ns, KeyProfile, "none"))
}

func TestExportAllSkipsCorruptAndForeignKeys(t *testing.T) {
	ns, backend := newTestNamespace(t)

	require.NoError(t, backend.Set(KeyProfile, `{"name":"x"}`))
	require.NoError(t, backend.Set(KeyTasbeeh, `{broken`))
	require.NoError(t, backend.Set("other_app_key", `"theirs"`))
	require.NoError(t, backend.Set(Prefix+"unknown", `1`))

	out := ns.ExportAll()
	require.Len(t, out, 1)
	assert.JSONEq(t, `{"name":"x"}`, string(out[KeyProfile]))
}

func TestExportRestoreRoundTrip(t *testing.T) {
	src, _ := newTestNamespace(t)
	Put(src, KeyProfile, map[string]string{"name": "b"})
	Put(src, KeyTasbeeh, map[string]int{"2025-01-01": 33})

	dst, _ := newTestNamespace(t)
	dst.RestoreAll(src.ExportAll())

	assert.Equal(t, map[string]string{"name": "b"}, Get(dst, KeyProfile, map[string]string{}))
	assert.Equal(t, map[string]int{"2025-01-01": 33}, Get(dst, KeyTasbeeh, map[string]int{}))
}

func TestRestoreAllDropsUnknownKeys(t *testing.T) {
	ns, backend := newTestNamespace(t)

	ns.RestoreAll(map[string]json.RawMessage{
		KeySettings:  json.RawMessage(`{"dhikrEnabled":true}`),
		"stray":      json.RawMessage(`1`),
		Prefix + "x": json.RawMessage(`2`),
	})
	assert.Equal(t, 1, backend.Len())
	_, ok := backend.Get(KeySettings)
	assert.True(t, ok)
}

func TestWipePreservesListedKeys(t *testing.T) {
	ns, backend := newTestNamespace(t)

	Put(ns, KeyProfile, "p")
	Put(ns, KeyQuran, "q")
	Put(ns, KeySettings, "s")
	require.NoError(t, backend.Set("foreign", "f"))

	ns.Wipe(KeySettings)

	assert.Equal(t, "s", Get(ns, KeySettings, ""))
	assert.Equal(t, "", Get(ns, KeyProfile, ""))
	assert.Equal(t, "", Get(ns, KeyQuran, ""))
	// Keys outside the reserved prefix are never touched.
	v, ok := backend.Get("foreign")
	require.True(t, ok)
	assert.Equal(t, "f", v)
}

func TestIsKnownKeyCoversAllKeys(t *testing.T) {
	for _, k := range AllKeys() {
		assert.True(t, IsKnownKey(k), k)
	}
	assert.False(t, IsKnownKey(Prefix+"nope"))
	assert.False(t, IsKnownKey("profile"))
}

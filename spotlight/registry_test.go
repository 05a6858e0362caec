package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.Register("k", "A", Circle())
	r.Register("k", "B", RoundedRect(3))

	e, ok := r.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "B", e.Anchor)
	assert.Equal(t, RoundedRect(3), e.Shape)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_IgnoresEmptyKey(t *testing.T) {
	r := NewRegistry()
	r.Register("", "A", Circle())
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_FromContributions(t *testing.T) {
	r := FromContributions(
		Contribution{Key: "b", Entry: Entry{Anchor: 1}},
		Contribution{Key: "a", Entry: Entry{Anchor: 2}},
		Contribution{Key: "b", Entry: Entry{Anchor: 3}},
	)

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	e, _ := r.Lookup("b")
	assert.Equal(t, 3, e.Anchor)
}

func TestMerge_LaterPartsWin(t *testing.T) {
	outer := NewRegistry()
	outer.Register("shared", "outer", Circle())
	outer.Register("outer-only", "o", Circle())
	inner := NewRegistry()
	inner.Register("shared", "inner", RoundedRect(1))

	merged := Merge(outer, nil, inner)

	assert.Equal(t, 2, merged.Len())
	e, _ := merged.Lookup("shared")
	assert.Equal(t, "inner", e.Anchor)

	e, _ = outer.Lookup("shared")
	assert.Equal(t, "outer", e.Anchor, "merge must not modify its inputs")
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	r.Register("k", nil, Circle())
	_, ok := r.Lookup("k")
	assert.False(t, ok)
	assert.Nil(t, r.Keys())
}

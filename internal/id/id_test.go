package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("rec")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "rec-"))
	assert.Len(t, strings.TrimPrefix(got, "rec-"), 21)
}

func TestGenerate_NoPrefix(t *testing.T) {
	got, err := Generate("")
	require.NoError(t, err)
	assert.Len(t, got, 21)
	assert.False(t, strings.HasPrefix(got, "-"))
}

func TestMustGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		got := MustGenerate("req")
		_, dup := seen[got]
		require.False(t, dup, "duplicate id %s", got)
		seen[got] = struct{}{}
	}
}

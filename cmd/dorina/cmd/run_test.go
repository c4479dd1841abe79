package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieterich-lab/dorina/engine"
)

func TestParseMatch(t *testing.T) {
	anyMatch, err := parseMatch("any")
	require.NoError(t, err)
	assert.Equal(t, engine.MatchAny, anyMatch)

	all, err := parseMatch("all")
	require.NoError(t, err)
	assert.Equal(t, engine.MatchAll, all)

	_, err = parseMatch("sometimes")
	assert.Error(t, err)
}

func TestParseCombine(t *testing.T) {
	for in, want := range map[string]engine.CombineOp{
		"or": engine.CombineOr, "and": engine.CombineAnd,
		"xor": engine.CombineXor, "not": engine.CombineNot,
	} {
		got, err := parseCombine(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseCombine("nand")
	assert.Error(t, err)
}

func TestGenesFilterEmptyMeansAll(t *testing.T) {
	f := genesFilter(nil)
	assert.True(t, f.All)
}

func TestGenesFilterExplicitAll(t *testing.T) {
	f := genesFilter(stringList{"gene01.01", "all"})
	assert.True(t, f.All)
}

func TestGenesFilterRestricts(t *testing.T) {
	f := genesFilter(stringList{"gene01.01", "gene01.02"})
	assert.False(t, f.All)
	assert.True(t, f.Allows("gene01.01"))
	assert.False(t, f.Allows("gene01.03"))
}

func TestStringListAccumulates(t *testing.T) {
	var l stringList
	require.NoError(t, l.Set("PARCLIP_scifi"))
	require.NoError(t, l.Set("PICTAR_fake01"))
	assert.Equal(t, stringList{"PARCLIP_scifi", "PICTAR_fake01"}, l)
}

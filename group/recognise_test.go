package group

// Copyright (c) 2025 Colin McRae

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifyAbelian(t *testing.T) {
	// The commutator is killed through the second relator
	require.True(t, mustPresentation(t, 2, "g0^2", "g0 g1 g0^-1 g1^-1").IdentifyAbelian())
	require.True(t, mustPresentation(t, 1, "g0^7").IdentifyAbelian())
	require.False(t, mustPresentation(t, 2).IdentifyAbelian())
	require.False(t, mustPresentation(t, 2, "g0^2", "g1^2").IdentifyAbelian())
}

func TestIdentifyFreeProduct(t *testing.T) {
	factors := mustPresentation(t, 3, "g0^2", "g1^3").IdentifyFreeProduct()
	require.Len(t, factors, 3)
	require.Equal(t, "< a | a^2 >", factors[0].String())
	require.Equal(t, "< a | a^3 >", factors[1].String())
	require.Equal(t, "< a >", factors[2].String())

	// Generators linked through a chain of relators form one factor
	factors = mustPresentation(t, 4, "g2^2", "g0 g3", "g3 g1^-1", "g2^3").IdentifyFreeProduct()
	require.Len(t, factors, 2)
	require.Equal(t, "< a b c | a c, c b^-1 >", factors[0].String())
	require.Equal(t, "< a | a^2, a^3 >", factors[1].String())

	require.Nil(t, mustPresentation(t, 2, "g0 g1 g0^-1 g1^-1").IdentifyFreeProduct())
	require.Nil(t, mustPresentation(t, 1).IdentifyFreeProduct())
	require.Nil(t, mustPresentation(t, 2).IdentifyFreeProduct())
}

func TestIdentifySimplyIsomorphicTo(t *testing.T) {
	p := mustPresentation(t, 2, "g0^2", "g1^3")
	require.True(t, p.IdentifySimplyIsomorphicTo(mustPresentation(t, 2, "g1^2", "g0^3")))
	require.False(t, p.IdentifySimplyIsomorphicTo(mustPresentation(t, 2, "g0^2", "g1^4")))
	require.False(t, p.IdentifySimplyIsomorphicTo(mustPresentation(t, 3, "g0^2", "g1^3")))
	require.False(t, p.IdentifySimplyIsomorphicTo(mustPresentation(t, 2)))
	require.True(t, mustPresentation(t, 2).IdentifySimplyIsomorphicTo(mustPresentation(t, 2)))

	z2 := mustPresentation(t, 2, "g0 g1 g0^-1 g1^-1")
	require.True(t, z2.IdentifySimplyIsomorphicTo(mustPresentation(t, 2, "g1 g0 g1^-1 g0^-1")))
}

func TestRecogniseGroup(t *testing.T) {
	for _, tc := range []struct {
		p        *Presentation
		expected string
	}{
		{New(0), "0"},
		{mustPresentation(t, 1, "g0"), "0"},
		{mustPresentation(t, 2), "Free(2)"},
		{mustPresentation(t, 2, "g0 g1 g0^-1 g1^-1"), "2 Z"},
		{mustPresentation(t, 2, "g0^2", "g1^3", "g0 g1 g0^-1 g1^-1"), "Z_6"},
		{mustPresentation(t, 2, "g0^2", "g1^2"), "FreeProduct( Z_2, Z_2 )"},
		{mustPresentation(t, 2, "g0 g1 g0^-1 g1"), "Z~Z w/monodromy a ↦ a^-1"},
	} {
		before := tc.p.Clone()
		actual, err := tc.p.RecogniseGroup(false)
		require.NoError(t, err)
		require.Equal(t, tc.expected, actual, before.String())
		require.True(t, before.Equal(tc.p))
	}
	actual, err := mustPresentation(t, 2, "g0 g1 g0^-1 g1").RecogniseGroup(true)
	require.NoError(t, err)
	require.Equal(t, "ℤ~ℤ w/monodromy a ↦ a^-1", actual)
}

func TestProliferateRelators(t *testing.T) {
	p := mustPresentation(t, 1, "g0^2", "g0^3")
	p.ProliferateRelators(1)

	// Six partial matches of a^3 in a^2 and six full matches of a^2 in a^3
	require.Equal(t, 14, p.CountRelators())
	for j := 2; j < p.CountRelators(); j++ {
		require.Equal(t, 1, p.Relator(j).WordLength())
	}
	ab, err := p.Abelianisation()
	require.NoError(t, err)
	require.True(t, ab.IsTrivial())

	q := mustPresentation(t, 1, "g0^2")
	q.ProliferateRelators(0)
	require.Equal(t, 1, q.CountRelators())
}

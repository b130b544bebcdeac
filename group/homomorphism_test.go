package group

// Copyright (c) 2025 Colin McRae

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/FPGroup/word"
)

func TestHomomorphismEvaluate(t *testing.T) {
	free2 := New(2)
	h, err := NewHomomorphism(free2, free2, []word.Word{mustWord(t, "g0 g1"), mustWord(t, "g1")})
	require.NoError(t, err)
	require.False(t, h.KnowsInverse())

	image, err := h.Evaluate(mustWord(t, "g0 g1^-1 g0^-1"))
	require.NoError(t, err)
	require.Equal(t, "g0 g1^-1 g0^-1", image.String())

	_, err = h.Evaluate(word.Generator(2))
	require.True(t, errors.Is(err, word.ErrIndexOutOfRange))

	_, err = h.InvEvaluate(word.Generator(0))
	require.Error(t, err)

	_, err = NewHomomorphism(free2, New(1), []word.Word{word.Generator(0), word.Generator(1)})
	require.True(t, errors.Is(err, word.ErrIndexOutOfRange))
	_, err = NewHomomorphism(free2, free2, []word.Word{word.Generator(0)})
	require.True(t, errors.Is(err, word.ErrIndexOutOfRange))
}

func TestCompose(t *testing.T) {
	free2 := New(2)
	f, err := NewIsomorphism(
		free2, free2,
		[]word.Word{mustWord(t, "g0 g1"), mustWord(t, "g1")},
		[]word.Word{mustWord(t, "g0 g1^-1"), mustWord(t, "g1")},
	)
	require.NoError(t, err)
	g, err := NewIsomorphism(
		free2, free2,
		[]word.Word{mustWord(t, "g1"), mustWord(t, "g0")},
		[]word.Word{mustWord(t, "g1"), mustWord(t, "g0")},
	)
	require.NoError(t, err)
	require.True(t, f.VerifyIsomorphism())
	require.True(t, g.VerifyIsomorphism())

	// f o g applies g first
	h, err := Compose(f, g)
	require.NoError(t, err)
	require.Equal(t, "g1", h.EvaluateGenerator(0).String())
	require.Equal(t, "g0 g1", h.EvaluateGenerator(1).String())
	require.True(t, h.KnowsInverse())
	require.True(t, h.VerifyIsomorphism())

	// The inverse is g^-1 o f^-1
	require.Equal(t, "g1 g0^-1", h.InvEvaluateGenerator(0).String())
	require.Equal(t, "g0", h.InvEvaluateGenerator(1).String())

	require.True(t, h.Invert())
	require.Equal(t, "g1 g0^-1", h.EvaluateGenerator(0).String())

	_, err = Compose(f, NewIdentity(New(3)))
	require.True(t, errors.Is(err, word.ErrIndexOutOfRange))
}

func TestVerify(t *testing.T) {
	z6 := mustPresentation(t, 1, "g0^6")
	z3 := mustPresentation(t, 1, "g0^3")
	z2 := mustPresentation(t, 1, "g0^2")

	// Z_6 -> Z_3 by reduction is a homomorphism, Z_3 -> Z_6 by g -> g is not
	onto, err := NewHomomorphism(z6, z3, []word.Word{word.Generator(0)})
	require.NoError(t, err)
	require.True(t, onto.Verify())
	into, err := NewHomomorphism(z3, z6, []word.Word{word.Generator(0)})
	require.NoError(t, err)
	require.False(t, into.Verify())

	// Z_3 -> Z_6 by g -> g^2 is a homomorphism
	into, err = NewHomomorphism(z3, z6, []word.Word{mustWord(t, "g0^2")})
	require.NoError(t, err)
	require.True(t, into.Verify())

	// g -> g^-1 is an automorphism of Z_6
	iso, err := NewIsomorphism(z6, z6, []word.Word{mustWord(t, "g0^5")}, []word.Word{mustWord(t, "g0^5")})
	require.NoError(t, err)
	require.True(t, iso.Verify())
	require.True(t, iso.VerifyIsomorphism())
	require.True(t, NewIdentity(z2).Invert())
	require.False(t, onto.Invert())

	require.Contains(t, iso.String(), "map from < a | a^6 >")
}

func TestHomomorphismIntelligentSimplify(t *testing.T) {
	// A map out of a presentation that simplifies to < a | a^2 >
	domain := mustPresentation(t, 2, "g0 g1^-1", "g1^2")
	codomain := mustPresentation(t, 1, "g0^4")
	h, err := NewHomomorphism(domain, codomain, []word.Word{mustWord(t, "g0^2"), mustWord(t, "g0^2")})
	require.NoError(t, err)
	require.True(t, h.Verify())

	changed, err := h.IntelligentSimplify()
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, h.Domain().CountGenerators())
	require.Equal(t, "< a | a^2 >", h.Domain().String())
	require.Equal(t, "g0^2", h.EvaluateGenerator(0).String())
	require.True(t, h.Verify())
}

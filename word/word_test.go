package word

// Copyright (c) 2025 Colin McRae

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Word {
	w, err := Parse(s)
	require.NoError(t, err)
	return w
}

// randomWord returns an unreduced word with up to maxTerms terms in
// generators 0..numGens-1
func randomWord(rng *rand.Rand, numGens, maxTerms int) Word {
	numTerms := rng.Intn(maxTerms + 1)
	retVal := Word{}
	for i := 0; i < numTerms; i++ {
		retVal.terms = append(retVal.terms, Term{Generator: rng.Intn(numGens), Exponent: rng.Intn(7) - 3})
	}
	return retVal
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected []Term
	}{
		{"aBBaa", []Term{{0, 1}, {1, -2}, {0, 2}}},
		{"g0^3 g1^-2 g0", []Term{{0, 3}, {1, -2}, {0, 1}}},
		{"aaaBBa", []Term{{0, 3}, {1, -2}, {0, 1}}},
		{"A^-2", []Term{{0, 2}}},
		{"x y", []Term{{23, 1}, {24, 1}}},
		{"g", []Term{{6, 1}}},
		{"g12^-1", []Term{{12, -1}}},
		{"  a^2\tb ", []Term{{0, 2}, {1, 1}}},
		{"aA", nil},
		{"", nil},
	} {
		w := mustParse(t, tc.input)
		require.Equal(t, tc.expected, w.Terms(), "input %q", tc.input)
	}

	for _, input := range []string{"g0^^2", "a3", "a^", "a^-", "a$", "g0 2", "^2"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		require.True(t, errors.Is(err, ErrParse), "input %q", input)
	}
}

func TestText(t *testing.T) {
	w := mustParse(t, "aBBaa")
	require.Equal(t, "a b^-2 a^2", w.Text(true))
	require.Equal(t, "g0 g1^-2 g0^2", w.Text(false))
	require.Equal(t, "g0 g1^-2 g0^2", w.String())
	require.Equal(t, "1", Word{}.String())
	require.Equal(t, 5, w.WordLength())
	require.Equal(t, 3, w.CountTerms())
}

func TestSimplify(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	numChanged := 0
	for iter := 0; iter < 500; iter++ {
		w := randomWord(rng, 3, 12)
		if w.Simplify(false) {
			numChanged++
		}
		for i := 0; i < w.CountTerms(); i++ {
			require.NotEqual(t, 0, w.Term(i).Exponent)
			if i > 0 {
				require.NotEqual(t, w.Term(i-1).Generator, w.Term(i).Generator)
			}
		}
		before := w.Clone()
		require.False(t, w.Simplify(false))
		require.True(t, before.Equal(w))

		// The product with the inverse is the identity
		require.True(t, w.Multiply(w.Inverse()).IsTrivial())
		require.True(t, w.Inverse().Inverse().Equal(w))

		// Cyclic reduction leaves distinct first and last generators
		w.Simplify(true)
		if n := w.CountTerms(); n > 1 {
			require.NotEqual(t, w.Term(0).Generator, w.Term(n-1).Generator)
		}
		require.False(t, w.Simplify(true))
	}
	t.Logf("%d of 500 random words were not already reduced", numChanged)

	w := mustParse(t, "a b A")
	require.True(t, w.Simplify(true))
	require.Equal(t, "b", w.Text(true))
	w = mustParse(t, "a b a")
	require.True(t, w.Simplify(true))
	require.Equal(t, "a^2 b", w.Text(true))
}

func TestPowerAndCycle(t *testing.T) {
	w := mustParse(t, "ab")
	require.Equal(t, "b^-1 a^-1 b^-1 a^-1", w.Power(-2).Text(true))
	require.Equal(t, "a b a b a b", w.Power(3).Text(true))
	require.True(t, w.Power(0).IsTrivial())

	w = mustParse(t, "a b^2 c")
	w.CycleRight()
	require.Equal(t, "b^2 c a", w.Text(true))
	w.CycleLeft()
	require.Equal(t, "a b^2 c", w.Text(true))
	w.CycleLeft()
	require.Equal(t, "c a b^2", w.Text(true))
}

func TestSubstitute(t *testing.T) {
	// The substituted word may be the target itself
	w := mustParse(t, "a b a")
	require.True(t, w.Substitute(0, w, false))
	require.Equal(t, mustParse(t, "abababa").Terms(), w.Terms())

	w = mustParse(t, "a^2 b A")
	require.True(t, w.Substitute(0, mustParse(t, "cB"), false))
	require.Equal(t, "c b^-1 c b c^-1", w.Text(true))
	require.False(t, w.Substitute(5, mustParse(t, "a"), false))

	w = mustParse(t, "a b")
	require.True(t, w.Substitute(1, Word{}, true))
	require.Equal(t, "a", w.Text(true))
}

func TestSubstituteAllComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	const numGens = 4
	for iter := 0; iter < 200; iter++ {
		first := make([]Word, numGens)
		second := make([]Word, numGens)
		for i := 0; i < numGens; i++ {
			first[i] = randomWord(rng, numGens, 4)
			first[i].Simplify(false)
			second[i] = randomWord(rng, numGens, 4)
			second[i].Simplify(false)
		}
		composite := make([]Word, numGens)
		for i := 0; i < numGens; i++ {
			composite[i] = first[i].Clone()
			require.NoError(t, composite[i].SubstituteAll(second, false))
		}
		w := randomWord(rng, numGens, 8)
		w.Simplify(false)
		stepwise := w.Clone()
		require.NoError(t, stepwise.SubstituteAll(first, false))
		require.NoError(t, stepwise.SubstituteAll(second, false))
		direct := w.Clone()
		require.NoError(t, direct.SubstituteAll(composite, false))
		require.True(t, stepwise.Equal(direct), "%s vs %s", stepwise, direct)
	}

	w := mustParse(t, "a d")
	err := w.SubstituteAll([]Word{Generator(0), Generator(1)}, false)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestRelabel(t *testing.T) {
	w := mustParse(t, "a b c")
	require.NoError(t, w.Relabel([]int{2, -1, 0}))
	require.Equal(t, []Term{{2, 1}, {0, 1}}, w.Terms())
	require.True(t, errors.Is(w.Relabel([]int{0}), ErrIndexOutOfRange))
}

func TestAliasedCopies(t *testing.T) {
	w := mustParse(t, "a b")
	alias := w
	w.AddTermLast(Term{Generator: 2, Exponent: 1})
	alias.AddTermLast(Term{Generator: 3, Exponent: 1})
	require.Equal(t, "a b c", w.Text(true))
	require.Equal(t, "a b d", alias.Text(true))
}

package word

// Copyright (c) 2025 Colin McRae

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBestSubstitution(t *testing.T) {
	for _, tc := range []struct {
		target, relator string
		expected        Substitution
		rewritten       string
	}{
		// a^2 = 1 turns a^3 b into b a
		{"a^3 b", "a^2", Substitution{StartInA: 1, StartInB: 1, Length: 2, InvertB: false, Score: 2}, "b a"},
		// ab = 1 turns (ab)^-1 c into c
		{"B A c", "a b", Substitution{StartInA: 0, StartInB: 0, Length: 2, InvertB: true, Score: 2}, "c"},
		// a^3 = 1 turns a^2 b into a^-1 b
		{"a^2 b", "a^3", Substitution{StartInA: 0, StartInB: 2, Length: 2, InvertB: false, Score: 1}, "a^-1 b"},
	} {
		target := mustParse(t, tc.target)
		relator := mustParse(t, tc.relator)
		best, ok := BestSubstitution(target, relator, 1)
		require.True(t, ok)
		require.Equal(t, tc.expected, best, "target %q relator %q", tc.target, tc.relator)
		ApplySubstitution(&target, relator, best)
		require.Equal(t, tc.rewritten, target.Text(true))
	}
}

func TestSubstitutionMetricEarlyExits(t *testing.T) {
	require.Empty(t, SubstitutionMetric(mustParse(t, "a"), mustParse(t, "a"), 1))
	require.Empty(t, SubstitutionMetric(mustParse(t, "ab"), Word{}, 1))
	require.Empty(t, SubstitutionMetric(mustParse(t, "ab"), mustParse(t, "c^5"), 1))
	require.NotEmpty(t, SubstitutionMetric(mustParse(t, "ab"), mustParse(t, "a^5"), 4))
	_, ok := BestSubstitution(mustParse(t, "ab"), mustParse(t, "cd"), 1)
	require.False(t, ok)
}

func TestSubstitutionMetricOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	numApplied := 0
	for iter := 0; iter < 300; iter++ {
		target := randomWord(rng, 3, 6)
		target.Simplify(false)
		relator := randomWord(rng, 3, 4)
		relator.Simplify(true)
		step := rng.Intn(3) + 1
		subs := SubstitutionMetric(target, relator, step)
		for k := 1; k < len(subs); k++ {
			require.False(t, subs[k].Less(subs[k-1]))
		}
		for _, sub := range subs {
			if sub.Length < relator.WordLength() {
				require.Greater(t, sub.Score, -step)
			}
		}
		best, ok := BestSubstitution(target, relator, step)
		require.Equal(t, len(subs) > 0, ok)
		if !ok {
			continue
		}
		require.Equal(t, subs[0], best)

		// A positive score shortens the target
		if best.Score > 0 {
			before := target.WordLength()
			ApplySubstitution(&target, relator, best)
			require.Less(t, target.WordLength(), before)
			numApplied++
		}
	}
	t.Logf("applied %d positive substitutions", numApplied)
}

package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"math/rand"

	"github.com/predrag3141/FPGroup/group"
	"github.com/predrag3141/FPGroup/presfile"
	"github.com/predrag3141/FPGroup/word"
)

func intPtr(i int) *int { return &i }

// DefaultCatalogue returns presentations whose simplified forms,
// abelianisations and names are known
func DefaultCatalogue() *presfile.Catalogue {
	return &presfile.Catalogue{
		Presentations: []presfile.Entry{
			{
				Name: "trivial-by-relator", Generators: 1, Relators: []string{"g0"},
				Expect: presfile.Expect{Generators: intPtr(0), Relators: intPtr(0), Abelian: "0", Recognised: "0"},
			},
			{
				Name: "free-abelian-rank-2", Generators: 2, Relators: []string{"g0 g1 g0^-1 g1^-1"},
				Expect: presfile.Expect{Generators: intPtr(2), Relators: intPtr(1), Abelian: "2 Z", Recognised: "2 Z"},
			},
			{
				Name: "cyclic-5", Generators: 1, Relators: []string{"g0^5"},
				Expect: presfile.Expect{Generators: intPtr(1), Relators: intPtr(1), Abelian: "Z_5", Recognised: "Z_5"},
			},
			{
				Name: "cyclic-6", Generators: 2, Relators: []string{"g0^2", "g1^3", "g0 g1 g0^-1 g1^-1"},
				Expect: presfile.Expect{Abelian: "Z_6", Recognised: "Z_6"},
			},
			{
				Name: "killed-generator", Generators: 2, Relators: []string{"g0 g1^2"},
				Expect: presfile.Expect{Generators: intPtr(1), Relators: intPtr(0), Abelian: "Z", Recognised: "Z"},
			},
			{
				Name: "nielsen-reducible", Generators: 2, Relators: []string{"g0 g1 g0 g1", "g1^3"},
				Expect: presfile.Expect{Generators: intPtr(2), Relators: intPtr(2), Abelian: "Z_6"},
			},
			{
				Name: "klein-bottle", Generators: 2, Relators: []string{"g0 g1 g0^-1 g1"},
				Expect: presfile.Expect{Abelian: "Z + Z_2", Recognised: "Z~Z w/monodromy a ↦ a^-1"},
			},
			{
				Name: "z2-free-z2", Generators: 2, Relators: []string{"g0^2", "g1^2"},
				Expect: presfile.Expect{Generators: intPtr(2), Relators: intPtr(2), Abelian: "2 Z_2", Recognised: "FreeProduct( Z_2, Z_2 )"},
			},
			{
				Name: "free-rank-2", Generators: 2,
				Expect: presfile.Expect{Generators: intPtr(2), Relators: intPtr(0), Abelian: "2 Z", Recognised: "Free(2)"},
			},
			{
				Name: "trefoil", Generators: 2, Relators: []string{"g0^3 g1^-2"},
				Expect: presfile.Expect{Abelian: "Z"},
			},
		},
	}
}

// NewRandomPresentation returns a presentation on nGens generators with
// nRels freely reduced relators of up to maxLen terms, each with exponent
// in [-2, 2]. Relators may be empty.
func NewRandomPresentation(rng *rand.Rand, nGens, nRels, maxLen int) *group.Presentation {
	retVal := group.New(nGens)
	for j := 0; j < nRels; j++ {
		numTerms := rng.Intn(maxLen + 1)
		terms := make([]word.Term, 0, numTerms)
		for k := 0; k < numTerms; k++ {
			exponent := rng.Intn(4) - 2
			if exponent >= 0 {
				exponent++
			}
			terms = append(terms, word.Term{Generator: rng.Intn(nGens), Exponent: exponent})
		}
		retVal.AddRelator(word.New(terms...))
	}
	return retVal
}

package group

// Copyright (c) 2025 Colin McRae

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// sortByLength stably orders relators by ascending word length
func (p *Presentation) sortByLength() {
	sort.SliceStable(p.relators, func(x, y int) bool {
		return p.relators[x].WordLength() < p.relators[y].WordLength()
	})
}

// SmallCancellation repeatedly applies shorter relators to longer ones
// through Dehn substitutions and kills generators that some relator uses
// exactly once. It returns the isomorphism from the old presentation to
// the new one, or nil if nothing changed.
func (p *Presentation) SmallCancellation() (*Homomorphism, error) {
	caller := "SmallCancellation"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	didSomething := false
	oldPres := p.Clone()

	// table[i] is the current image of old generator i
	table := identityMap(p.nGenerators)
	isAlive := func(i int) bool {
		return table[i].CountTerms() == 1 && table[i].Term(0) == word.Term{Generator: i, Exponent: 1}
	}

	for iterate := true; iterate; {
		iterate = false
		for j := range p.relators {
			p.relators[j].Simplify(true)
		}
		p.sortByLength()
		for len(p.relators) > 0 && p.relators[0].WordLength() == 0 {
			p.relators = p.relators[1:]
		}

		// Apply shorter relators to longer ones
		for j := range p.relators {
			if p.relators[j].WordLength() == 0 {
				continue
			}
			for k := j + 1; k < len(p.relators); k++ {
				sub, ok := word.BestSubstitution(p.relators[k], p.relators[j], 1)
				if ok && sub.Score > 0 {
					word.ApplySubstitution(&p.relators[k], p.relators[j], sub)
					iterate, didSomething = true, true
				}
			}
		}

		// Kill generators used exactly once in some relator
		p.sortByLength()
		for j := 0; j < len(p.relators); j++ {
			r := p.relators[j]
			usage := make([]int, p.nGenerators)
			for k := 0; k < r.CountTerms(); k++ {
				t := r.Term(k)
				if t.Exponent < 0 {
					usage[t.Generator] -= t.Exponent
				} else {
					usage[t.Generator] += t.Exponent
				}
			}
			killed := false
			for i := 0; i < p.nGenerators && !killed; i++ {
				if usage[i] != 1 || !isAlive(i) {
					continue
				}
				killer := complementOf(r, i)
				for k := range table {
					table[k].Substitute(i, killer, false)
				}
				for k := range p.relators {
					p.relators[k].Substitute(i, killer, false)
				}
				iterate, didSomething, killed = true, true, true
			}
			if killed && r.WordLength() > 3 {
				break
			}
		}
	}

	// Compact the surviving generators
	newIndex := make([]int, p.nGenerators)
	var revMap []word.Word
	for i := range newIndex {
		newIndex[i] = -1
		if isAlive(i) {
			newIndex[i] = len(revMap)
			revMap = append(revMap, word.Generator(i))
		}
	}
	if err := p.relabel(newIndex, len(revMap), caller); err != nil {
		return nil, err
	}
	for k := range table {
		if err := table[k].Relabel(newIndex); err != nil {
			return nil, errors.Wrapf(err, "%s: substitution table entry %d", caller, k)
		}
	}
	if !didSomething {
		return nil, nil
	}
	return NewIsomorphism(oldPres, p, table, revMap)
}

// complementOf returns the word w with g_i = w, given a relator r that
// uses g_i exactly once: for r = P g_i^e Q, w is (QP)^-1 when e = 1 and
// QP when e = -1
func complementOf(r word.Word, i int) word.Word {
	var prefix, complement word.Word
	inverted := true
	before := true
	for k := 0; k < r.CountTerms(); k++ {
		t := r.Term(k)
		switch {
		case t.Generator == i:
			inverted = t.Exponent != 1
			before = false
		case before:
			prefix.AddTermLast(t)
		default:
			complement.AddTermLast(t)
		}
	}
	complement.AddTermsLast(prefix)
	complement.Simplify(false)
	if !inverted {
		complement.Invert()
	}
	return complement
}

package group

// Copyright (c) 2025 Colin McRae

import (
	"sort"

	"github.com/predrag3141/FPGroup/word"
)

// PrettyRewriting is a cosmetic pass. It kills generators that equal the
// identity by a relator of length one, deletes empty relators, inverts
// relators with negative exponent sum, rotates each relator to start with
// its smallest generator and sorts the relators. It returns the
// isomorphism when generators were deleted and nil otherwise.
func (p *Presentation) PrettyRewriting() (*Homomorphism, error) {
	caller := "PrettyRewriting"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	oldPres := p.Clone()
	for j := range p.relators {
		p.relators[j].Simplify(true)
	}

	deleted := make([]bool, p.nGenerators)
	numDeleted := 0
	for reloop := true; reloop; {
		reloop = false
		var killers []int
		for _, r := range p.relators {
			if r.CountTerms() == 1 && abs(r.Term(0).Exponent) == 1 {
				if g := r.Term(0).Generator; !deleted[g] {
					deleted[g] = true
					numDeleted++
					killers = append(killers, g)
				}
			}
		}
		for _, g := range killers {
			for j := range p.relators {
				if p.relators[j].Substitute(g, word.Word{}, true) {
					reloop = true
				}
			}
		}
	}
	kept := p.relators[:0]
	for _, r := range p.relators {
		if r.CountTerms() > 0 {
			kept = append(kept, r)
		}
	}
	p.relators = kept

	if numDeleted == 0 {
		p.normaliseRelators()
		return nil, nil
	}

	newIndex := make([]int, p.nGenerators)
	downSub := make([]word.Word, p.nGenerators)
	upSub := make([]word.Word, 0, p.nGenerators-numDeleted)
	for i := range newIndex {
		newIndex[i] = -1
		if !deleted[i] {
			newIndex[i] = len(upSub)
			downSub[i] = word.Generator(len(upSub))
			upSub = append(upSub, word.Generator(i))
		}
	}
	if err := p.relabel(newIndex, len(upSub), caller); err != nil {
		return nil, err
	}
	p.normaliseRelators()
	return NewIsomorphism(oldPres, p, downSub, upSub)
}

// normaliseRelators normalises every relator and sorts them
func (p *Presentation) normaliseRelators() {
	for j := range p.relators {
		normaliseRelator(&p.relators[j])
	}
	sort.SliceStable(p.relators, func(x, y int) bool {
		return prettyLess(p.relators[x], p.relators[y])
	})
}

// prettyOnto runs PrettyRewriting and composes its isomorphism onto acc.
// When no generator was deleted, acc's codomain becomes the rewritten
// presentation: the generators are the same and each relator was only
// replaced by a cyclic conjugate or its inverse.
func (p *Presentation) prettyOnto(acc *Homomorphism, caller string) (*Homomorphism, error) {
	h, err := p.PrettyRewriting()
	if err != nil {
		return nil, err
	}
	if h != nil {
		return composeOnto(h, acc, caller)
	}
	if acc != nil {
		acc.codomain = p.Clone()
	}
	return acc, nil
}

// normaliseRelator inverts r if its exponent sum is negative and rotates it
// to start with its smallest generator
func normaliseRelator(r *word.Word) {
	if r.CountTerms() == 0 {
		return
	}
	if r.TotalExponentSum() < 0 {
		r.Invert()
	}
	smallest := r.Term(0).Generator
	for k := 1; k < r.CountTerms(); k++ {
		if g := r.Term(k).Generator; g < smallest {
			smallest = g
		}
	}
	for r.Term(0).Generator != smallest {
		r.CycleRight()
	}
}

// usedGenerators returns the sorted distinct generators of w
func usedGenerators(w word.Word) []int {
	seen := make(map[int]bool)
	var retVal []int
	for k := 0; k < w.CountTerms(); k++ {
		if g := w.Term(k).Generator; !seen[g] {
			seen[g] = true
			retVal = append(retVal, g)
		}
	}
	sort.Ints(retVal)
	return retVal
}

// prettyLess orders relators by number of distinct generators, then the
// sorted generator lists, then word length, then number of terms, then
// letter by letter
func prettyLess(first, second word.Word) bool {
	usedF, usedS := usedGenerators(first), usedGenerators(second)
	if len(usedF) != len(usedS) {
		return len(usedF) < len(usedS)
	}
	for k := range usedF {
		if usedF[k] != usedS[k] {
			return usedF[k] < usedS[k]
		}
	}
	if first.WordLength() != second.WordLength() {
		return first.WordLength() < second.WordLength()
	}
	if first.CountTerms() != second.CountTerms() {
		return first.CountTerms() < second.CountTerms()
	}
	splayF, splayS := first.Splay(), second.Splay()
	for k := range splayF {
		if splayF[k].Generator != splayS[k].Generator {
			return splayF[k].Generator < splayS[k].Generator
		}
		if splayF[k].Exponent != splayS[k].Exponent {
			return splayF[k].Exponent < splayS[k].Exponent
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package group

// Copyright (c) 2025 Colin McRae

import (
	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// NielsenTransposition swaps generators i and j in every relator and
// returns whether any relator changed
func (p *Presentation) NielsenTransposition(i, j int) (bool, error) {
	caller := "NielsenTransposition"
	if err := p.checkGenerators(caller, i, j); err != nil {
		return false, err
	}
	if i == j {
		return false, nil
	}
	swap := make([]int, p.nGenerators)
	for k := range swap {
		swap[k] = k
	}
	swap[i], swap[j] = j, i
	changed := false
	for k := range p.relators {
		if p.relators[k].UsesGenerator(i) || p.relators[k].UsesGenerator(j) {
			if err := p.relators[k].Relabel(swap); err != nil {
				return changed, errors.Wrapf(err, "%s: relator %d", caller, k)
			}
			changed = true
		}
	}
	return changed, nil
}

// NielsenInvert replaces generator i by its inverse in every relator and
// returns whether any relator changed
func (p *Presentation) NielsenInvert(i int) (bool, error) {
	if err := p.checkGenerators("NielsenInvert", i); err != nil {
		return false, err
	}
	changed := false
	inverse := word.New(word.Term{Generator: i, Exponent: -1})
	for k := range p.relators {
		if p.relators[k].Substitute(i, inverse, false) {
			changed = true
		}
	}
	return changed, nil
}

// NielsenCombine substitutes g_i g_j^-k (rightMult) or g_j^-k g_i for every
// occurrence of g_i in the relators and returns whether any relator changed.
func (p *Presentation) NielsenCombine(i, j, k int, rightMult bool) (bool, error) {
	if err := p.checkGenerators("NielsenCombine", i, j); err != nil {
		return false, err
	}
	if k == 0 || i == j {
		return false, nil
	}
	var let word.Word
	if rightMult {
		let = word.New(word.Term{Generator: i, Exponent: 1}, word.Term{Generator: j, Exponent: -k})
	} else {
		let = word.New(word.Term{Generator: j, Exponent: -k}, word.Term{Generator: i, Exponent: 1})
	}
	changed := false
	for r := range p.relators {
		if p.relators[r].Substitute(i, let, true) {
			changed = true
		}
	}
	return changed, nil
}

// checkGenerators returns ErrIndexOutOfRange unless every index names a generator
func (p *Presentation) checkGenerators(caller string, indices ...int) error {
	for _, i := range indices {
		if i < 0 || i >= p.nGenerators {
			return errors.Wrapf(word.ErrIndexOutOfRange, "%s: generator %d of %d", caller, i, p.nGenerators)
		}
	}
	return nil
}

// nielsenMove identifies one of the four Nielsen substitutions scored by
// IntelligentNielsen
type nielsenMove int

const (
	// g_i <- g_i g_j^-1
	moveIJ nielsenMove = iota
	// g_i <- g_i g_j
	moveIJi
	// g_i <- g_j^-1 g_i
	moveJI
	// g_i <- g_j g_i
	moveJIi
)

// scoreNielsen estimates the length decrease of the four Nielsen
// substitutions of g_i by g_j over all relators
func (p *Presentation) scoreNielsen(i, j int) [4]int {
	var score [4]int
	for _, r := range p.relators {
		n := r.CountTerms()
		if n == 0 {
			continue
		}
		for k := 0; k < n; k++ {
			this := r.Term(k)
			if this.Generator != i {
				continue
			}
			prev := r.Term((k + n - 1) % n)
			next := r.Term((k + 1) % n)
			e := this.Exponent
			if e > 0 {
				score[moveIJ] += credit(next.Generator == j && next.Exponent > 0, e)
				score[moveIJi] += credit(next.Generator == j && next.Exponent < 0, e)
				score[moveJI] += credit(prev.Generator == j && prev.Exponent > 0, e)
				score[moveJIi] += credit(prev.Generator == j && prev.Exponent < 0, e)
			} else {
				score[moveIJ] += credit(prev.Generator == j && prev.Exponent < 0, e)
				score[moveIJi] += credit(prev.Generator == j && prev.Exponent > 0, e)
				score[moveJI] += credit(next.Generator == j && next.Exponent < 0, e)
				score[moveJIi] += credit(next.Generator == j && next.Exponent > 0, e)
			}
		}
	}
	return score
}

// credit is 2 - |e| when a neighbouring g_j cancels against the substituted
// g_i^e and -|e| otherwise
func credit(cancels bool, e int) int {
	if e < 0 {
		e = -e
	}
	if cancels {
		return 2 - e
	}
	return -e
}

// IntelligentNielsen applies the best length-decreasing Nielsen
// substitution g_i <- g_i g_j^{-+1} or g_j^{-+1} g_i until none decreases the
// estimated length. It returns the composed isomorphism, or nil if no move
// was applied.
func (p *Presentation) IntelligentNielsen() (*Homomorphism, error) {
	caller := "IntelligentNielsen"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	if p.nGenerators < 2 {
		return nil, nil
	}
	var retVal *Homomorphism
	for {
		bestI, bestJ, bestMove, bestScore := 0, 0, moveIJ, 0
		for i := 0; i < p.nGenerators; i++ {
			for j := 0; j < p.nGenerators; j++ {
				if i == j {
					continue
				}
				score := p.scoreNielsen(i, j)
				for move := moveIJ; move <= moveJIi; move++ {
					if score[move] > bestScore {
						bestI, bestJ, bestMove, bestScore = i, j, move, score[move]
					}
				}
			}
		}
		if bestScore <= 0 {
			return retVal, nil
		}
		h, err := p.applyNielsenMove(bestI, bestJ, bestMove)
		if err != nil {
			return nil, err
		}
		if retVal, err = composeOnto(h, retVal, caller); err != nil {
			return nil, err
		}
	}
}

// applyNielsenMove rewrites the relators and returns the isomorphism
func (p *Presentation) applyNielsenMove(i, j int, move nielsenMove) (*Homomorphism, error) {
	oldPres := p.Clone()
	forward := identityMap(p.nGenerators)
	backward := identityMap(p.nGenerators)
	var err error
	switch move {
	case moveIJ:
		_, err = p.NielsenCombine(i, j, 1, true)
		forward[i].AddTermLast(word.Term{Generator: j, Exponent: -1})
		backward[i].AddTermLast(word.Term{Generator: j, Exponent: 1})
	case moveIJi:
		_, err = p.NielsenCombine(i, j, -1, true)
		forward[i].AddTermLast(word.Term{Generator: j, Exponent: 1})
		backward[i].AddTermLast(word.Term{Generator: j, Exponent: -1})
	case moveJI:
		_, err = p.NielsenCombine(i, j, 1, false)
		forward[i].AddTermFirst(word.Term{Generator: j, Exponent: -1})
		backward[i].AddTermFirst(word.Term{Generator: j, Exponent: 1})
	case moveJIi:
		_, err = p.NielsenCombine(i, j, -1, false)
		forward[i].AddTermFirst(word.Term{Generator: j, Exponent: 1})
		backward[i].AddTermFirst(word.Term{Generator: j, Exponent: -1})
	}
	if err != nil {
		return nil, errors.Wrap(err, "applyNielsenMove")
	}
	return NewIsomorphism(oldPres, p, forward, backward)
}

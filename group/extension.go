package group

// Copyright (c) 2025 Colin McRae

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// liftedTerm is a term of a relator together with its sheet in the cyclic
// cover, the sum of the exponents of the Z generator to its right
type liftedTerm struct {
	term  word.Term
	sheet int
}

// IdentifyExtensionOverZ tries to exhibit the group as a semidirect product
// K x| Z. The homomorphism onto Z is the last free coordinate of the
// abelianisation, which must be carried by a single generator t after
// homological alignment. When every other generator has a relator that
// uniquely determines it at the top and at the bottom sheet of its lift,
// the kernel K is finitely presented on N sheets of lifted generators.
//
// On success the presentation is replaced by
// < K-generators, t | K-relators, t^-1 g_i^-1 t phi(g_i) > with t last, and
// the monodromy phi: K -> K is returned. Otherwise the presentation is
// unchanged and nil is returned.
func (p *Presentation) IdentifyExtensionOverZ() (*Homomorphism, error) {
	caller := "IdentifyExtensionOverZ"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	q := p.Clone()
	if _, err := q.HomologicalAlignment(); err != nil {
		return nil, errors.Wrap(err, caller)
	}
	ab, err := q.Abelianisation()
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	if ab.FreeRank() == 0 {
		return nil, nil
	}

	// Move the generator that maps to the Z coordinate to index 0
	coord := ab.MinNumberOfGenerators() - 1
	z, sign := -1, int64(0)
	for j := 0; j < q.nGenerators; j++ {
		rep, err := ab.GeneratorRep(j)
		if err != nil {
			return nil, errors.Wrap(err, caller)
		}
		switch rep[coord] {
		case 0:
			continue
		case 1, -1:
			if z >= 0 {
				return nil, nil
			}
			z, sign = j, rep[coord]
		default:
			return nil, nil
		}
	}
	if z < 0 {
		return nil, nil
	}
	if sign < 0 {
		if _, err := q.NielsenInvert(z); err != nil {
			return nil, errors.Wrap(err, caller)
		}
	}
	if _, err := q.NielsenTransposition(0, z); err != nil {
		return nil, errors.Wrap(err, caller)
	}

	lifts, widths, maxKiller, minKiller := q.liftRelators()
	nGm1 := q.nGenerators - 1
	numSheets, maxWidth := 0, 0
	for g := 1; g <= nGm1; g++ {
		upper, okUpper := maxKiller[g]
		lower, okLower := minKiller[g]
		if !okUpper || !okLower {
			return nil, nil
		}
		numSheets = maxInt(numSheets, maxInt(widths[upper], widths[lower]))
	}
	for _, w := range widths {
		maxWidth = maxInt(maxWidth, w)
	}

	// Kernel generator (g, s) is t^-s g t^s for g in 1..nGm1, s in 0..numSheets-1
	idx := func(gen, sheet int) int { return gen - 1 + nGm1*sheet }
	shift := func(w word.Word) word.Word {
		terms := w.Terms()
		for k := range terms {
			terms[k].Generator += nGm1
		}
		return word.New(terms...)
	}
	genKiller := make(map[int]word.Word)
	applyKillers := func(w *word.Word) {
		keys := make([]int, 0, len(genKiller))
		for key := range genKiller {
			keys = append(keys, key)
		}
		sort.Ints(keys)
		for _, key := range keys {
			w.Substitute(key, genKiller[key], false)
		}
	}

	// The max-killer of g, lifted so that g sits at sheet numSheets, expresses
	// that lift of g in lower sheets
	for g := 1; g <= nGm1; g++ {
		killer := lifts[maxKiller[g]]
		delta := numSheets - killer[0].sheet
		var w word.Word
		for _, lt := range killer[1:] {
			w.AddTermFirst(word.Term{Generator: idx(lt.term.Generator, lt.sheet+delta), Exponent: lt.term.Exponent})
		}
		w.Simplify(false)
		genKiller[idx(g, numSheets)] = w
	}

	// Relators wider than the killers reach higher sheets
	for s := numSheets; s < maxWidth; s++ {
		for g := 1; g <= nGm1; g++ {
			w := shift(genKiller[idx(g, s)])
			applyKillers(&w)
			genKiller[idx(g, s+1)] = w
		}
	}

	kernel := New(numSheets * nGm1)
	var translates []word.Word
	for _, lift := range lifts {
		var w word.Word
		for _, lt := range lift {
			w.AddTermFirst(word.Term{Generator: idx(lt.term.Generator, lt.sheet), Exponent: lt.term.Exponent})
		}
		applyKillers(&w)
		w.Simplify(false)
		if w.WordLength() > 0 {
			translates = append(translates, w)
			kernel.AddRelator(w)
		}
	}
	if err = kernel.validate(caller); err != nil {
		return nil, err
	}
	for m := 0; m < numSheets; m++ {
		for k := range translates {
			translates[k] = shift(translates[k])
			applyKillers(&translates[k])
			kernel.AddRelator(translates[k])
		}
	}

	// Conjugation by t moves each kernel generator up one sheet
	autVec := make([]word.Word, numSheets*nGm1)
	for i := range autVec {
		if i >= nGm1*(numSheets-1) {
			autVec[i] = genKiller[i+nGm1].Clone()
		} else {
			autVec[i] = word.Generator(i + nGm1)
		}
	}
	monodromy, err := NewHomomorphism(kernel, kernel.Clone(), autVec)
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	if _, err = monodromy.IntelligentSimplify(); err != nil {
		return nil, errors.Wrap(err, caller)
	}

	nK := monodromy.domain.nGenerators
	relators := monodromy.domain.Relators()
	for i := 0; i < nK; i++ {
		r := monodromy.EvaluateGenerator(i)
		r.AddTermFirst(word.Term{Generator: nK, Exponent: 1})
		r.AddTermFirst(word.Term{Generator: i, Exponent: -1})
		r.AddTermFirst(word.Term{Generator: nK, Exponent: -1})
		relators = append(relators, r)
	}
	p.nGenerators = nK + 1
	p.relators = relators
	return monodromy, nil
}

// liftRelators lifts every relator of a presentation whose generator 0 maps
// onto Z, collapsing the letters of generator 0 into sheet indices. Each
// lift is shifted to start at sheet 0, listed right to left starting from
// its top-sheet term, and inverted if needed so that this term has
// negative exponent. It also returns each lift's width and, per generator,
// the widest relator in which it occurs exactly once with exponent +-1 at
// the top (maxKiller) or bottom (minKiller) sheet.
func (p *Presentation) liftRelators() ([][]liftedTerm, []int, map[int]int, map[int]int) {
	var lifts [][]liftedTerm
	var widths []int
	maxKiller := make(map[int]int)
	minKiller := make(map[int]int)
	for _, r := range p.relators {
		var lift []liftedTerm
		sheet, maxSheet, minSheet := 0, 0, 0
		maxCell, minCell := 0, 0
		dupMax, dupMin := false, false
		for k := r.CountTerms() - 1; k >= 0; k-- {
			t := r.Term(k)
			if t.Generator == 0 {
				sheet += t.Exponent
				continue
			}
			lift = append(lift, liftedTerm{term: t, sheet: sheet})
			unit := abs(t.Exponent) == 1
			if maxCell == 0 {
				maxSheet, minSheet = sheet, sheet
				maxCell, minCell = t.Generator, t.Generator
				dupMax, dupMin = !unit, !unit
				continue
			}
			if sheet > maxSheet {
				maxSheet, maxCell, dupMax = sheet, t.Generator, !unit
			} else if sheet == maxSheet {
				dupMax = true
			}
			if sheet < minSheet {
				minSheet, minCell, dupMin = sheet, t.Generator, !unit
			} else if sheet == minSheet {
				dupMin = true
			}
		}
		if len(lift) == 0 {
			continue
		}
		width := maxSheet - minSheet
		l := len(lifts)
		if !dupMax {
			if k, ok := maxKiller[maxCell]; !ok || width > widths[k] {
				maxKiller[maxCell] = l
			}
		}
		if !dupMin {
			if k, ok := minKiller[minCell]; !ok || width > widths[k] {
				minKiller[minCell] = l
			}
		}

		top := 0
		for k := range lift {
			lift[k].sheet -= minSheet
			if lift[k].sheet == width && lift[top].sheet != width {
				top = k
			}
		}
		rotated := make([]liftedTerm, 0, len(lift))
		rotated = append(append(rotated, lift[top:]...), lift[:top]...)
		if rotated[0].term.Exponent > 0 {
			inverted := make([]liftedTerm, 0, len(rotated))
			inverted = append(inverted, rotated[0])
			for k := len(rotated) - 1; k > 0; k-- {
				inverted = append(inverted, rotated[k])
			}
			for k := range inverted {
				inverted[k].term = inverted[k].term.Inverse()
			}
			rotated = inverted
		}
		lifts = append(lifts, rotated)
		widths = append(widths, width)
	}
	return lifts, widths, maxKiller, minKiller
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

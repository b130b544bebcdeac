package group

// Copyright (c) 2025 Colin McRae

import (
	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/util"
	"github.com/predrag3141/FPGroup/word"
)

// HomologicalAlignment applies Nielsen moves mirroring a Smith normal form
// computation on the images of the generators in the abelianisation, so
// that afterwards generator i maps to the i-th SNF coordinate where
// possible: the torsion generators come first, then the free ones. It
// returns the isomorphism from the old presentation to the new one, or nil
// if nothing changed.
func (p *Presentation) HomologicalAlignment() (*Homomorphism, error) {
	caller := "HomologicalAlignment"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	ab, err := p.Abelianisation()
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	abNF := ab.CountInvariantFactors()
	abNG := ab.MinNumberOfGenerators()

	// Column j of abMat is the SNF representative of generator j
	abMat := make([][]int64, abNG)
	for i := range abMat {
		abMat[i] = make([]int64, p.nGenerators)
	}
	for j := 0; j < p.nGenerators; j++ {
		rep, err := ab.GeneratorRep(j)
		if err != nil {
			return nil, errors.Wrap(err, caller)
		}
		for i := range rep {
			abMat[i][j] = rep[i]
		}
	}

	a := aligner{p: p, abMat: abMat, caller: caller}

	// Free rows: reduce to a single +-1 entry and move it to column i
	for i := abNF; i < abNG; i++ {
		j1, err := a.reduceRow(i, 0)
		if err != nil {
			return nil, err
		}
		if abMat[i][j1] == 0 {
			continue
		}
		if err = a.transpose(i, j1); err != nil {
			return nil, err
		}
	}
	for i := 0; i < abNF; i++ {
		for j := abNF; j < abNG && j < p.nGenerators; j++ {
			abMat[i][j] = 0
		}
	}

	// Torsion rows: entries only matter modulo the invariant factor
	for i := 0; i < abNF; i++ {
		d := ab.InvariantFactor(i)
		j1, err := a.reduceRow(i, d)
		if err != nil {
			return nil, err
		}
		if util.Mod(abMat[i][j1], d) == 0 || i == j1 {
			continue
		}
		if err = a.transpose(i, j1); err != nil {
			return nil, err
		}
	}

	retVal, err := p.prettyOnto(a.retVal, caller)
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	return retVal, nil
}

// aligner carries the generator image matrix and the accumulated
// isomorphism through HomologicalAlignment
type aligner struct {
	p      *Presentation
	abMat  [][]int64
	retVal *Homomorphism
	caller string
}

// reduceRow runs a Euclidean reduction on row i by column operations, each
// mirrored by a Nielsen move, until at most one entry is nonzero. When d > 0
// the entries of row i are first reduced into [0, d). It returns the column
// of the surviving entry.
func (a *aligner) reduceRow(i int, d int64) (int, error) {
	row := a.abMat[i]
	if d > 0 {
		for j := range row {
			row[j] = util.Mod(row[j], d)
		}
	}
	j0, j1 := 0, len(row)-1
	for j0 < j1 {
		if row[j0] == 0 {
			j0++
			continue
		}
		if row[j1] == 0 {
			j1--
			continue
		}

		// Subtract q times column s from column t, where |row[t]| >= |row[s]|
		t, s := j0, j1
		if absInt64(row[j0]) < absInt64(row[j1]) {
			t, s = j1, j0
		}
		q := row[t] / row[s]
		for r := range a.abMat {
			product, err := util.MulInt64(q, a.abMat[r][s], a.caller)
			if err != nil {
				return 0, err
			}
			if product, err = util.NegInt64(product, a.caller); err != nil {
				return 0, err
			}
			if a.abMat[r][t], err = util.AddInt64(a.abMat[r][t], product, a.caller); err != nil {
				return 0, err
			}
		}
		if d > 0 {
			row[t] = util.Mod(row[t], d)
		}
		if err := a.combine(t, s, int(q)); err != nil {
			return 0, err
		}
	}
	if j1 < 0 {
		j1 = 0
	}
	return j1, nil
}

// combine replaces generator t by g_t g_s^-q in the presentation, so the
// new generator t has image column_t - q column_s, and records the move
func (a *aligner) combine(t, s, q int) error {
	oldPres := a.p.Clone()
	forward := identityMap(a.p.nGenerators)
	backward := identityMap(a.p.nGenerators)
	forward[t].AddTermLast(word.Term{Generator: s, Exponent: q})
	backward[t].AddTermLast(word.Term{Generator: s, Exponent: -q})
	if _, err := a.p.NielsenCombine(t, s, -q, true); err != nil {
		return errors.Wrap(err, a.caller)
	}
	return a.record(oldPres, forward, backward)
}

// transpose swaps generators i and j and the corresponding columns
func (a *aligner) transpose(i, j int) error {
	if i == j {
		return nil
	}
	oldPres := a.p.Clone()
	swap := identityMap(a.p.nGenerators)
	swap[i], swap[j] = swap[j], swap[i]
	if _, err := a.p.NielsenTransposition(i, j); err != nil {
		return errors.Wrap(err, a.caller)
	}
	for _, row := range a.abMat {
		row[i], row[j] = row[j], row[i]
	}
	return a.record(oldPres, swap, cloneWords(swap))
}

func (a *aligner) record(oldPres *Presentation, forward, backward []word.Word) error {
	h, err := NewIsomorphism(oldPres, a.p, forward, backward)
	if err != nil {
		return errors.Wrap(err, a.caller)
	}
	a.retVal, err = composeOnto(h, a.retVal, a.caller)
	return err
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

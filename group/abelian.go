package group

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/intmatrix"
	"github.com/predrag3141/FPGroup/util"
)

// Abelianisation is the cokernel of the relation matrix of a presentation,
// together with the Smith normal form basis used to represent elements
type Abelianisation struct {
	nGenerators int
	snf         *intmatrix.SNF

	// numUnits is the number of leading diagonal entries equal to 1
	numUnits int
}

// RelationMatrix returns the m x n matrix whose (j, i) entry is the
// exponent sum of generator i in relator j
func (p *Presentation) RelationMatrix() (*intmatrix.Matrix, error) {
	caller := "RelationMatrix"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	retVal := intmatrix.New(len(p.relators), p.nGenerators)
	for j, r := range p.relators {
		for k := 0; k < r.CountTerms(); k++ {
			t := r.Term(k)
			sum, err := util.AddInt64(retVal.Get(j, t.Generator), int64(t.Exponent), caller)
			if err != nil {
				return nil, err
			}
			retVal.Set(j, t.Generator, sum)
		}
	}
	return retVal, nil
}

// Abelianisation computes the abelianisation of p
func (p *Presentation) Abelianisation() (*Abelianisation, error) {
	caller := "Abelianisation"
	m, err := p.RelationMatrix()
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	snf, err := intmatrix.SmithNormalForm(m)
	if err != nil {
		return nil, errors.Wrapf(err, "%s-SmithNormalForm", caller)
	}
	retVal := &Abelianisation{nGenerators: p.nGenerators, snf: snf}
	for retVal.numUnits < len(snf.Diagonal) && snf.Diagonal[retVal.numUnits] == 1 {
		retVal.numUnits++
	}
	return retVal, nil
}

// AbelianRank returns the free rank of the abelianisation, n minus the
// rank of the relation matrix, from its row echelon form
func (p *Presentation) AbelianRank() (int, error) {
	m, err := p.RelationMatrix()
	if err != nil {
		return 0, errors.Wrap(err, "AbelianRank")
	}
	rowRank, err := intmatrix.RowEchelonForm(m)
	if err != nil {
		return 0, errors.Wrap(err, "AbelianRank")
	}
	return p.nGenerators - rowRank, nil
}

// Rank returns the free rank
func (a *Abelianisation) Rank() int { return a.snf.FreeRank }

// FreeRank is a synonym for Rank
func (a *Abelianisation) FreeRank() int { return a.snf.FreeRank }

// InvariantFactors returns the torsion invariants d_1 | d_2 | ..., all > 1
func (a *Abelianisation) InvariantFactors() []int64 {
	return append([]int64(nil), a.snf.InvariantFactors...)
}

func (a *Abelianisation) CountInvariantFactors() int { return len(a.snf.InvariantFactors) }

func (a *Abelianisation) InvariantFactor(i int) int64 { return a.snf.InvariantFactors[i] }

// MinNumberOfGenerators returns the number of invariant factors plus the
// free rank, the length of an SNF representative
func (a *Abelianisation) MinNumberOfGenerators() int {
	return len(a.snf.InvariantFactors) + a.snf.FreeRank
}

// IsTrivial returns whether the abelianisation is the trivial group
func (a *Abelianisation) IsTrivial() bool { return a.MinNumberOfGenerators() == 0 }

// Equal compares invariant factors and free rank
func (a *Abelianisation) Equal(other *Abelianisation) bool {
	if a.snf.FreeRank != other.snf.FreeRank || len(a.snf.InvariantFactors) != len(other.snf.InvariantFactors) {
		return false
	}
	for i, d := range a.snf.InvariantFactors {
		if other.snf.InvariantFactors[i] != d {
			return false
		}
	}
	return true
}

// SNFRep maps an exponent vector on the generators to its coordinates in
// the Smith normal form basis: one coordinate per invariant factor,
// reduced into [0, d_i), followed by the free coordinates
func (a *Abelianisation) SNFRep(v []int64) ([]int64, error) {
	caller := "SNFRep"
	if len(v) != a.nGenerators {
		return nil, fmt.Errorf("%s: %d-long vector for %d generators", caller, len(v), a.nGenerators)
	}
	image, err := a.snf.V.MultiplyRowVector(v)
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	retVal := make([]int64, 0, a.MinNumberOfGenerators())
	for k := a.numUnits; k < a.snf.Rank; k++ {
		retVal = append(retVal, util.Mod(image[k], a.snf.Diagonal[k]))
	}
	for k := a.snf.Rank; k < a.nGenerators; k++ {
		retVal = append(retVal, image[k])
	}
	return retVal, nil
}

// GeneratorRep returns SNFRep of generator i
func (a *Abelianisation) GeneratorRep(i int) ([]int64, error) {
	v := make([]int64, a.nGenerators)
	v[i] = 1
	return a.SNFRep(v)
}

// Text writes the group as e.g. "2 Z + 3 Z_2 + Z_6", or "0" when trivial
func (a *Abelianisation) Text(utf8 bool) string {
	z := "Z"
	if utf8 {
		z = "ℤ"
	}
	var parts []string
	if rank := a.snf.FreeRank; rank > 0 {
		if rank > 1 {
			parts = append(parts, fmt.Sprintf("%d %s", rank, z))
		} else {
			parts = append(parts, z)
		}
	}
	factors := a.snf.InvariantFactors
	for i := 0; i < len(factors); {
		count := 1
		for i+count < len(factors) && factors[i+count] == factors[i] {
			count++
		}
		if count > 1 {
			parts = append(parts, fmt.Sprintf("%d %s_%d", count, z, factors[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%s_%d", z, factors[i]))
		}
		i += count
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}

func (a *Abelianisation) String() string { return a.Text(false) }

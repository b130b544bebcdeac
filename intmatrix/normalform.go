package intmatrix

// Copyright (c) 2025 Colin McRae

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/util"
)

// RowEchelonForm reduces m in place to row echelon form using integer row
// operations and returns its rank. Pivots are made positive.
func RowEchelonForm(m *Matrix) (int, error) {
	caller := "RowEchelonForm"
	rank := 0
	for col := 0; (col < m.numCols) && (rank < m.numRows); col++ {
		for {
			pivotRow, err := minNonzeroInColumn(m, col, rank, caller)
			if err != nil {
				return 0, err
			}
			if pivotRow < 0 {
				break
			}
			m.SwapRows(rank, pivotRow)
			pivot := m.Get(rank, col)
			cleared := true
			for i := rank + 1; i < m.numRows; i++ {
				entry := m.Get(i, col)
				if entry == 0 {
					continue
				}
				q, _ := util.FloorDiv(entry, pivot)
				negQ, err := util.NegInt64(q, caller)
				if err != nil {
					return 0, err
				}
				if err = m.AddRowMultiple(i, rank, negQ); err != nil {
					return 0, errors.Wrap(err, caller)
				}
				if m.Get(i, col) != 0 {
					cleared = false
				}
			}
			if cleared {
				if pivot < 0 {
					if err = m.NegateRow(rank); err != nil {
						return 0, errors.Wrap(err, caller)
					}
				}
				rank++
				break
			}
		}
	}
	return rank, nil
}

// minNonzeroInColumn returns the row at or below startRow holding the entry
// of smallest nonzero magnitude in column col, or -1 if there is none
func minNonzeroInColumn(m *Matrix, col, startRow int, caller string) (int, error) {
	retVal, best := -1, int64(0)
	for i := startRow; i < m.numRows; i++ {
		entry := m.Get(i, col)
		if entry == 0 {
			continue
		}
		abs, err := util.AbsInt64(entry, caller)
		if err != nil {
			return -1, err
		}
		if retVal < 0 || abs < best {
			retVal, best = i, abs
		}
	}
	return retVal, nil
}

// SNF holds the Smith normal form D = U * Input * V of an integer matrix,
// with U and V unimodular and their inverses
type SNF struct {
	Input    *Matrix
	D        *Matrix
	U        *Matrix
	UInverse *Matrix
	V        *Matrix
	VInverse *Matrix

	// Diagonal has min(rows, cols) non-negative entries, each dividing
	// the next, with the zeros last
	Diagonal []int64

	// InvariantFactors are the diagonal entries greater than 1
	InvariantFactors []int64

	// Rank is the number of nonzero diagonal entries
	Rank int

	// FreeRank is the rank of the cokernel of the row space, i.e.
	// the number of columns minus Rank
	FreeRank int
}

// snfState carries D and the basis changes while they are built
type snfState struct {
	d, u, uInv, v, vInv *Matrix
	caller              string
}

// SmithNormalForm computes the Smith normal form of m without modifying m
func SmithNormalForm(m *Matrix) (*SNF, error) {
	s := &snfState{
		d:      m.Clone(),
		u:      NewIdentity(m.numRows),
		uInv:   NewIdentity(m.numRows),
		v:      NewIdentity(m.numCols),
		vInv:   NewIdentity(m.numCols),
		caller: "SmithNormalForm",
	}
	minDim := m.numRows
	if m.numCols < minDim {
		minDim = m.numCols
	}
	for t := 0; t < minDim; t++ {
		done, err := s.reduceCorner(t)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	retVal := &SNF{
		Input:    m.Clone(),
		D:        s.d,
		U:        s.u,
		UInverse: s.uInv,
		V:        s.v,
		VInverse: s.vInv,
		Diagonal: make([]int64, minDim),
	}
	for t := 0; t < minDim; t++ {
		retVal.Diagonal[t] = s.d.Get(t, t)
		if retVal.Diagonal[t] != 0 {
			retVal.Rank++
		}
		if retVal.Diagonal[t] > 1 {
			retVal.InvariantFactors = append(retVal.InvariantFactors, retVal.Diagonal[t])
		}
	}
	retVal.FreeRank = m.numCols - retVal.Rank
	return retVal, nil
}

// reduceCorner makes d[t][t] the only nonzero entry of row t and column t,
// dividing every entry of the remaining submatrix. It returns true when
// the remaining submatrix is zero.
func (s *snfState) reduceCorner(t int) (bool, error) {
	for {
		pi, pj, err := s.minNonzero(t)
		if err != nil {
			return false, err
		}
		if pi < 0 {
			return true, nil
		}
		s.swapRows(t, pi)
		s.swapCols(t, pj)
		pivot := s.d.Get(t, t)
		cleared := true
		for i := t + 1; i < s.d.numRows; i++ {
			if entry := s.d.Get(i, t); entry != 0 {
				q, _ := util.FloorDiv(entry, pivot)
				if err = s.rowOp(i, t, q); err != nil {
					return false, err
				}
				if s.d.Get(i, t) != 0 {
					cleared = false
				}
			}
		}
		for j := t + 1; j < s.d.numCols; j++ {
			if entry := s.d.Get(t, j); entry != 0 {
				q, _ := util.FloorDiv(entry, pivot)
				if err = s.colOp(j, t, q); err != nil {
					return false, err
				}
				if s.d.Get(t, j) != 0 {
					cleared = false
				}
			}
		}
		if !cleared {
			continue
		}

		// Every remaining entry must be a multiple of the pivot
		badRow := -1
		for i := t + 1; (i < s.d.numRows) && (badRow < 0); i++ {
			for j := t + 1; j < s.d.numCols; j++ {
				if s.d.Get(i, j)%pivot != 0 {
					badRow = i
					break
				}
			}
		}
		if badRow >= 0 {
			if err = s.rowOp(t, badRow, -1); err != nil {
				return false, err
			}
			continue
		}
		if pivot < 0 {
			if err = s.negateRow(t); err != nil {
				return false, err
			}
		}
		return false, nil
	}
}

func (s *snfState) minNonzero(t int) (int, int, error) {
	pi, pj, best := -1, -1, int64(0)
	for i := t; i < s.d.numRows; i++ {
		for j := t; j < s.d.numCols; j++ {
			entry := s.d.Get(i, j)
			if entry == 0 {
				continue
			}
			abs, err := util.AbsInt64(entry, s.caller)
			if err != nil {
				return -1, -1, err
			}
			if pi < 0 || abs < best {
				pi, pj, best = i, j, abs
			}
		}
	}
	return pi, pj, nil
}

// rowOp subtracts q times row src from row dst of D, i.e. D <- E D with
// E = I - q e_dst e_src^T. U follows D and UInverse absorbs E^-1 on the right.
func (s *snfState) rowOp(dst, src int, q int64) error {
	negQ, err := util.NegInt64(q, s.caller)
	if err != nil {
		return err
	}
	if err = s.d.AddRowMultiple(dst, src, negQ); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err = s.u.AddRowMultiple(dst, src, negQ); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err = s.uInv.AddColMultiple(src, dst, q); err != nil {
		return errors.Wrap(err, s.caller)
	}
	return nil
}

// colOp subtracts q times column src from column dst of D, i.e. D <- D F with
// F = I - q e_src e_dst^T. V follows D and VInverse absorbs F^-1 on the left.
func (s *snfState) colOp(dst, src int, q int64) error {
	negQ, err := util.NegInt64(q, s.caller)
	if err != nil {
		return err
	}
	if err = s.d.AddColMultiple(dst, src, negQ); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err = s.v.AddColMultiple(dst, src, negQ); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err = s.vInv.AddRowMultiple(src, dst, q); err != nil {
		return errors.Wrap(err, s.caller)
	}
	return nil
}

func (s *snfState) swapRows(i, j int) {
	s.d.SwapRows(i, j)
	s.u.SwapRows(i, j)
	s.uInv.SwapCols(i, j)
}

func (s *snfState) swapCols(i, j int) {
	s.d.SwapCols(i, j)
	s.v.SwapCols(i, j)
	s.vInv.SwapRows(i, j)
}

func (s *snfState) negateRow(i int) error {
	if err := s.d.NegateRow(i); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err := s.u.NegateRow(i); err != nil {
		return errors.Wrap(err, s.caller)
	}
	if err := s.uInv.NegateCol(i); err != nil {
		return errors.Wrap(err, s.caller)
	}
	return nil
}

// Check verifies that U * Input * V = D, that D is diagonal with the
// divisibility property, and that the basis changes are inverse pairs
func (snf *SNF) Check() error {
	caller := "SNF-Check"
	uM, err := snf.U.Multiply(snf.Input)
	if err != nil {
		return errors.Wrap(err, caller)
	}
	uMV, err := uM.Multiply(snf.V)
	if err != nil {
		return errors.Wrap(err, caller)
	}
	if !uMV.Equals(snf.D) {
		return fmt.Errorf("%s: U * M * V =\n%sbut D =\n%s", caller, uMV.String(), snf.D.String())
	}
	for i := 0; i < snf.D.numRows; i++ {
		for j := 0; j < snf.D.numCols; j++ {
			if i != j && snf.D.Get(i, j) != 0 {
				return fmt.Errorf("%s: D[%d][%d] = %d is off the diagonal", caller, i, j, snf.D.Get(i, j))
			}
		}
	}
	for t := 0; t < len(snf.Diagonal); t++ {
		if snf.Diagonal[t] < 0 {
			return fmt.Errorf("%s: diagonal entry %d is negative", caller, t)
		}
		if t+1 == len(snf.Diagonal) {
			break
		}
		if snf.Diagonal[t] == 0 {
			if snf.Diagonal[t+1] != 0 {
				return fmt.Errorf("%s: zero diagonal entry %d precedes a nonzero one", caller, t)
			}
			continue
		}
		if snf.Diagonal[t+1]%snf.Diagonal[t] != 0 {
			return fmt.Errorf(
				"%s: diagonal entry %d does not divide %d", caller, snf.Diagonal[t], snf.Diagonal[t+1],
			)
		}
	}
	for _, pair := range []struct {
		name string
		x, y *Matrix
	}{{"U", snf.U, snf.UInverse}, {"V", snf.V, snf.VInverse}} {
		isInverse, err := util.IsInversePair(pair.x.entries, pair.y.entries, pair.x.numRows)
		if err != nil {
			return errors.Wrap(err, caller)
		}
		if !isInverse {
			return fmt.Errorf("%s: %s and its inverse are not an inverse pair", caller, pair.name)
		}
	}
	return nil
}

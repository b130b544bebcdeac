package intmatrix

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/util"
)

// Matrix is a dense integer matrix stored in row-major order
type Matrix struct {
	numRows int
	numCols int
	entries []int64
}

// New returns a numRows x numCols zero matrix
func New(numRows, numCols int) *Matrix {
	return &Matrix{numRows: numRows, numCols: numCols, entries: make([]int64, numRows*numCols)}
}

// NewFromInt64 returns a matrix holding a copy of entries, which must be
// numRows*numCols long
func NewFromInt64(numRows, numCols int, entries []int64) (*Matrix, error) {
	if numRows < 0 || numCols < 0 || len(entries) != numRows*numCols {
		return nil, fmt.Errorf(
			"NewFromInt64: %d entries cannot fill a %d x %d matrix", len(entries), numRows, numCols,
		)
	}
	retVal := New(numRows, numCols)
	copy(retVal.entries, entries)
	return retVal, nil
}

// NewIdentity returns the dim x dim identity matrix
func NewIdentity(dim int) *Matrix {
	return &Matrix{numRows: dim, numCols: dim, entries: util.Identity(dim)}
}

func (m *Matrix) NumRows() int { return m.numRows }

func (m *Matrix) NumCols() int { return m.numCols }

func (m *Matrix) Get(i, j int) int64 { return m.entries[i*m.numCols+j] }

func (m *Matrix) Set(i, j int, value int64) { m.entries[i*m.numCols+j] = value }

// Entries returns a copy of the entries in row-major order
func (m *Matrix) Entries() []int64 {
	retVal := make([]int64, len(m.entries))
	copy(retVal, m.entries)
	return retVal
}

// Row returns a copy of row i
func (m *Matrix) Row(i int) []int64 {
	retVal := make([]int64, m.numCols)
	copy(retVal, m.entries[i*m.numCols:(i+1)*m.numCols])
	return retVal
}

func (m *Matrix) Clone() *Matrix {
	retVal, _ := NewFromInt64(m.numRows, m.numCols, m.entries)
	return retVal
}

func (m *Matrix) Equals(other *Matrix) bool {
	if m.numRows != other.numRows || m.numCols != other.numCols {
		return false
	}
	for i := range m.entries {
		if m.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// IsZero returns whether every entry is 0
func (m *Matrix) IsZero() bool {
	for _, e := range m.entries {
		if e != 0 {
			return false
		}
	}
	return true
}

// Multiply returns m * other
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.numCols != other.numRows {
		return nil, fmt.Errorf(
			"Multiply: cannot multiply %d x %d by %d x %d",
			m.numRows, m.numCols, other.numRows, other.numCols,
		)
	}
	if m.numCols == 0 {
		return New(m.numRows, other.numCols), nil
	}
	product, err := util.MultiplyIntInt(m.entries, other.entries, m.numCols)
	if err != nil {
		return nil, errors.Wrap(err, "Multiply")
	}
	if len(product) == 0 {
		return New(m.numRows, other.numCols), nil
	}
	return NewFromInt64(m.numRows, other.numCols, product)
}

// MultiplyRowVector returns v * m for a row vector v of length NumRows()
func (m *Matrix) MultiplyRowVector(v []int64) ([]int64, error) {
	if len(v) != m.numRows {
		return nil, fmt.Errorf("MultiplyRowVector: %d-long vector times %d x %d", len(v), m.numRows, m.numCols)
	}
	if m.numRows == 0 {
		return make([]int64, m.numCols), nil
	}
	product, err := util.MultiplyIntInt(v, m.entries, m.numRows)
	if err != nil {
		return nil, errors.Wrap(err, "MultiplyRowVector")
	}
	if len(product) == 0 {
		return make([]int64, m.numCols), nil
	}
	return product, nil
}

// AddRowMultiple performs row[dst] += q * row[src]
func (m *Matrix) AddRowMultiple(dst, src int, q int64) error {
	if q == 0 {
		return nil
	}
	for j := 0; j < m.numCols; j++ {
		term, err := util.MulInt64(q, m.entries[src*m.numCols+j], "AddRowMultiple")
		if err != nil {
			return err
		}
		m.entries[dst*m.numCols+j], err = util.AddInt64(m.entries[dst*m.numCols+j], term, "AddRowMultiple")
		if err != nil {
			return err
		}
	}
	return nil
}

// AddColMultiple performs col[dst] += q * col[src]
func (m *Matrix) AddColMultiple(dst, src int, q int64) error {
	if q == 0 {
		return nil
	}
	for i := 0; i < m.numRows; i++ {
		term, err := util.MulInt64(q, m.entries[i*m.numCols+src], "AddColMultiple")
		if err != nil {
			return err
		}
		m.entries[i*m.numCols+dst], err = util.AddInt64(m.entries[i*m.numCols+dst], term, "AddColMultiple")
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Matrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.numCols; k++ {
		m.entries[i*m.numCols+k], m.entries[j*m.numCols+k] = m.entries[j*m.numCols+k], m.entries[i*m.numCols+k]
	}
}

func (m *Matrix) SwapCols(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.numRows; k++ {
		m.entries[k*m.numCols+i], m.entries[k*m.numCols+j] = m.entries[k*m.numCols+j], m.entries[k*m.numCols+i]
	}
}

func (m *Matrix) NegateRow(i int) error {
	for k := 0; k < m.numCols; k++ {
		negated, err := util.NegInt64(m.entries[i*m.numCols+k], "NegateRow")
		if err != nil {
			return err
		}
		m.entries[i*m.numCols+k] = negated
	}
	return nil
}

func (m *Matrix) NegateCol(j int) error {
	for k := 0; k < m.numRows; k++ {
		negated, err := util.NegInt64(m.entries[k*m.numCols+j], "NegateCol")
		if err != nil {
			return err
		}
		m.entries[k*m.numCols+j] = negated
	}
	return nil
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.numRows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.numCols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%d", m.Get(i, j)))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

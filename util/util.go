package util

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	pslqutil "github.com/predrag3141/PSLQ/util"
)

// ErrNumericOverflow is returned when integer arithmetic leaves the range of int64
var ErrNumericOverflow = errors.New("numeric overflow")

// AddInt64 returns x + y, or ErrNumericOverflow
func AddInt64(x, y int64, caller string) (int64, error) {
	sum := x + y
	if (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum >= 0) {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s-AddInt64: %d + %d", caller, x, y)
	}
	return sum, nil
}

// MulInt64 returns x * y, or ErrNumericOverflow
func MulInt64(x, y int64, caller string) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s-MulInt64: %d * %d", caller, x, y)
	}
	product := x * y
	if product/y != x {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s-MulInt64: %d * %d", caller, x, y)
	}
	return product, nil
}

// NegInt64 returns -x, or ErrNumericOverflow when x is the minimum int64
func NegInt64(x int64, caller string) (int64, error) {
	if x == math.MinInt64 {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s-NegInt64: -(%d)", caller, x)
	}
	return -x, nil
}

// AbsInt64 returns |x|, or ErrNumericOverflow when x is the minimum int64
func AbsInt64(x int64, caller string) (int64, error) {
	if x < 0 {
		return NegInt64(x, caller)
	}
	return x, nil
}

// FloorDiv returns q and r with x = q*d + r and 0 <= r < |d|. d must be nonzero.
func FloorDiv(x, d int64) (int64, int64) {
	q, r := x/d, x%d
	if r < 0 {
		if d > 0 {
			q, r = q-1, r+d
		} else {
			q, r = q+1, r-d
		}
	}
	return q, r
}

// Mod returns x reduced into [0, |d|). d must be nonzero.
func Mod(x, d int64) int64 {
	_, r := FloorDiv(x, d)
	return r
}

// Identity returns the dim x dim identity matrix in row-major order
func Identity(dim int) []int64 {
	retVal := make([]int64, dim*dim)
	for i := 0; i < dim; i++ {
		retVal[i*dim+i] = 1
	}
	return retVal
}

// MultiplyIntInt returns the matrix product, x * y, for []int64
// x and []int64 y. n must equal the number of columns in x and
// the number of rows in y. Small products go through the PSLQ
// library; products it refuses because of large entries are
// recomputed with overflow-checked arithmetic.
func MultiplyIntInt(x []int64, y []int64, n int) ([]int64, error) {
	caller := "MultiplyIntInt"
	if n <= 0 {
		return nil, fmt.Errorf("%s: inner dimension %d is not positive", caller, n)
	}
	m, p, err := getDimensions(len(x), len(y), n, caller)
	if err != nil {
		return nil, err
	}
	if m == 0 || p == 0 {
		return []int64{}, nil
	}
	if maxAbs(x) <= smallEntryThresh && maxAbs(y) <= smallEntryThresh {
		xy, err := pslqutil.MultiplyIntInt(x, y, n)
		if err == nil {
			return xy, nil
		}
	}
	return multiplyChecked(x, y, m, n, p, caller)
}

// smallEntryThresh bounds the entries handed to the PSLQ product, whose
// per-entry sums are not checked for wrap-around
const smallEntryThresh = int64(math.MaxInt16)

func maxAbs(x []int64) int64 {
	var retVal int64
	for i := 0; i < len(x); i++ {
		if x[i] == math.MinInt64 {
			return math.MaxInt64
		}
		if x[i] > retVal {
			retVal = x[i]
		} else if -x[i] > retVal {
			retVal = -x[i]
		}
	}
	return retVal
}

// multiplyChecked computes the m x p product of x (m x n) and y (n x p),
// failing with ErrNumericOverflow instead of wrapping around
func multiplyChecked(x, y []int64, m, n, p int, caller string) ([]int64, error) {
	caller = fmt.Sprintf("%s-multiplyChecked", caller)
	xy := make([]int64, m*p)
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			var xyEntry int64
			for k := 0; k < n; k++ {
				term, err := MulInt64(x[i*n+k], y[k*p+j], caller)
				if err != nil {
					return nil, err
				}
				xyEntry, err = AddInt64(xyEntry, term, caller)
				if err != nil {
					return nil, err
				}
			}
			xy[i*p+j] = xyEntry
		}
	}
	return xy, nil
}

// IsInversePair returns whether x and y are inverses of each other
func IsInversePair(x, y []int64, dim int) (bool, error) {
	if dim == 0 {
		return len(x) == 0 && len(y) == 0, nil
	}
	shouldBeIdentity, err := MultiplyIntInt(x, y, dim)
	if err != nil {
		return false, errors.Wrapf(
			err, "IsInversePair: could not multiply x (%d-long) by y (%d-long)", len(x), len(y),
		)
	}
	if len(shouldBeIdentity) != dim*dim {
		return false, nil
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if (i == j) && (shouldBeIdentity[i*dim+j] != 1) {
				return false, nil
			} else if (i != j) && (shouldBeIdentity[i*dim+j] != 0) {
				return false, nil
			}
		}
	}
	return true, nil
}

// getDimensions returns the dimensions m and p for a matrix multiply
// xy where x has mn entries, y has np entries, and the number of columns
// in x (= the number of rows in y) is n.
func getDimensions(mn, np, n int, caller string) (int, int, error) {
	caller = fmt.Sprintf("%s-getDimensions", caller)
	if mn%n != 0 {
		return 0, 0, fmt.Errorf(
			"%s: non-integer number of rows %d / %d in x", caller, mn, n,
		)
	}
	if np%n != 0 {
		return 0, 0, fmt.Errorf(
			"%s: non-integer number of columns %d / %d in y", caller, np, n,
		)
	}
	return mn / n, np / n, nil
}

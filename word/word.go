package word

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrParse is returned for a malformed compact word
	ErrParse = errors.New("malformed word")

	// ErrIndexOutOfRange is returned when a word refers to a generator
	// beyond the end of a substitution table or generator list
	ErrIndexOutOfRange = errors.New("generator index out of range")
)

// Term is a power of a single generator
type Term struct {
	Generator int
	Exponent  int
}

// Inverse returns the term with the same generator and negated exponent
func (t Term) Inverse() Term {
	return Term{Generator: t.Generator, Exponent: -t.Exponent}
}

// Text writes the term as a letter (a..z) or as g<index>, followed by
// ^<exponent> unless the exponent is 1
func (t Term) Text(alpha bool) string {
	var name string
	if alpha && t.Generator < 26 {
		name = string(rune('a' + t.Generator))
	} else {
		name = fmt.Sprintf("g%d", t.Generator)
	}
	if t.Exponent == 1 {
		return name
	}
	return fmt.Sprintf("%s^%d", name, t.Exponent)
}

// Word is a product of terms read left to right. The zero value is the
// empty word, i.e. the identity.
//
// Mutating methods never write into a backing array they did not
// allocate, so copies of a Word made by assignment never observe each
// other's changes. Use Clone when an independent value is wanted anyway.
type Word struct {
	terms []Term
}

// New returns the freely reduced product of the given terms
func New(terms ...Term) Word {
	retVal := Word{terms: append([]Term(nil), terms...)}
	retVal.Simplify(false)
	return retVal
}

// Generator returns the word g_i
func Generator(i int) Word {
	return Word{terms: []Term{{Generator: i, Exponent: 1}}}
}

// Terms returns a copy of the terms
func (w Word) Terms() []Term {
	return append([]Term(nil), w.terms...)
}

// Term returns the i-th term
func (w Word) Term(i int) Term {
	return w.terms[i]
}

// CountTerms returns the number of terms
func (w Word) CountTerms() int {
	return len(w.terms)
}

// WordLength returns the sum of the absolute values of the exponents
func (w Word) WordLength() int {
	retVal := 0
	for _, t := range w.terms {
		retVal += abs(t.Exponent)
	}
	return retVal
}

// IsTrivial returns whether the word has no terms
func (w Word) IsTrivial() bool {
	return len(w.terms) == 0
}

func (w Word) Clone() Word {
	if len(w.terms) == 0 {
		return Word{}
	}
	return Word{terms: append([]Term(nil), w.terms...)}
}

// Equal compares term sequences
func (w Word) Equal(other Word) bool {
	if len(w.terms) != len(other.terms) {
		return false
	}
	for i := range w.terms {
		if w.terms[i] != other.terms[i] {
			return false
		}
	}
	return true
}

// Inverse returns the reversed word with every exponent negated
func (w Word) Inverse() Word {
	retVal := Word{terms: make([]Term, len(w.terms))}
	for i, t := range w.terms {
		retVal.terms[len(w.terms)-1-i] = t.Inverse()
	}
	return retVal
}

// Invert replaces the word by its inverse
func (w *Word) Invert() {
	*w = w.Inverse()
}

// Power returns w^k, freely reduced
func (w Word) Power(k int) Word {
	if k == 0 || len(w.terms) == 0 {
		return Word{}
	}
	base := w
	if k < 0 {
		base, k = w.Inverse(), -k
	}
	retVal := Word{terms: make([]Term, 0, k*len(base.terms))}
	for i := 0; i < k; i++ {
		retVal.terms = append(retVal.terms, base.terms...)
	}
	retVal.Simplify(false)
	return retVal
}

// Simplify merges adjacent terms with the same generator and removes
// zero exponents. If cyclic is true, the last term is also merged into
// the first until they differ or one term remains. It returns whether
// the word changed.
func (w *Word) Simplify(cyclic bool) bool {
	changed := false
	reduced := make([]Term, 0, len(w.terms))
	for _, t := range w.terms {
		if t.Exponent == 0 {
			changed = true
			continue
		}
		if n := len(reduced); (n > 0) && (reduced[n-1].Generator == t.Generator) {
			changed = true
			reduced[n-1].Exponent += t.Exponent
			if reduced[n-1].Exponent == 0 {
				reduced = reduced[:n-1]
			}
			continue
		}
		reduced = append(reduced, t)
	}
	if cyclic {
		for (len(reduced) > 1) && (reduced[0].Generator == reduced[len(reduced)-1].Generator) {
			changed = true
			reduced[0].Exponent += reduced[len(reduced)-1].Exponent
			reduced = reduced[:len(reduced)-1]
			if reduced[0].Exponent == 0 {
				reduced = reduced[1:]
			}
		}
	}
	if len(reduced) == 0 {
		reduced = nil
	}
	w.terms = reduced
	return changed
}

// Substitute replaces every occurrence of generator gen by sub, so that
// gen^e becomes sub^e, and then simplifies. sub may share storage with w.
// It returns whether gen occurred in w.
func (w *Word) Substitute(gen int, sub Word, cyclic bool) bool {
	if !w.UsesGenerator(gen) {
		return false
	}
	forward := sub.Clone().terms
	backward := sub.Inverse().terms
	expanded := make([]Term, 0, len(w.terms))
	for _, t := range w.terms {
		if t.Generator != gen {
			expanded = append(expanded, t)
			continue
		}
		reps, src := t.Exponent, forward
		if reps < 0 {
			reps, src = -reps, backward
		}
		for k := 0; k < reps; k++ {
			expanded = append(expanded, src...)
		}
	}
	w.terms = expanded
	w.Simplify(cyclic)
	return true
}

// SubstituteAll replaces every generator i by subs[i] simultaneously and
// then simplifies
func (w *Word) SubstituteAll(subs []Word, cyclic bool) error {
	for _, t := range w.terms {
		if t.Generator < 0 || t.Generator >= len(subs) {
			return errors.Wrapf(
				ErrIndexOutOfRange, "SubstituteAll: generator %d with %d substitutions", t.Generator, len(subs),
			)
		}
	}
	expanded := make([]Term, 0, len(w.terms))
	for _, t := range w.terms {
		expanded = append(expanded, subs[t.Generator].Power(t.Exponent).terms...)
	}
	w.terms = expanded
	w.Simplify(cyclic)
	return nil
}

// CycleRight moves the first term to the end
func (w *Word) CycleRight() {
	if len(w.terms) > 1 {
		rotated := make([]Term, 0, len(w.terms))
		rotated = append(rotated, w.terms[1:]...)
		w.terms = append(rotated, w.terms[0])
	}
}

// CycleLeft moves the last term to the front
func (w *Word) CycleLeft() {
	if n := len(w.terms); n > 1 {
		rotated := make([]Term, 0, n)
		rotated = append(rotated, w.terms[n-1])
		w.terms = append(rotated, w.terms[:n-1]...)
	}
}

// AddTermFirst multiplies the word on the left by t without simplifying
func (w *Word) AddTermFirst(t Term) {
	extended := make([]Term, 0, len(w.terms)+1)
	extended = append(extended, t)
	w.terms = append(extended, w.terms...)
}

// AddTermLast multiplies the word on the right by t without simplifying
func (w *Word) AddTermLast(t Term) {
	w.terms = append(w.terms[:len(w.terms):len(w.terms)], t)
}

// AddTermsFirst multiplies the word on the left by other without simplifying
func (w *Word) AddTermsFirst(other Word) {
	extended := make([]Term, 0, len(w.terms)+len(other.terms))
	extended = append(extended, other.terms...)
	w.terms = append(extended, w.terms...)
}

// AddTermsLast multiplies the word on the right by other without simplifying
func (w *Word) AddTermsLast(other Word) {
	w.terms = append(w.terms[:len(w.terms):len(w.terms)], other.terms...)
}

// Multiply returns the freely reduced product w * other
func (w Word) Multiply(other Word) Word {
	retVal := w.Clone()
	retVal.AddTermsLast(other)
	retVal.Simplify(false)
	return retVal
}

// UsesGenerator returns whether gen occurs in the word
func (w Word) UsesGenerator(gen int) bool {
	for _, t := range w.terms {
		if t.Generator == gen {
			return true
		}
	}
	return false
}

// ExponentSum returns the sum of the exponents of gen
func (w Word) ExponentSum(gen int) int {
	retVal := 0
	for _, t := range w.terms {
		if t.Generator == gen {
			retVal += t.Exponent
		}
	}
	return retVal
}

// TotalExponentSum returns the sum of all exponents
func (w Word) TotalExponentSum() int {
	retVal := 0
	for _, t := range w.terms {
		retVal += t.Exponent
	}
	return retVal
}

// MaxGenerator returns the largest generator index used, or -1 for the
// empty word
func (w Word) MaxGenerator() int {
	retVal := -1
	for _, t := range w.terms {
		if t.Generator > retVal {
			retVal = t.Generator
		}
	}
	return retVal
}

// Relabel replaces every generator g by newIndex[g]. Terms whose
// generator maps to a negative index are dropped.
func (w *Word) Relabel(newIndex []int) error {
	relabelled := make([]Term, 0, len(w.terms))
	for _, t := range w.terms {
		if t.Generator < 0 || t.Generator >= len(newIndex) {
			return errors.Wrapf(
				ErrIndexOutOfRange, "Relabel: generator %d with %d labels", t.Generator, len(newIndex),
			)
		}
		if newIndex[t.Generator] >= 0 {
			relabelled = append(relabelled, Term{Generator: newIndex[t.Generator], Exponent: t.Exponent})
		}
	}
	w.terms = relabelled
	w.Simplify(false)
	return nil
}

// Splay returns the word with every term g^e expanded to |e| terms of
// exponent sign(e)
func (w Word) Splay() []Term {
	retVal := make([]Term, 0, w.WordLength())
	for _, t := range w.terms {
		letter := Term{Generator: t.Generator, Exponent: 1}
		if t.Exponent < 0 {
			letter.Exponent = -1
		}
		for k := 0; k < abs(t.Exponent); k++ {
			retVal = append(retVal, letter)
		}
	}
	return retVal
}

// Text writes the terms space-separated, using letters when alpha is
// true, e.g. "a^2 b^-1" or "g0^2 g1^-1". The empty word is written "1".
func (w Word) Text(alpha bool) string {
	if len(w.terms) == 0 {
		return "1"
	}
	texts := make([]string, len(w.terms))
	for i, t := range w.terms {
		texts[i] = t.Text(alpha)
	}
	return strings.Join(texts, " ")
}

func (w Word) String() string {
	return w.Text(false)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

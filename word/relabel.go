package word

// Copyright (c) 2025 Colin McRae

import (
	"sort"
)

// Relabelling is a partial map from generators to signed generators. A
// value Term{Generator: j, Exponent: -1} sends g_i to g_j^-1.
type Relabelling map[int]Term

// Equal returns whether the two relabellings are defined on the same
// generators with the same images
func (r Relabelling) Equal(other Relabelling) bool {
	if len(r) != len(other) {
		return false
	}
	for gen, image := range r {
		if otherImage, ok := other[gen]; !ok || otherImage != image {
			return false
		}
	}
	return true
}

// Merge returns the union of r and other, or false if they disagree on a
// generator
func (r Relabelling) Merge(other Relabelling) (Relabelling, bool) {
	retVal := make(Relabelling, len(r)+len(other))
	for gen, image := range r {
		retVal[gen] = image
	}
	for gen, image := range other {
		if existing, ok := retVal[gen]; ok && existing != image {
			return nil, false
		}
		retVal[gen] = image
	}
	return retVal, true
}

// Generators returns the generators on which r is defined, in ascending order
func (r Relabelling) Generators() []int {
	retVal := make([]int, 0, len(r))
	for gen := range r {
		retVal = append(retVal, gen)
	}
	sort.Ints(retVal)
	return retVal
}

// RelabellingsTo returns the relabellings of the generators of w that turn
// it into other term by term. When cyclic is true, w may also be cyclically
// rotated and inverted first; both words should then be cyclically
// reduced. Duplicates are removed.
func (w Word) RelabellingsTo(other Word, cyclic bool) []Relabelling {
	if !cyclic {
		if r, ok := w.relabellingTo(other); ok {
			return []Relabelling{r}
		}
		return nil
	}
	if len(w.terms) != len(other.terms) {
		return nil
	}
	var retVal []Relabelling
	add := func(r Relabelling) {
		for _, existing := range retVal {
			if existing.Equal(r) {
				return
			}
		}
		retVal = append(retVal, r)
	}
	rotated := w.Clone()
	for pass := 0; pass < 2; pass++ {
		for k := 0; k < len(rotated.terms); k++ {
			if r, ok := rotated.relabellingTo(other); ok {
				add(r)
			}
			rotated.CycleRight()
		}
		rotated.Invert()
	}
	if len(w.terms) == 0 {
		add(Relabelling{})
	}
	return retVal
}

// relabellingTo matches w and other term by term
func (w Word) relabellingTo(other Word) (Relabelling, bool) {
	if len(w.terms) != len(other.terms) {
		return nil, false
	}
	retVal := make(Relabelling)
	for k, t := range w.terms {
		o := other.terms[k]
		if abs(t.Exponent) != abs(o.Exponent) {
			return nil, false
		}
		image := Term{Generator: o.Generator, Exponent: 1}
		if t.Exponent != o.Exponent {
			image.Exponent = -1
		}
		if existing, ok := retVal[t.Generator]; ok && existing != image {
			return nil, false
		}
		retVal[t.Generator] = image
	}
	return retVal, true
}

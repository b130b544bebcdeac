package group

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// IdentifyAbelian returns whether every commutator of two generators
// reduces to the identity under SimplifyWord. A false result only means
// the relators failed to prove commutativity.
func (p *Presentation) IdentifyAbelian() bool {
	for i := 0; i < p.nGenerators; i++ {
		for j := i + 1; j < p.nGenerators; j++ {
			commutator := word.New(
				word.Term{Generator: i, Exponent: 1},
				word.Term{Generator: j, Exponent: 1},
				word.Term{Generator: i, Exponent: -1},
				word.Term{Generator: j, Exponent: -1},
			)
			p.SimplifyWord(&commutator)
			if !commutator.IsTrivial() {
				return false
			}
		}
	}
	return true
}

// IdentifyFreeProduct splits the generators into classes of generators
// that occur together in some relator, possibly through a chain of
// relators. It returns one factor per class, ordered by smallest
// generator, followed by a free factor on the generators no relator uses.
// It returns nil when there would be fewer than two factors.
func (p *Presentation) IdentifyFreeProduct() []*Presentation {
	parent := make([]int, p.nGenerators)
	used := make([]bool, p.nGenerators)
	for i := range parent {
		parent[i] = i
	}
	var find func(i int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, r := range p.relators {
		if r.CountTerms() == 0 {
			continue
		}
		first := r.Term(0).Generator
		for k := 0; k < r.CountTerms(); k++ {
			g := r.Term(k).Generator
			used[g] = true
			if rootG, rootFirst := find(g), find(first); rootG != rootFirst {
				if rootG < rootFirst {
					parent[rootFirst] = rootG
				} else {
					parent[rootG] = rootFirst
				}
			}
		}
	}

	// Roots are the smallest generators of their classes
	newIndex := make([]int, p.nGenerators)
	classOf := make(map[int]int)
	var classes [][]int
	var unused []int
	for i := 0; i < p.nGenerators; i++ {
		if !used[i] {
			unused = append(unused, i)
			continue
		}
		root := find(i)
		c, ok := classOf[root]
		if !ok {
			c = len(classes)
			classOf[root] = c
			classes = append(classes, nil)
		}
		newIndex[i] = len(classes[c])
		classes[c] = append(classes[c], i)
	}
	numFactors := len(classes)
	if len(unused) > 0 {
		numFactors++
	}
	if numFactors < 2 {
		return nil
	}

	retVal := make([]*Presentation, 0, numFactors)
	for _, class := range classes {
		factor := New(len(class))
		for _, r := range p.relators {
			if r.CountTerms() == 0 || classOf[find(r.Term(0).Generator)] != classOf[class[0]] {
				continue
			}
			_ = r.Relabel(newIndex)
			factor.relators = append(factor.relators, r)
		}
		retVal = append(retVal, factor)
	}
	if len(unused) > 0 {
		retVal = append(retVal, New(len(unused)))
	}
	return retVal
}

// IdentifySimplyIsomorphicTo returns whether some map sending each
// generator of other to a generator of p or its inverse, bijectively on
// generators, is an isomorphism. Candidate maps come from matching each
// relator of p with a relator of other up to relabelling, cyclic rotation
// and inversion, and the map from other is checked with Verify.
func (p *Presentation) IdentifySimplyIsomorphicTo(other *Presentation) bool {
	if p.nGenerators != other.nGenerators {
		return false
	}
	if len(p.relators) == 0 && len(other.relators) == 0 {
		return true
	}
	if len(p.relators) == 0 || len(other.relators) == 0 {
		return false
	}
	domRelIdx := relatorsByGeneratorCount(p)
	ranRelIdx := relatorsByGeneratorCount(other)
	counts := make([]int, 0, len(domRelIdx))
	for count := range domRelIdx {
		counts = append(counts, count)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	allPartialSubs := []word.Relabelling{{}}
	for _, count := range counts {
		ranRels, ok := ranRelIdx[count]
		if !ok {
			return false
		}
		for _, domRel := range domRelIdx[count] {
			var newPartialSubs []word.Relabelling
			for _, ranRel := range ranRels {
				for _, x := range domRel.RelabellingsTo(ranRel, true) {
					for _, y := range allPartialSubs {
						merged, ok := x.Merge(y)
						if !ok || containsRelabelling(newPartialSubs, merged) {
							continue
						}
						newPartialSubs = append(newPartialSubs, merged)
					}
				}
			}
			if len(newPartialSubs) == 0 {
				return false
			}
			allPartialSubs = newPartialSubs
		}
	}

	for _, x := range allPartialSubs {
		if len(x) != p.nGenerators {
			continue
		}
		images := make(map[int]bool)
		for _, image := range x {
			images[image.Generator] = true
		}
		if len(images) != p.nGenerators {
			continue
		}
		inverseMap := make([]word.Word, p.nGenerators)
		for gen, image := range x {
			inverseMap[image.Generator] = word.New(word.Term{Generator: gen, Exponent: image.Exponent})
		}
		h, err := NewHomomorphism(other, p, inverseMap)
		if err == nil && h.Verify() {
			return true
		}
	}
	return false
}

// relatorsByGeneratorCount groups cyclically reduced copies of the
// relators by their number of distinct generators
func relatorsByGeneratorCount(p *Presentation) map[int][]word.Word {
	retVal := make(map[int][]word.Word)
	for _, r := range p.relators {
		reduced := r.Clone()
		reduced.Simplify(true)
		count := len(usedGenerators(reduced))
		retVal[count] = append(retVal[count], reduced)
	}
	return retVal
}

func containsRelabelling(list []word.Relabelling, r word.Relabelling) bool {
	for _, existing := range list {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// RecogniseGroup names the group when it is recognisably trivial ("0"),
// abelian (e.g. "Z + Z_2"), free ("Free(2)"), an extension of Z with a
// recognisable kernel ("Z~Free(2) w/monodromy a ↦ b, b ↦ a^-1 b") or a
// free product of such. It returns "" when the group is not recognised.
// The presentation is not modified.
func (p *Presentation) RecogniseGroup(utf8 bool) (string, error) {
	caller := "RecogniseGroup"
	if err := p.validate(caller); err != nil {
		return "", err
	}
	if p.nGenerators == 0 {
		return "0", nil
	}
	ab, err := p.Abelianisation()
	if err != nil {
		return "", errors.Wrap(err, caller)
	}
	if p.IdentifyAbelian() {
		return ab.Text(utf8), nil
	}
	if len(p.relators) == 0 {
		return fmt.Sprintf("Free(%d)", p.nGenerators), nil
	}

	if ab.FreeRank() == 1 {
		monodromy, err := p.Clone().IdentifyExtensionOverZ()
		if err != nil {
			return "", errors.Wrap(err, caller)
		}
		if monodromy != nil {
			kernel, err := monodromy.domain.RecogniseGroup(utf8)
			if err != nil {
				return "", errors.Wrap(err, caller)
			}
			if kernel != "" {
				return monodromyText(monodromy, kernel, utf8), nil
			}
		}
	}

	if factors := p.IdentifyFreeProduct(); len(factors) > 1 {
		texts := make([]string, len(factors))
		for i, factor := range factors {
			text, err := factor.RecogniseGroup(utf8)
			if err != nil {
				return "", errors.Wrap(err, caller)
			}
			if text == "" {
				text = "Unknown"
			}
			texts[i] = text
		}
		return fmt.Sprintf("FreeProduct( %s )", strings.Join(texts, ", ")), nil
	}
	return "", nil
}

// monodromyText writes "Z~K w/monodromy a ↦ ..., b ↦ ..."
func monodromyText(monodromy *Homomorphism, kernel string, utf8 bool) string {
	var sb strings.Builder
	if utf8 {
		sb.WriteString("ℤ~")
	} else {
		sb.WriteString("Z~")
	}
	sb.WriteString(kernel)
	sb.WriteString(" w/monodromy ")
	numGen := monodromy.domain.nGenerators
	alpha := numGen <= 26
	for i := 0; i < numGen; i++ {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(word.Generator(i).Text(alpha))
		sb.WriteString(" ↦ ")
		sb.WriteString(monodromy.forward[i].Text(alpha))
	}
	return sb.String()
}

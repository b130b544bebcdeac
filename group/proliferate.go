package group

// Copyright (c) 2025 Colin McRae

import (
	"github.com/predrag3141/FPGroup/word"
)

// ProliferateRelators appends, for every ordered pair of distinct
// relators, the result of each Dehn substitution of the second into the
// first whose score is above -depth. With depth > 1 the new relators are
// themselves rewritten by the original ones, depth - 1 more times. The
// presentation may grow considerably; the simplification passes never
// call this.
func (p *Presentation) ProliferateRelators(depth int) {
	if depth < 1 {
		return
	}
	var newRels []word.Word
	for i := range p.relators {
		for j := range p.relators {
			if i == j {
				continue
			}
			for _, sub := range word.SubstitutionMetric(p.relators[i], p.relators[j], depth) {
				newRel := p.relators[i].Clone()
				word.ApplySubstitution(&newRel, p.relators[j], sub)
				newRels = append(newRels, newRel)
			}
		}
	}
	for depth--; depth > 0; depth-- {
		var tempRels []word.Word
		for _, r := range p.relators {
			for _, n := range newRels {
				for _, sub := range word.SubstitutionMetric(n, r, depth) {
					newRel := n.Clone()
					word.ApplySubstitution(&newRel, r, sub)
					tempRels = append(tempRels, newRel)
				}
			}
		}
		newRels = append(newRels, tempRels...)
	}
	p.relators = append(p.relators, newRels...)
}

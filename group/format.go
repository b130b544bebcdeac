package group

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"strings"
)

// String writes the brief form, e.g. "< a b | a^2, a b a^-1 b >". Generators
// are letters when there are at most 26 of them and g0, g1, ... otherwise.
func (p *Presentation) String() string {
	return p.Text(p.nGenerators <= 26)
}

// Text writes the brief form with letters (alpha) or indexed generators
func (p *Presentation) Text(alpha bool) string {
	var sb strings.Builder
	sb.WriteString("<")
	for i := 0; i < p.nGenerators; i++ {
		if alpha && p.nGenerators <= 26 {
			sb.WriteString(fmt.Sprintf(" %c", rune('a'+i)))
		} else {
			sb.WriteString(fmt.Sprintf(" g%d", i))
		}
	}
	for j, r := range p.relators {
		if j == 0 {
			sb.WriteString(" | ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Text(alpha && p.nGenerators <= 26))
	}
	sb.WriteString(" >")
	return sb.String()
}

// RelatorStrings returns each relator in g-index form, suitable for
// NewFromStrings
func (p *Presentation) RelatorStrings() []string {
	retVal := make([]string, len(p.relators))
	for j, r := range p.relators {
		if !r.IsTrivial() {
			retVal[j] = r.Text(false)
		}
	}
	return retVal
}

package group

// Copyright (c) 2025 Colin McRae

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// Presentation is a finitely presented group < g_0, ..., g_{n-1} | r_0, ..., r_{m-1} >.
// The simplification passes rewrite it in place and return the isomorphism
// from the old presentation to the new one.
type Presentation struct {
	nGenerators int
	relators    []word.Word
}

// New returns a presentation with copies of the given relators. Use IsValid
// or any pass to detect relators referring to missing generators.
func New(nGenerators int, relators ...word.Word) *Presentation {
	retVal := &Presentation{nGenerators: nGenerators, relators: make([]word.Word, len(relators))}
	for i, r := range relators {
		retVal.relators[i] = r.Clone()
	}
	return retVal
}

// NewFromStrings parses each relator with word.Parse
func NewFromStrings(nGenerators int, relators ...string) (*Presentation, error) {
	caller := "NewFromStrings"
	retVal := &Presentation{nGenerators: nGenerators, relators: make([]word.Word, len(relators))}
	for i, s := range relators {
		r, err := word.Parse(s)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: relator %d", caller, i)
		}
		retVal.relators[i] = r
	}
	if err := retVal.validate(caller); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (p *Presentation) CountGenerators() int { return p.nGenerators }

func (p *Presentation) CountRelators() int { return len(p.relators) }

// Relator returns a copy of relator i
func (p *Presentation) Relator(i int) word.Word { return p.relators[i].Clone() }

// Relators returns copies of the relators
func (p *Presentation) Relators() []word.Word {
	retVal := make([]word.Word, len(p.relators))
	for i, r := range p.relators {
		retVal[i] = r.Clone()
	}
	return retVal
}

// AddGenerators appends k generators and returns the new generator count
func (p *Presentation) AddGenerators(k int) int {
	p.nGenerators += k
	return p.nGenerators
}

func (p *Presentation) AddRelator(r word.Word) {
	p.relators = append(p.relators, r.Clone())
}

// IsValid returns whether every relator uses only generators 0..n-1
func (p *Presentation) IsValid() bool {
	for _, r := range p.relators {
		for i := 0; i < r.CountTerms(); i++ {
			if g := r.Term(i).Generator; g < 0 || g >= p.nGenerators {
				return false
			}
		}
	}
	return true
}

func (p *Presentation) validate(caller string) error {
	if p.nGenerators < 0 {
		return errors.Wrapf(ErrInvalidPresentation, "%s: %d generators", caller, p.nGenerators)
	}
	for j, r := range p.relators {
		for i := 0; i < r.CountTerms(); i++ {
			if g := r.Term(i).Generator; g < 0 || g >= p.nGenerators {
				return errors.Wrapf(
					ErrInvalidPresentation, "%s: relator %d uses generator %d of %d", caller, j, g, p.nGenerators,
				)
			}
		}
	}
	return nil
}

func (p *Presentation) Clone() *Presentation {
	return New(p.nGenerators, p.relators...)
}

// Equal compares generator counts and relator sequences exactly
func (p *Presentation) Equal(other *Presentation) bool {
	if p.nGenerators != other.nGenerators || len(p.relators) != len(other.relators) {
		return false
	}
	for i := range p.relators {
		if !p.relators[i].Equal(other.relators[i]) {
			return false
		}
	}
	return true
}

// TotalRelatorLength returns the sum of the relator word lengths
func (p *Presentation) TotalRelatorLength() int {
	retVal := 0
	for _, r := range p.relators {
		retVal += r.WordLength()
	}
	return retVal
}

// Incidence returns the relator-by-generator table of which generators
// occur in which relators
func (p *Presentation) Incidence() [][]bool {
	retVal := make([][]bool, len(p.relators))
	for j, r := range p.relators {
		retVal[j] = make([]bool, p.nGenerators)
		for i := 0; i < r.CountTerms(); i++ {
			if g := r.Term(i).Generator; g >= 0 && g < p.nGenerators {
				retVal[j][g] = true
			}
		}
	}
	return retVal
}

// SimplifyWord freely reduces w and then applies the best strictly
// shortening Dehn substitution from each relator in turn until none
// applies or w is trivial. It returns whether w changed.
func (p *Presentation) SimplifyWord(w *word.Word) bool {
	changed := w.Simplify(false)
	if w.IsTrivial() {
		return changed
	}
	for progress := true; progress; {
		progress = false
		for _, r := range p.relators {
			sub, ok := word.BestSubstitution(*w, r, 1)
			if !ok || sub.Score <= 0 {
				continue
			}
			word.ApplySubstitution(w, r, sub)
			changed, progress = true, true
			if w.IsTrivial() {
				return true
			}
		}
	}
	return changed
}

// identityMap returns g_0, ..., g_{n-1}
func identityMap(n int) []word.Word {
	retVal := make([]word.Word, n)
	for i := 0; i < n; i++ {
		retVal[i] = word.Generator(i)
	}
	return retVal
}

// relabel rewrites every relator with the generator map newIndex and sets
// the generator count
func (p *Presentation) relabel(newIndex []int, nGenerators int, caller string) error {
	caller = fmt.Sprintf("%s-relabel", caller)
	for j := range p.relators {
		if err := p.relators[j].Relabel(newIndex); err != nil {
			return errors.Wrapf(err, "%s: relator %d", caller, j)
		}
	}
	p.nGenerators = nGenerators
	return nil
}

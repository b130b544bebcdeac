package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/group"
	"github.com/predrag3141/FPGroup/presfile"
)

// PresentationContext records one run of the simplifier on a presentation
type PresentationContext struct {
	Name             string `json:"name" yaml:"name"`
	Input            string `json:"input" yaml:"input"`
	InputGenerators  int    `json:"inputGenerators" yaml:"inputGenerators"`
	InputRelators    int    `json:"inputRelators" yaml:"inputRelators"`
	InputLength      int    `json:"inputLength" yaml:"inputLength"`
	Output           string `json:"output" yaml:"output"`
	OutputGenerators int    `json:"outputGenerators" yaml:"outputGenerators"`
	OutputRelators   int    `json:"outputRelators" yaml:"outputRelators"`
	OutputLength     int    `json:"outputLength" yaml:"outputLength"`
	Changed          bool   `json:"changed" yaml:"changed"`
	AbelianBefore    string `json:"abelianBefore" yaml:"abelianBefore"`
	AbelianAfter     string `json:"abelianAfter" yaml:"abelianAfter"`
	Verified         bool   `json:"verified" yaml:"verified"`
	Recognised       string `json:"recognised" yaml:"recognised"`
	ElapsedMicros    int64  `json:"elapsedMicros" yaml:"elapsedMicros"`

	input  *group.Presentation
	output *group.Presentation
}

// NewPresentationContext returns a context for simplifying a copy of p
func NewPresentationContext(name string, p *group.Presentation) *PresentationContext {
	return &PresentationContext{
		Name:            name,
		Input:           p.String(),
		InputGenerators: p.CountGenerators(),
		InputRelators:   p.CountRelators(),
		InputLength:     p.TotalRelatorLength(),
		input:           p.Clone(),
	}
}

// Run simplifies the input and fills in the results. Verified is true when
// nothing changed or the returned isomorphism passes Verify in both
// directions.
func (pc *PresentationContext) Run() error {
	caller := fmt.Sprintf("Run(%s)", pc.Name)
	start := time.Now()
	before, err := pc.input.Abelianisation()
	if err != nil {
		return errors.Wrap(err, caller)
	}
	pc.AbelianBefore = before.Text(false)
	if pc.Recognised, err = pc.input.RecogniseGroup(false); err != nil {
		return errors.Wrap(err, caller)
	}

	pc.output = pc.input.Clone()
	h, err := pc.output.IntelligentSimplify()
	if err != nil {
		return errors.Wrap(err, caller)
	}
	pc.Changed = h != nil
	pc.Verified = true
	if h != nil {
		pc.Verified = h.Verify()
		if pc.Verified && h.Invert() {
			pc.Verified = h.Verify()
		}
	}
	after, err := pc.output.Abelianisation()
	if err != nil {
		return errors.Wrap(err, caller)
	}
	pc.AbelianAfter = after.Text(false)
	pc.Output = pc.output.String()
	pc.OutputGenerators = pc.output.CountGenerators()
	pc.OutputRelators = pc.output.CountRelators()
	pc.OutputLength = pc.output.TotalRelatorLength()
	pc.ElapsedMicros = time.Since(start).Microseconds()
	return nil
}

// Check compares the results of Run with the known answers and fails
// when the isomorphism returned by the simplifier did not verify. The
// abelianisation is compared before and after simplification and the
// recognised name refers to the input presentation.
func (pc *PresentationContext) Check(expect presfile.Expect) error {
	if !pc.Verified {
		return fmt.Errorf("%s: the map to %s did not verify", pc.Name, pc.Output)
	}
	if pc.AbelianBefore != pc.AbelianAfter {
		return fmt.Errorf("%s: abelianisation changed from %q to %q", pc.Name, pc.AbelianBefore, pc.AbelianAfter)
	}
	if expect.Abelian != "" && expect.Abelian != pc.AbelianBefore {
		return fmt.Errorf("%s: abelianisation is %q, expected %q", pc.Name, pc.AbelianBefore, expect.Abelian)
	}
	if expect.Recognised != "" && expect.Recognised != pc.Recognised {
		return fmt.Errorf("%s: recognised %q, expected %q", pc.Name, pc.Recognised, expect.Recognised)
	}
	if expect.Generators != nil && *expect.Generators != pc.OutputGenerators {
		return fmt.Errorf("%s: %d generators, expected %d", pc.Name, pc.OutputGenerators, *expect.Generators)
	}
	if expect.Relators != nil && *expect.Relators != pc.OutputRelators {
		return fmt.Errorf("%s: %d relators, expected %d", pc.Name, pc.OutputRelators, *expect.Relators)
	}
	return nil
}

// Simplified returns a copy of the simplified presentation, or nil before Run
func (pc *PresentationContext) Simplified() *group.Presentation {
	if pc.output == nil {
		return nil
	}
	return pc.output.Clone()
}

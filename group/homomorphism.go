package group

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/predrag3141/FPGroup/word"
)

// Homomorphism maps the generators of its domain to words in the
// generators of its codomain. A declared isomorphism also carries the
// images of the codomain generators under the inverse.
type Homomorphism struct {
	domain   *Presentation
	codomain *Presentation
	forward  []word.Word
	inverse  []word.Word
}

// NewHomomorphism returns the homomorphism sending domain generator i to
// forward[i]. Domain and codomain are copied.
func NewHomomorphism(domain, codomain *Presentation, forward []word.Word) (*Homomorphism, error) {
	return newHomomorphism(domain, codomain, forward, nil, "NewHomomorphism")
}

// NewIsomorphism returns a declared isomorphism with the given forward
// and inverse generator images
func NewIsomorphism(domain, codomain *Presentation, forward, inverse []word.Word) (*Homomorphism, error) {
	if inverse == nil {
		inverse = []word.Word{}
	}
	return newHomomorphism(domain, codomain, forward, inverse, "NewIsomorphism")
}

func newHomomorphism(domain, codomain *Presentation, forward, inverse []word.Word, caller string) (*Homomorphism, error) {
	if err := checkImages(forward, domain.nGenerators, codomain.nGenerators, "forward", caller); err != nil {
		return nil, err
	}
	retVal := &Homomorphism{
		domain:   domain.Clone(),
		codomain: codomain.Clone(),
		forward:  cloneWords(forward),
	}
	if inverse != nil {
		if err := checkImages(inverse, codomain.nGenerators, domain.nGenerators, "inverse", caller); err != nil {
			return nil, err
		}
		retVal.inverse = cloneWords(inverse)
	}
	return retVal, nil
}

// checkImages verifies there are numImages images, each a word in the
// first numTargetGens generators
func checkImages(images []word.Word, numImages, numTargetGens int, name, caller string) error {
	if len(images) != numImages {
		return errors.Wrapf(
			word.ErrIndexOutOfRange, "%s: %d %s images for %d generators", caller, len(images), name, numImages,
		)
	}
	for i, w := range images {
		if w.MaxGenerator() >= numTargetGens {
			return errors.Wrapf(
				word.ErrIndexOutOfRange, "%s: %s image %d uses generator %d of %d",
				caller, name, i, w.MaxGenerator(), numTargetGens,
			)
		}
	}
	return nil
}

// NewIdentity returns the identity isomorphism of p
func NewIdentity(p *Presentation) *Homomorphism {
	return &Homomorphism{
		domain:   p.Clone(),
		codomain: p.Clone(),
		forward:  identityMap(p.nGenerators),
		inverse:  identityMap(p.nGenerators),
	}
}

func cloneWords(words []word.Word) []word.Word {
	retVal := make([]word.Word, len(words))
	for i, w := range words {
		retVal[i] = w.Clone()
	}
	return retVal
}

// Domain returns a copy of the domain
func (h *Homomorphism) Domain() *Presentation { return h.domain.Clone() }

// Codomain returns a copy of the codomain
func (h *Homomorphism) Codomain() *Presentation { return h.codomain.Clone() }

// KnowsInverse returns whether h is a declared isomorphism
func (h *Homomorphism) KnowsInverse() bool { return h.inverse != nil }

// EvaluateGenerator returns the image of domain generator i
func (h *Homomorphism) EvaluateGenerator(i int) word.Word { return h.forward[i].Clone() }

// InvEvaluateGenerator returns the image of codomain generator i under the
// inverse. h must be a declared isomorphism.
func (h *Homomorphism) InvEvaluateGenerator(i int) word.Word { return h.inverse[i].Clone() }

// Evaluate returns the freely reduced image of a word in the domain
func (h *Homomorphism) Evaluate(w word.Word) (word.Word, error) {
	retVal := w.Clone()
	if err := retVal.SubstituteAll(h.forward, false); err != nil {
		return word.Word{}, errors.Wrap(err, "Evaluate")
	}
	return retVal, nil
}

// InvEvaluate returns the freely reduced image of a word in the codomain
// under the inverse
func (h *Homomorphism) InvEvaluate(w word.Word) (word.Word, error) {
	if h.inverse == nil {
		return word.Word{}, fmt.Errorf("InvEvaluate: not a declared isomorphism")
	}
	retVal := w.Clone()
	if err := retVal.SubstituteAll(h.inverse, false); err != nil {
		return word.Word{}, errors.Wrap(err, "InvEvaluate")
	}
	return retVal, nil
}

// Invert swaps domain and codomain of a declared isomorphism. It returns
// false, changing nothing, when h is not one.
func (h *Homomorphism) Invert() bool {
	if h.inverse == nil {
		return false
	}
	h.domain, h.codomain = h.codomain, h.domain
	h.forward, h.inverse = h.inverse, h.forward
	return true
}

// Verify returns whether every domain relator maps to a word that the
// codomain's SimplifyWord reduces to the identity. false is inconclusive.
func (h *Homomorphism) Verify() bool {
	for _, r := range h.domain.relators {
		image, err := h.Evaluate(r)
		if err != nil {
			return false
		}
		h.codomain.SimplifyWord(&image)
		if !image.IsTrivial() {
			return false
		}
	}
	return true
}

// VerifyIsomorphism checks that f^-1(f(x)) x^-1 and f(f^-1(y)) y^-1 reduce
// to the identity for all generators x of the domain and y of the codomain.
// false is inconclusive.
func (h *Homomorphism) VerifyIsomorphism() bool {
	if h.inverse == nil {
		return false
	}
	for i := 0; i < h.domain.nGenerators; i++ {
		there, err := h.InvEvaluate(h.forward[i])
		if err != nil {
			return false
		}
		there.AddTermLast(word.Term{Generator: i, Exponent: -1})
		h.domain.SimplifyWord(&there)
		if !there.IsTrivial() {
			return false
		}
	}
	for i := 0; i < h.codomain.nGenerators; i++ {
		back, err := h.Evaluate(h.inverse[i])
		if err != nil {
			return false
		}
		back.AddTermLast(word.Term{Generator: i, Exponent: -1})
		h.codomain.SimplifyWord(&back)
		if !back.IsTrivial() {
			return false
		}
	}
	return true
}

// Compose returns f o g, which applies g first. Images are only freely
// reduced: a relator substitution may wrap around the end of a word and
// would replace an image by a conjugate.
func Compose(f, g *Homomorphism) (*Homomorphism, error) {
	caller := "Compose"
	if g.codomain.nGenerators != f.domain.nGenerators {
		return nil, errors.Wrapf(
			word.ErrIndexOutOfRange, "%s: codomain of g has %d generators but domain of f has %d",
			caller, g.codomain.nGenerators, f.domain.nGenerators,
		)
	}
	retVal := &Homomorphism{
		domain:   g.domain.Clone(),
		codomain: f.codomain.Clone(),
		forward:  make([]word.Word, len(g.forward)),
	}
	for i, gi := range g.forward {
		image, err := f.Evaluate(gi)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: generator %d", caller, i)
		}
		retVal.forward[i] = image
	}
	if f.inverse != nil && g.inverse != nil {
		retVal.inverse = make([]word.Word, len(f.inverse))
		for i, fi := range f.inverse {
			image, err := g.InvEvaluate(fi)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: inverse generator %d", caller, i)
			}
			retVal.inverse[i] = image
		}
	}
	return retVal, nil
}

// composeOnto returns h o acc, or h when acc is nil
func composeOnto(h, acc *Homomorphism, caller string) (*Homomorphism, error) {
	if acc == nil {
		return h, nil
	}
	retVal, err := Compose(h, acc)
	if err != nil {
		return nil, errors.Wrap(err, caller)
	}
	return retVal, nil
}

// IntelligentSimplify simplifies the domain and the codomain and rewrites
// the map in terms of the new generators. It returns whether anything
// changed.
func (h *Homomorphism) IntelligentSimplify() (bool, error) {
	caller := "Homomorphism-IntelligentSimplify"
	domainIso, err := h.domain.IntelligentSimplify()
	if err != nil {
		return false, errors.Wrap(err, caller)
	}
	codomainIso, err := h.codomain.IntelligentSimplify()
	if err != nil {
		return false, errors.Wrap(err, caller)
	}
	if domainIso == nil && codomainIso == nil {
		return false, nil
	}
	if domainIso == nil {
		domainIso = NewIdentity(h.domain)
	}
	if codomainIso == nil {
		codomainIso = NewIdentity(h.codomain)
	}

	// new domain -> old domain -> old codomain -> new codomain
	forward := make([]word.Word, h.domain.nGenerators)
	for i := range forward {
		image, err := h.Evaluate(domainIso.inverse[i])
		if err != nil {
			return false, errors.Wrap(err, caller)
		}
		if image, err = codomainIso.Evaluate(image); err != nil {
			return false, errors.Wrap(err, caller)
		}
		forward[i] = image
	}
	var inverse []word.Word
	if h.inverse != nil {
		inverse = make([]word.Word, h.codomain.nGenerators)
		for i := range inverse {
			image, err := h.InvEvaluate(codomainIso.inverse[i])
			if err != nil {
				return false, errors.Wrap(err, caller)
			}
			if image, err = domainIso.Evaluate(image); err != nil {
				return false, errors.Wrap(err, caller)
			}
			inverse[i] = image
		}
	}
	h.forward, h.inverse = forward, inverse
	return true, nil
}

func (h *Homomorphism) String() string {
	var sb strings.Builder
	alpha := h.domain.nGenerators <= 26 && h.codomain.nGenerators <= 26
	sb.WriteString("map from ")
	sb.WriteString(h.domain.Text(alpha))
	sb.WriteString(" to ")
	sb.WriteString(h.codomain.Text(alpha))
	sb.WriteString(": ")
	for i, w := range h.forward {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(word.Generator(i).Text(alpha))
		sb.WriteString(" -> ")
		sb.WriteString(w.Text(alpha))
	}
	return sb.String()
}

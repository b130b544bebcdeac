package group

// Copyright (c) 2025 Colin McRae

// IntelligentSimplify alternates small cancellation and intelligent Nielsen
// moves until neither makes progress, then rewrites the presentation with
// PrettyRewriting. It returns the isomorphism from the old presentation to
// the new one, or nil if no pass changed the generators or relators.
func (p *Presentation) IntelligentSimplify() (*Homomorphism, error) {
	caller := "IntelligentSimplify"
	if err := p.validate(caller); err != nil {
		return nil, err
	}
	var retVal *Homomorphism
	for doRep := true; doRep; {
		doRep = false
		h, err := p.SmallCancellation()
		if err != nil {
			return nil, err
		}
		if h != nil {
			doRep = true
			if retVal, err = composeOnto(h, retVal, caller); err != nil {
				return nil, err
			}
		}
		if h, err = p.IntelligentNielsen(); err != nil {
			return nil, err
		}
		if h != nil {
			doRep = true
			if retVal, err = composeOnto(h, retVal, caller); err != nil {
				return nil, err
			}
		}
	}
	return p.prettyOnto(retVal, caller)
}

package word

// Copyright (c) 2025 Colin McRae

import (
	"sort"
)

// Substitution records a cyclic subword of a relator B found inside a
// target word A, relative to the splayed forms of A and B at the time it
// was found. Replacing the match by the complementary part of B changes
// the length of A by -Score (before free reduction).
type Substitution struct {
	StartInA int
	StartInB int
	Length   int
	InvertB  bool
	Score    int
}

// Less orders substitutions best first: descending score, then
// descending length, then B before B^-1, then descending positions
func (s Substitution) Less(other Substitution) bool {
	if s.Score != other.Score {
		return s.Score > other.Score
	}
	if s.Length != other.Length {
		return s.Length > other.Length
	}
	if s.InvertB != other.InvertB {
		return !s.InvertB
	}
	if s.StartInB != other.StartInB {
		return s.StartInB > other.StartInB
	}
	return s.StartInA > other.StartInA
}

// splayedPair holds the letters of a target and of a reducer and its inverse
type splayedPair struct {
	target     []Term
	reducer    []Term
	invReducer []Term
}

func newSplayedPair(a, b Word) splayedPair {
	retVal := splayedPair{target: a.Splay(), reducer: b.Splay()}
	n := len(retVal.reducer)
	retVal.invReducer = make([]Term, n)
	for i, t := range retVal.reducer {
		retVal.invReducer[n-1-i] = t.Inverse()
	}
	return retVal
}

// SubstitutionMetric lists the substitutions of cyclic subwords of b or
// b^-1 into a, best first. Partial matches are kept when their score
// exceeds -step; full matches are always kept.
func SubstitutionMetric(a, b Word, step int) []Substitution {
	retVal := candidates(a, b, step)
	sort.SliceStable(retVal, func(x, y int) bool { return retVal[x].Less(retVal[y]) })
	return retVal
}

// BestSubstitution returns the first substitution SubstitutionMetric would
// list, if any
func BestSubstitution(a, b Word, step int) (Substitution, bool) {
	subs := candidates(a, b, step)
	if len(subs) == 0 {
		return Substitution{}, false
	}
	best := subs[0]
	for _, sub := range subs[1:] {
		if sub.Less(best) {
			best = sub
		}
	}
	return best, true
}

// candidates lists substitutions in the order they are found
func candidates(a, b Word, step int) []Substitution {
	aLen, bLen := a.WordLength(), b.WordLength()
	if aLen < 2 || bLen == 0 {
		return nil
	}
	if step == 1 && 2*aLen < bLen {
		return nil
	}
	sp := newSplayedPair(a, b)
	var retVal []Substitution
	for i := 0; i < aLen; i++ {
		for j := 0; j < bLen; j++ {
			for _, invertB := range []bool{false, true} {
				reducer := sp.reducer
				if invertB {
					reducer = sp.invReducer
				}
				matched := 0
				for (matched < bLen) && (matched < aLen) &&
					(sp.target[(i+matched)%aLen] == reducer[(j+matched)%bLen]) {
					matched++
				}
				sub := Substitution{StartInA: i, StartInB: j, Length: matched, InvertB: invertB}
				if matched == bLen {
					sub.Score = bLen
					for s := 1; (2*s+bLen <= aLen) &&
						(sp.target[(i+aLen-s)%aLen].Inverse() == sp.target[(i+matched+s-1)%aLen]); s++ {
						sub.Score++
					}
					retVal = append(retVal, sub)
				} else if matched > 0 {
					sub.Score = 2*matched - bLen
					if sub.Score > -step {
						retVal = append(retVal, sub)
					}
				}
			}
		}
	}
	return retVal
}

// ApplySubstitution rewrites a using a substitution found by
// SubstitutionMetric(a, b, step). Viewing a as a conjugate of XY and b as
// a conjugate of XZ, a becomes Z^-1 Y, freely reduced.
func ApplySubstitution(a *Word, b Word, sub Substitution) {
	sp := newSplayedPair(*a, b)
	aLen, bLen := len(sp.target), len(sp.reducer)
	rewritten := make([]Term, 0, aLen+bLen-2*sub.Length)
	for k := 0; k < bLen-sub.Length; k++ {
		if sub.InvertB {
			rewritten = append(rewritten, sp.reducer[(bLen-sub.StartInB+k)%bLen])
		} else {
			rewritten = append(rewritten, sp.invReducer[(bLen-sub.StartInB+k)%bLen])
		}
	}
	for k := 0; k < aLen-sub.Length; k++ {
		rewritten = append(rewritten, sp.target[(sub.StartInA+sub.Length+k)%aLen])
	}
	a.terms = rewritten
	a.Simplify(false)
}

package convert

import (
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/curtisnewbie/chronon/util/errs"
)

// Immutable ordered collection of converters with best-match selection.
//
// Add/Remove never mutate the receiver, they return a new Set with a fresh
// selection cache, the old Set stays fully valid for concurrent readers.
type Set struct {
	converters []*Converter
	cache      atomic.Pointer[cacheTable]
}

// Create converter set, at most one converter may claim a given exact type.
func NewSet(converters ...*Converter) (*Set, error) {
	for _, c := range converters {
		if c == nil {
			return nil, errs.ErrIllegalArgument.WithInternalMsg("converter must not be nil")
		}
	}
	for i := 0; i < len(converters); i++ {
		for j := i + 1; j < len(converters); j++ {
			if converters[i].typ == converters[j].typ {
				return nil, errs.ErrIllegalArgument.WithInternalMsg("duplicate converter for type %v", typeName(converters[i].typ))
			}
		}
	}
	cp := make([]*Converter, len(converters))
	copy(cp, converters)
	return newSetUnchecked(cp), nil
}

// converters ownership is transferred, the caller must not retain the slice.
func newSetUnchecked(converters []*Converter) *Set {
	s := &Set{converters: converters}
	s.cache.Store(newCacheTable(cacheInitialCapacity))
	return s
}

func (s *Set) Size() int {
	return len(s.converters)
}

// Snapshot copy of the registered converters.
func (s *Set) Converters() []*Converter {
	cp := make([]*Converter, len(s.converters))
	copy(cp, s.converters)
	return cp
}

// Select the most specific converter for the type.
//
// A nil type selects the registered nil handler, or nil without error when
// none is registered. A type no converter can handle selects nil. Multiple
// equally specific candidates are an AMBIGUOUS_MATCH error, never an
// arbitrary pick.
//
// Resolutions are cached, repeated selection of the same type is O(1).
func (s *Set) Select(t reflect.Type) (*Converter, error) {
	if t == nil {
		for _, c := range s.converters {
			if c.typ == nil {
				return c, nil
			}
		}
		return nil, nil
	}

	if c, ok := s.cache.Load().lookup(t); ok {
		return c, nil
	}

	c, err := s.selectSlow(t)
	if err != nil {
		return nil, err
	}

	// clone-and-publish, racing writers may redundantly recompute the same
	// entry, last store wins with an identical value
	s.cache.Store(s.cache.Load().put(t, c))
	return c, nil
}

func (s *Set) selectSlow(t reflect.Type) (*Converter, error) {
	// exact match, the common case
	for _, c := range s.converters {
		if c.typ == t {
			return c, nil
		}
	}

	// keep converters that can handle the queried type
	cand := make([]*Converter, 0, len(s.converters))
	for _, c := range s.converters {
		if c.typ == nil || !t.AssignableTo(c.typ) {
			continue
		}
		cand = append(cand, c)
	}

	if len(cand) == 0 {
		return nil, nil
	}

	// most specific wins, repeatedly discard strict supertypes of another candidate
	for changed := true; changed && len(cand) > 1; {
		changed = false
	outer:
		for i := 0; i < len(cand); i++ {
			for j := 0; j < len(cand); j++ {
				if i != j && isStrictSupertype(cand[i].typ, cand[j].typ) {
					cand = append(cand[:i], cand[i+1:]...)
					changed = true
					break outer
				}
			}
		}
	}

	if len(cand) == 1 {
		return cand[0], nil
	}

	names := make([]string, len(cand))
	for i, c := range cand {
		names[i] = c.String()
	}
	return nil, errs.ErrAmbiguousMatch.WithInternalMsg("multiple converters match type %v: %v", t, strings.Join(names, ", "))
}

func isStrictSupertype(a reflect.Type, b reflect.Type) bool {
	return a != b && b.AssignableTo(a) && !a.AssignableTo(b)
}

// Produce a new Set with the converter added.
//
// The identical instance already present is a no-op returning the receiver.
// A converter claiming the same exact type is replaced and reported. The
// receiver is never mutated.
func (s *Set) Add(c *Converter) (ns *Set, removed *Converter, err error) {
	if c == nil {
		return s, nil, errs.ErrIllegalArgument.WithInternalMsg("converter must not be nil")
	}
	for i, x := range s.converters {
		if x == c {
			return s, nil, nil
		}
		if x.typ == c.typ {
			cp := s.Converters()
			cp[i] = c
			return newSetUnchecked(cp), x, nil
		}
	}
	cp := make([]*Converter, len(s.converters)+1)
	copy(cp, s.converters)
	cp[len(cp)-1] = c
	return newSetUnchecked(cp), nil, nil
}

// Produce a new Set with the converter removed, matched by identity.
//
// Not found is a no-op returning the receiver.
func (s *Set) Remove(c *Converter) (ns *Set, removed *Converter) {
	for i, x := range s.converters {
		if x == c {
			return s.removeAt(i), x
		}
	}
	return s, nil
}

// Produce a new Set with the converter at the position removed.
func (s *Set) RemoveAt(i int) (ns *Set, removed *Converter, err error) {
	if i < 0 || i >= len(s.converters) {
		return s, nil, errs.ErrIllegalArgument.WithInternalMsg("index %v out of range [0, %v)", i, len(s.converters))
	}
	return s.removeAt(i), s.converters[i], nil
}

func (s *Set) removeAt(i int) *Set {
	cp := make([]*Converter, 0, len(s.converters)-1)
	cp = append(cp, s.converters[:i]...)
	cp = append(cp, s.converters[i+1:]...)
	return newSetUnchecked(cp)
}

package convert

import (
	"reflect"
	"testing"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/test"
	"github.com/curtisnewbie/chronon/util/errs"
)

type millisReader interface {
	readMillis() int64
}

type zonedMillisReader interface {
	millisReader
	zoneName() string
}

type zonedMillis struct{ ms int64 }

func (z zonedMillis) readMillis() int64 { return z.ms }
func (z zonedMillis) zoneName() string  { return "UTC" }

type markerX interface{ markX() }
type markerY interface{ markY() }

type markedBoth struct{}

func (markedBoth) markX() {}
func (markedBoth) markY() {}

var (
	typMillisReader      = reflect.TypeOf((*millisReader)(nil)).Elem()
	typZonedMillisReader = reflect.TypeOf((*zonedMillisReader)(nil)).Elem()
	typMarkerX           = reflect.TypeOf((*markerX)(nil)).Elem()
	typMarkerY           = reflect.TypeOf((*markerY)(nil)).Elem()
)

func instantConv(typ reflect.Type) *Converter {
	return NewConverter(typ, Funcs{
		InstantMillis: func(v any, c chrono.Chronology) (int64, error) { return 0, nil },
	})
}

func TestSetSelectExact(t *testing.T) {
	sc := instantConv(typString)
	ic := instantConv(typInt64)
	s, err := NewSet(sc, ic)
	test.TestNoErr(t, err)

	c, err := s.Select(typString)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == sc)

	// repeated selection resolves to the identical instance
	c2, err := s.Select(typString)
	test.TestNoErr(t, err)
	test.TestTrue(t, c2 == c)

	c, err = s.Select(typInt64)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == ic)
}

func TestSetSelectNoMatch(t *testing.T) {
	s, err := NewSet(instantConv(typString))
	test.TestNoErr(t, err)

	c, err := s.Select(reflect.TypeOf(3.14))
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nil)

	// the no-match resolution is cached as well
	c, err = s.Select(reflect.TypeOf(3.14))
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nil)
}

func TestSetSelectNilType(t *testing.T) {
	nc := NewConverter(nil, Funcs{
		InstantMillis: func(v any, c chrono.Chronology) (int64, error) { return 0, nil },
	})
	s, err := NewSet(instantConv(typString), nc)
	test.TestNoErr(t, err)

	c, err := s.Select(nil)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nc)

	s2, err := NewSet(instantConv(typString))
	test.TestNoErr(t, err)
	c, err = s2.Select(nil)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nil)
}

func TestSetSelectMostSpecific(t *testing.T) {
	base := instantConv(typMillisReader)
	zoned := instantConv(typZonedMillisReader)
	s, err := NewSet(base, zoned)
	test.TestNoErr(t, err)

	// zonedMillis satisfies both interfaces, the narrower one wins
	c, err := s.Select(reflect.TypeOf(zonedMillis{}))
	test.TestNoErr(t, err)
	test.TestTrue(t, c == zoned)

	// registration order must not matter
	s, err = NewSet(zoned, base)
	test.TestNoErr(t, err)
	c, err = s.Select(reflect.TypeOf(zonedMillis{}))
	test.TestNoErr(t, err)
	test.TestTrue(t, c == zoned)
}

func TestSetSelectAmbiguous(t *testing.T) {
	s, err := NewSet(instantConv(typMarkerX), instantConv(typMarkerY))
	test.TestNoErr(t, err)

	// markedBoth satisfies two unrelated interfaces, neither more specific
	_, err = s.Select(reflect.TypeOf(markedBoth{}))
	t.Logf("ambiguous: %v", err)
	test.TestErrIs(t, err, errs.ErrAmbiguousMatch)
}

func TestSetNewSetRejects(t *testing.T) {
	// nil converter at any position, including after non-nil ones
	_, err := NewSet(instantConv(typString), nil)
	test.TestErrIs(t, err, errs.ErrIllegalArgument)

	_, err = NewSet(nil, instantConv(typString))
	test.TestErrIs(t, err, errs.ErrIllegalArgument)

	_, err = NewSet(instantConv(typString), nil, instantConv(typInt64))
	test.TestErrIs(t, err, errs.ErrIllegalArgument)

	_, err = NewSet(instantConv(typString), instantConv(typString))
	test.TestErrIs(t, err, errs.ErrIllegalArgument)
}

func TestSetAddCopyOnWrite(t *testing.T) {
	sc := instantConv(typString)
	s1, err := NewSet(sc)
	test.TestNoErr(t, err)

	ic := instantConv(typInt64)
	s2, removed, err := s1.Add(ic)
	test.TestNoErr(t, err)
	test.TestTrue(t, removed == nil)
	test.TestTrue(t, s1 != s2)
	test.TestEqual(t, 1, s1.Size())
	test.TestEqual(t, 2, s2.Size())

	// the original still resolves nothing for int64
	c, err := s1.Select(typInt64)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nil)
	c, err = s2.Select(typInt64)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == ic)
}

func TestSetAddSameInstanceNoOp(t *testing.T) {
	sc := instantConv(typString)
	s1, err := NewSet(sc)
	test.TestNoErr(t, err)

	s2, removed, err := s1.Add(sc)
	test.TestNoErr(t, err)
	test.TestTrue(t, s2 == s1)
	test.TestTrue(t, removed == nil)
}

func TestSetAddReplacesSameType(t *testing.T) {
	old := instantConv(typString)
	s1, err := NewSet(old, instantConv(typInt64))
	test.TestNoErr(t, err)

	nw := instantConv(typString)
	s2, removed, err := s1.Add(nw)
	test.TestNoErr(t, err)
	test.TestTrue(t, removed == old)
	test.TestEqual(t, 2, s2.Size())

	c, err := s2.Select(typString)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == nw)
	c, err = s1.Select(typString)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == old)
}

func TestSetRemove(t *testing.T) {
	sc := instantConv(typString)
	ic := instantConv(typInt64)
	s1, err := NewSet(sc, ic)
	test.TestNoErr(t, err)

	s2, removed := s1.Remove(sc)
	test.TestTrue(t, removed == sc)
	test.TestEqual(t, 1, s2.Size())
	test.TestEqual(t, 2, s1.Size())

	// removal by identity, an equal-typed but different instance is not found
	s3, removed := s2.Remove(instantConv(typInt64))
	test.TestTrue(t, s3 == s2)
	test.TestTrue(t, removed == nil)
}

func TestSetRemoveAt(t *testing.T) {
	sc := instantConv(typString)
	ic := instantConv(typInt64)
	s1, err := NewSet(sc, ic)
	test.TestNoErr(t, err)

	s2, removed, err := s1.RemoveAt(0)
	test.TestNoErr(t, err)
	test.TestTrue(t, removed == sc)
	test.TestEqual(t, 1, s2.Size())

	_, _, err = s1.RemoveAt(2)
	test.TestErrIs(t, err, errs.ErrIllegalArgument)
	_, _, err = s1.RemoveAt(-1)
	test.TestErrIs(t, err, errs.ErrIllegalArgument)
}

func TestSetConvertersSnapshot(t *testing.T) {
	sc := instantConv(typString)
	s, err := NewSet(sc)
	test.TestNoErr(t, err)

	cp := s.Converters()
	cp[0] = nil
	c, err := s.Select(typString)
	test.TestNoErr(t, err)
	test.TestTrue(t, c == sc)
}

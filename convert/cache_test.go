package convert

import (
	"reflect"
	"testing"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/test"
)

func TestTypeIdentityHashStable(t *testing.T) {
	h1 := typeIdentityHash(reflect.TypeOf(""))
	h2 := typeIdentityHash(reflect.TypeOf("abc"))
	test.TestEqual(t, h1, h2)
}

func TestCacheTablePutImmutable(t *testing.T) {
	c1 := instantConv(typString)
	c2 := instantConv(typInt64)

	t1 := newCacheTable(cacheInitialCapacity)
	t2 := t1.put(typString, c1)
	t3 := t2.put(typInt64, c2)

	_, ok := t1.lookup(typString)
	test.TestFalse(t, ok)

	v, ok := t2.lookup(typString)
	test.TestTrue(t, ok)
	test.TestTrue(t, v == c1)
	_, ok = t2.lookup(typInt64)
	test.TestFalse(t, ok)

	v, ok = t3.lookup(typInt64)
	test.TestTrue(t, ok)
	test.TestTrue(t, v == c2)
}

func TestCacheTableNoMatchEntry(t *testing.T) {
	t1 := newCacheTable(cacheInitialCapacity).put(typString, nil)

	// cached nil match is distinct from not cached
	v, ok := t1.lookup(typString)
	test.TestTrue(t, ok)
	test.TestTrue(t, v == nil)
	_, ok = t1.lookup(typInt64)
	test.TestFalse(t, ok)
}

func TestCacheResize(t *testing.T) {
	catchAll := NewConverter(reflect.TypeOf((*any)(nil)).Elem(), Funcs{
		InstantMillis: func(v any, c chrono.Chronology) (int64, error) { return 0, nil },
	})
	s, err := NewSet(catchAll)
	test.TestNoErr(t, err)

	// distinct array types, enough of them to force the cache to double
	n := cacheInitialCapacity * 3
	types := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		types[i] = reflect.ArrayOf(i+1, typInt64)
	}
	for _, typ := range types {
		c, err := s.Select(typ)
		test.TestNoErr(t, err)
		test.TestTrue(t, c == catchAll)
	}

	tab := s.cache.Load()
	test.TestTrue(t, len(tab.entries) > cacheInitialCapacity)
	test.TestEqual(t, n, tab.used)

	// every resolution survives the resizes
	for _, typ := range types {
		v, ok := tab.lookup(typ)
		test.TestTrue(t, ok)
		test.TestTrue(t, v == catchAll)
	}
}

package convert

import (
	"reflect"
)

const cacheInitialCapacity = 16

// Resolved type-to-converter mapping, conv is nil when the type resolved to
// no match, which is distinct from the type not being cached at all.
type cacheEntry struct {
	typ  reflect.Type
	conv *Converter
}

// Open-addressed hash table keyed by reflect.Type identity, power-of-two
// sized, linear probing with wraparound.
//
// A table is never mutated after publication, writers clone, mutate the
// clone and publish it by replacing the owning Set's table reference, so
// concurrent readers always see a fully consistent snapshot.
type cacheTable struct {
	entries []cacheEntry
	used    int
}

func newCacheTable(capacity int) *cacheTable {
	return &cacheTable{entries: make([]cacheEntry, capacity)}
}

// reflect.Type values are canonical pointers to runtime type descriptors,
// the descriptor address serves as the identity hash. Shifted to drop the
// alignment zeroes.
func typeIdentityHash(t reflect.Type) uintptr {
	return reflect.ValueOf(t).Pointer() >> 3
}

func (t *cacheTable) lookup(typ reflect.Type) (*Converter, bool) {
	mask := uintptr(len(t.entries) - 1)
	i := typeIdentityHash(typ) & mask
	for n := 0; n < len(t.entries); n++ {
		e := t.entries[i]
		if e.typ == nil {
			return nil, false
		}
		if e.typ == typ {
			return e.conv, true
		}
		i = (i + 1) & mask
	}
	return nil, false
}

// Produce a new table with the entry added, the receiver is left untouched.
//
// The table doubles once half full, so a probe always terminates at an empty
// slot.
func (t *cacheTable) put(typ reflect.Type, conv *Converter) *cacheTable {
	var nt *cacheTable
	if (t.used+1)*2 > len(t.entries) {
		nt = newCacheTable(len(t.entries) * 2)
		for _, e := range t.entries {
			if e.typ != nil {
				nt.insert(e.typ, e.conv)
			}
		}
	} else {
		nt = &cacheTable{entries: make([]cacheEntry, len(t.entries)), used: t.used}
		copy(nt.entries, t.entries)
	}
	nt.insert(typ, conv)
	return nt
}

func (t *cacheTable) insert(typ reflect.Type, conv *Converter) {
	mask := uintptr(len(t.entries) - 1)
	i := typeIdentityHash(typ) & mask
	for {
		e := &t.entries[i]
		if e.typ == nil {
			e.typ, e.conv = typ, conv
			t.used++
			return
		}
		if e.typ == typ {
			e.conv = conv
			return
		}
		i = (i + 1) & mask
	}
}

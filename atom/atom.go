// Package atom assigns small integer codes to the HTML tag and attribute
// names html5kit needs to recognize, so the tree constructor can compare
// a handful of bytes' worth of int instead of doing string comparisons on
// every dispatch.
package atom

import "math/bits"

// Atom is a 32-bit code for a string. The zero Atom means "not a known
// name" — any other value packs (offset<<8 | length) into the atomText
// string below, exactly as golang.org/x/net/html/atom does it.
type Atom uint32

// String returns the string that a maps to, or "" for the zero Atom.
func (a Atom) String() string {
	if a == 0 {
		return ""
	}
	start := uint32(a >> 8)
	n := uint32(a & 0xff)
	if start+n > uint32(len(atomText)) {
		return ""
	}
	return atomText[start : start+n]
}

// Lookup returns the Atom for name, or 0 if name is not a known tag or
// attribute name. Lookup is case-sensitive: callers are expected to fold
// case before calling, the same way the tokenizer already lowercases tag
// and attribute names during tag reading.
func Lookup(name []byte) Atom {
	if len(name) == 0 || len(name) > maxAtomLen {
		return 0
	}
	h := fnv1a(name)
	if a := probe(h&tableMask, name); a != 0 {
		return a
	}
	if a := probe((h>>16)&tableMask, name); a != 0 {
		return a
	}
	return 0
}

// LookupString is a convenience wrapper around Lookup for string input.
func LookupString(name string) Atom {
	return Lookup([]byte(name))
}

// probe walks the open-addressed table starting at slot, using linear
// probing, until it finds a match, an empty slot (miss), or wraps the
// whole table (miss). Two independent starting points (the low and high
// halves of one FNV-1a hash) keep the expected probe length short without
// needing two separate hash functions.
func probe(slot uint32, name []byte) Atom {
	for i := uint32(0); i < tableSize; i++ {
		s := (slot + i) & tableMask
		a := table[s]
		if a == 0 {
			return 0
		}
		if a.matches(name) {
			return a
		}
	}
	return 0
}

func (a Atom) matches(name []byte) bool {
	start := uint32(a >> 8)
	n := uint32(a & 0xff)
	if int(n) != len(name) {
		return false
	}
	for i := uint32(0); i < n; i++ {
		if atomText[start+i] != name[i] {
			return false
		}
	}
	return true
}

// fnv1a hashes name the same way for every lookup and every table build,
// so the two candidate slots a name hashes to never change underfoot.
func fnv1a(name []byte) uint32 {
	var h uint32 = 2166136261
	for _, c := range name {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

// maxAtomLen bounds the length field packed into the low byte of an Atom.
const maxAtomLen = 1<<8 - 1

var (
	tableSize uint32
	tableMask uint32
	table     []Atom
)

func init() {
	buildTable()
}

// buildTable lays every name from the atom list end to end into atomText
// at package-init time and fills the open-addressed table below. Tests
// (TestNoCollisionsAdversarial) confirm that names sharing a slot still
// resolve to their own entries.
func buildTable() {
	n := len(atomList)
	size := nextPow2(uint32(n) * 4)
	tableSize = size
	tableMask = size - 1
	table = make([]Atom, size)

	offset := 0
	for _, name := range atomList {
		if len(name) > maxAtomLen {
			panic("atom: name too long: " + name)
		}
		code := Atom(uint32(offset)<<8 | uint32(len(name)))
		offset += len(name)
		insert(code, name)
	}
}

func insert(a Atom, name string) {
	h := fnv1a([]byte(name))
	for _, start := range [2]uint32{h & tableMask, (h >> 16) & tableMask} {
		for i := uint32(0); i < tableSize; i++ {
			s := (start + i) & tableMask
			if table[s] == 0 {
				table[s] = a
				return
			}
		}
	}
	panic("atom: table full, cannot insert " + name)
}

func nextPow2(n uint32) uint32 {
	if n < 8 {
		return 8
	}
	return 1 << bits.Len32(n-1)
}

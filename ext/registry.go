// Package ext implements the extension registry: the mutable set of
// (extension, major, minor) entries a decoding session is configured
// with, and the closure rules that pull in their transitive
// dependencies.
package ext

import "github.com/smolarch/smol-disasm/tables"

// Entry is one row of the registry: at most one entry exists per
// (Ext, Major) pair.
type Entry struct {
	Ext   tables.Ext
	Major int
	Minor int
}

// Registry is the set of enabled (extension, major, minor) entries for
// a decoding session. It is built once before decoding starts and never
// mutated afterward.
type Registry struct {
	entries []Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add ensures (ext, major, minor') is present with minor' >= minor. If an
// entry for (ext, major) already exists at a lower minor, it is raised
// in place and dependencies are (re)applied for each newly-reached minor
// level. If no entry exists yet, one is inserted and dependencies are
// applied for every level from 0 up to minor.
//
// This fixes the source's noted ambiguity (a fresh insert's dependency
// loop passed the target minor on every iteration instead of the loop
// variable): each intermediate level's dependencies are applied exactly
// once, on both the fresh-insert and the upgrade path.
func (r *Registry) Add(ext tables.Ext, major, minor int) {
	for i := range r.entries {
		e := &r.entries[i]
		if e.Ext != ext || e.Major != major {
			continue
		}
		if e.Minor < minor {
			old := e.Minor
			e.Minor = minor
			for k := old + 1; k <= minor; k++ {
				r.addDeps(ext, major, k)
			}
		}
		return
	}

	r.entries = append(r.entries, Entry{Ext: ext, Major: major, Minor: minor})
	for k := 0; k <= minor; k++ {
		r.addDeps(ext, major, k)
	}
}

// addDeps applies the dependencies declared for the exact (ext, major,
// minor) level, recursing through Add. Recursion terminates because the
// set of (ext, major) pairs is finite and entries only grow.
func (r *Registry) addDeps(ext tables.Ext, major, minor int) {
	row, ok := tables.FindExtRow(ext, major, minor)
	if !ok {
		return
	}
	for _, dep := range row.Deps {
		r.Add(dep.Ext, dep.Major, dep.Minor)
	}
}

// Has reports whether some entry (ext, major, m) exists with m >= minor.
func (r *Registry) Has(ext tables.Ext, major, minor int) bool {
	for _, e := range r.entries {
		if e.Ext != ext || e.Major != major {
			continue
		}
		return e.Minor >= minor
	}
	return false
}

// HasFunc adapts Has to tables.HasFunc, the signature instruction guards
// are evaluated against.
func (r *Registry) HasFunc() tables.HasFunc {
	return func(ext tables.Ext, major, minor int) bool {
		return r.Has(ext, major, minor)
	}
}

// Enumerate returns the registry's entries in insertion order, for
// verbose display.
func (r *Registry) Enumerate() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports how many (ext, major) entries are registered.
func (r *Registry) Len() int {
	return len(r.entries)
}

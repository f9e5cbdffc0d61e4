package tables

// Ext identifies an architectural extension.
type Ext uint8

const (
	ExtSMOL64 Ext = iota
	ExtMUL
	ExtCompressed
	ExtAtomic
	ExtFloat

	extCount
)

// ExtName mirrors smol_ext_name: the name used on the command line and in
// verbose output.
var ExtName = [extCount]string{
	ExtSMOL64:     "SMOL64",
	ExtMUL:        "MUL",
	ExtCompressed: "COMPRESSED",
	ExtAtomic:     "ATOMIC",
	ExtFloat:      "FLOAT",
}

// ExtByName finds an extension by its command-line name.
func ExtByName(name string) (Ext, bool) {
	for i, n := range ExtName {
		if n == name {
			return Ext(i), true
		}
	}
	return 0, false
}

// ExtDep is one dependency: the dependent extension must transitively pull
// in at least this (ext, major, minor).
type ExtDep struct {
	Ext   Ext
	Major int
	Minor int
}

// ExtRow describes one exact (ext, major, minor) level: the dependencies
// that must be applied when the registry reaches exactly that level. A
// row must exist for every minor level from 0 up to the extension's
// highest defined minor, even when it adds no new dependency, so that
// Registry.Add's closure walk (0..minor, or the newly-opened range on an
// upgrade) always finds a row to apply.
type ExtRow struct {
	Ext   Ext
	Major int
	Minor int
	Deps  []ExtDep
}

// ExtTable is the universe of (extension, major, minor) rows and their
// dependencies. See SPEC_FULL.md for the extension dependency diagram
// this encodes.
var ExtTable = []ExtRow{
	{Ext: ExtSMOL64, Major: 0, Minor: 0},
	{Ext: ExtSMOL64, Major: 0, Minor: 1},
	{Ext: ExtSMOL64, Major: 0, Minor: 2},

	{Ext: ExtMUL, Major: 1, Minor: 0, Deps: []ExtDep{
		{Ext: ExtSMOL64, Major: 0, Minor: 0},
	}},

	{Ext: ExtCompressed, Major: 1, Minor: 0, Deps: []ExtDep{
		{Ext: ExtSMOL64, Major: 0, Minor: 0},
	}},

	{Ext: ExtAtomic, Major: 1, Minor: 0, Deps: []ExtDep{
		{Ext: ExtSMOL64, Major: 0, Minor: 1},
		{Ext: ExtMUL, Major: 1, Minor: 0},
	}},

	{Ext: ExtFloat, Major: 1, Minor: 0, Deps: []ExtDep{
		{Ext: ExtSMOL64, Major: 0, Minor: 1},
	}},
	{Ext: ExtFloat, Major: 1, Minor: 1, Deps: []ExtDep{
		{Ext: ExtMUL, Major: 1, Minor: 0},
	}},
}

// FindExtRow looks up the row for an exact (ext, major, minor) level.
func FindExtRow(ext Ext, major, minor int) (ExtRow, bool) {
	for _, row := range ExtTable {
		if row.Ext == ext && row.Major == major && row.Minor == minor {
			return row, true
		}
	}
	return ExtRow{}, false
}

// MaxMinor reports the highest minor defined for (ext, major), and
// whether the pair exists at all. The CLI rejects "-e NAME-MAJOR.MINOR"
// specs above this before Registry.Add is ever called.
func MaxMinor(ext Ext, major int) (int, bool) {
	found := false
	max := 0
	for _, row := range ExtTable {
		if row.Ext == ext && row.Major == major {
			found = true
			if row.Minor > max {
				max = row.Minor
			}
		}
	}
	return max, found
}

package ext

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/smolarch/smol-disasm/tables"
)

// ParseSpec parses a "-e" argument of the form NAME[-MAJOR[.MINOR]],
// defaulting to version 1.0, and returns the extension and version it
// names. It does not touch the registry: the caller decides what to do
// with an invalid spec (the CLI treats it as fatal).
//
// The version part is parsed with semver.NewVersion, which accepts the
// partial "MAJOR" and "MAJOR.MINOR" forms directly (filling the missing
// parts with zero) instead of this package splitting and converting each
// part by hand; the requested version is then checked against the
// extension's highest defined minor by comparing full semver.Versions,
// not bare ints.
func ParseSpec(spec string) (tables.Ext, int, int, error) {
	name := spec
	versionPart := "1.0"

	if i := strings.IndexByte(spec, '-'); i >= 0 {
		name = spec[:i]
		versionPart = spec[i+1:]
	}

	v, err := semver.NewVersion(versionPart)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid version in %q: %w", spec, err)
	}

	e, ok := tables.ExtByName(name)
	if !ok {
		return 0, 0, 0, fmt.Errorf("extension %q not found", spec)
	}

	major := int(v.Major())
	minor := int(v.Minor())

	maxMinor, ok := tables.MaxMinor(e, major)
	if !ok {
		return 0, 0, 0, fmt.Errorf("extension %q not found", spec)
	}

	max, err := semver.NewVersion(fmt.Sprintf("%d.%d.0", major, maxMinor))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("extension %q not found", spec)
	}
	if v.Compare(max) > 0 {
		return 0, 0, 0, fmt.Errorf("extension %q not found", spec)
	}

	return e, major, minor, nil
}

// AddSpec parses spec and adds it to the registry, or returns the same
// error ParseSpec would.
func (r *Registry) AddSpec(spec string) error {
	e, major, minor, err := ParseSpec(spec)
	if err != nil {
		return err
	}
	r.Add(e, major, minor)
	return nil
}

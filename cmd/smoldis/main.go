// Package main provides the entry point for smoldis, a disassembler for
// the SMOL instruction set.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/smolarch/smol-disasm/disasm"
	"github.com/smolarch/smol-disasm/ext"
	"github.com/smolarch/smol-disasm/listing"
	"github.com/smolarch/smol-disasm/loader"
	"github.com/smolarch/smol-disasm/tables"
)

// extSpecs collects repeated "-e" flags in the order given.
type extSpecs []string

func (e *extSpecs) String() string { return strings.Join(*e, ",") }
func (e *extSpecs) Set(spec string) error {
	*e = append(*e, spec)
	return nil
}

var (
	verbose    = flag.Bool("v", false, "print the active extension set before decoding")
	unicode    = flag.Bool("u", false, "use Unicode bundle markers")
	stopMarker = flag.String("s", "", "use this string as the stop-bit marker for SHORT and TAIL positions")
	profile    = flag.String("c", "", "load an extension profile from this JSON file")
	exts       extSpecs
)

func main() {
	flag.Var(&exts, "e", "enable an extension, as NAME[-MAJOR[.MINOR]] (repeatable)")
	flag.Parse()

	registry := ext.New()

	if *profile != "" {
		p, err := ext.LoadProfile(*profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "smoldis: %v\n", err)
			os.Exit(1)
		}
		if err := p.Apply(registry); err != nil {
			fmt.Fprintf(os.Stderr, "smoldis: %v\n", err)
			os.Exit(1)
		}
	}

	if len(exts) == 0 && registry.Len() == 0 {
		registry.Add(tables.ExtSMOL64, 0, 0)
	}
	for _, spec := range exts {
		if err := registry.AddSpec(spec); err != nil {
			fmt.Fprintf(os.Stderr, "smoldis: %v\n", err)
			os.Exit(1)
		}
	}

	if *verbose {
		fmt.Println("active extensions:")
		for _, e := range registry.Enumerate() {
			fmt.Printf("  %s-%d.%d\n", tables.ExtName[e.Ext], e.Major, e.Minor)
		}
	}

	markers := listing.DefaultMarkers
	switch {
	case *stopMarker != "":
		markers = listing.CustomMarkers(*stopMarker)
	case *unicode:
		markers = listing.UnicodeMarkers
	}

	session := disasm.NewSession(registry, markers)

	if flag.NArg() == 0 {
		session.Decode(loader.NewBuffer(disasm.BuiltinTestBuffer), os.Stdout)
		return
	}

	for _, path := range flag.Args() {
		buf, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "smoldis: %v\n", err)
			continue
		}

		fmt.Printf("%s:\n", path)
		session.Decode(buf, os.Stdout)
	}
}

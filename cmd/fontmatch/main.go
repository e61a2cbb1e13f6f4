// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command fontmatch resolves a font expression against the bundled Go fonts.
//
// Usage:
//
//	fontmatch [-styles table.yaml] [-font file.ttf] [-mono family] [-v] <expression>
//
// Example:
//
//	fontmatch Go bold italic 20
//	fontmatch -styles styles.yaml headline 150%
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/fontmatch"
	"github.com/gogpu/fontmatch/catalog"
	"github.com/gogpu/fontmatch/textstyle"
)

// fontFiles collects repeated -font flags.
type fontFiles []string

func (f *fontFiles) String() string     { return strings.Join(*f, ",") }
func (f *fontFiles) Set(v string) error { *f = append(*f, v); return nil }

func main() {
	var (
		styles  = flag.String("styles", "", "YAML text style table (default: platform table)")
		mono    = flag.String("mono", catalog.GoMonoFamily, "monospaced fallback family")
		verbose = flag.Bool("v", false, "enable debug logging")
		files   fontFiles
	)
	flag.Var(&files, "font", "additional font file to register (repeatable)")
	flag.Parse()

	if *verbose {
		fontmatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cat := catalog.New()
	for _, path := range files {
		if _, err := cat.AddFile(path); err != nil {
			log.Fatalf("Failed to register font: %v", err)
		}
	}

	cfg := fontmatch.DefaultConfig()
	cfg.MonospaceFamily = *mono

	table := textstyle.Default(cat, textstyle.WithConfig(cfg))
	if *styles != "" {
		var err error
		if table, err = textstyle.LoadFile(*styles, cat, textstyle.WithConfig(cfg)); err != nil {
			log.Fatalf("Failed to load styles: %v", err)
		}
	}

	r := fontmatch.NewResolver(cat, table, fontmatch.WithMonospaceFamily(cfg.MonospaceFamily))
	f, err := r.Parse(strings.Join(flag.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d := f.Descriptor()
	fmt.Printf("name:   %s\n", d.Name)
	fmt.Printf("family: %s\n", d.Family)
	fmt.Printf("size:   %g\n", d.Size)
	fmt.Printf("weight: %v\n", d.Weight)
	fmt.Printf("traits: %v\n", d.Traits)
}

// tokendump is a diagnostic demo, not a contract (§6): it tokenizes
// stdin (or a file named on the command line) and prints every
// primary and partial token it finds, grounded on the original
// project's bin/count_tokens.rs token printer. It also exposes the
// keyspace -export/-import operations as a convenience around
// Index.Dump/Index.Load.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kindex/ftsindex"
	"github.com/kindex/ftsindex/internal/diag"
	"github.com/kindex/ftsindex/token"
)

func main() {
	args := os.Args[1:]

	var keyspace string
	var exportPath string
	var importPath string
	var inputPath string

	for len(args) > 0 {
		switch args[0] {
		case "-keyspace":
			keyspace, args = stringArg(args)
		case "-export":
			exportPath, args = stringArg(args)
		case "-import":
			importPath, args = stringArg(args)
		default:
			inputPath = args[0]
			args = args[1:]
		}
	}

	if exportPath != "" {
		runExport(keyspace, exportPath)
		return
	}
	if importPath != "" {
		runImport(keyspace, importPath)
		return
	}

	runTokenize(inputPath)
}

func stringArg(args []string) (string, []string) {
	if len(args) < 2 {
		diag.Errorf(os.Stderr, "missing value for %s", args[0])
		os.Exit(1)
	}
	return args[1], args[2:]
}

func runTokenize(path string) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			diag.Errorf(os.Stderr, "opening %s: %v", path, err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	content, err := io.ReadAll(r)
	if err != nil {
		diag.Errorf(os.Stderr, "reading input: %v", err)
		os.Exit(1)
	}

	primaries, partials := 0, 0
	for t := range token.Tokenize(string(content)) {
		kind := "primary"
		if t.Partial {
			kind = "partial"
			partials++
		} else {
			primaries++
		}
		fmt.Printf("%s\t%s\t%d:%d@%d\n", diag.Highlight(t.Text), kind, t.Line, t.Column, t.Offset)
	}

	diag.Count(os.Stdout, primaries, "primary token")
	diag.Count(os.Stdout, partials, "partial token")
}

func runExport(keyspace, exportPath string) {
	requireKeyspace(keyspace)
	idx, err := ftsindex.Open(keyspace)
	if err != nil {
		diag.Errorf(os.Stderr, "opening keyspace: %v", err)
		os.Exit(1)
	}
	defer idx.Close()

	f, err := os.Create(exportPath)
	if err != nil {
		diag.Errorf(os.Stderr, "creating %s: %v", exportPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := idx.Dump(f); err != nil {
		diag.Errorf(os.Stderr, "dumping keyspace: %v", err)
		os.Exit(1)
	}
}

func runImport(keyspace, importPath string) {
	requireKeyspace(keyspace)
	idx, err := ftsindex.Open(keyspace)
	if err != nil {
		diag.Errorf(os.Stderr, "opening keyspace: %v", err)
		os.Exit(1)
	}
	defer idx.Close()

	f, err := os.Open(importPath)
	if err != nil {
		diag.Errorf(os.Stderr, "opening %s: %v", importPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := idx.Load(f); err != nil {
		diag.Errorf(os.Stderr, "loading keyspace: %v", err)
		os.Exit(1)
	}
}

func requireKeyspace(keyspace string) {
	if keyspace == "" {
		diag.Errorf(os.Stderr, "-keyspace is required with -export/-import")
		os.Exit(1)
	}
}

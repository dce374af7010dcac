/*
Package rupavali generates Sanskrit word forms: conjugation tables and
derived nominals for the roots of the dhatupatha, with the step-by-step
derivation (prakriya) behind every form.

It is the orchestration layer of a word-form explorer. The grammar work
itself lives behind a small engine port; rupavali owns everything around
it: the root catalog, paradigm assembly, session state, sharable state
encoding, and script conversion.

# Concept

A derivation engine turns a request (root, tense-mood, person, number,
voice; or root and krt affix) into surface forms. rupavali asks the
engine cell by cell, assembles the answers into paradigm tables and affix
groups, and keeps per-user selection state in a Store that surfaces can
observe. Engines are pluggable: the built-in table-backed engine works
offline, and adapters exist for a vidyut derivation service (HTTP) and a
local derivation command (subprocess).

# Key Features

  - Hexagonal layout: the engine, transliterator, and surfaces are
    adapters around a small core.
  - Deterministic assembly: tables enumerate in fixed grammatical order,
    duplicate forms collapse first-wins, incomplete paradigms are
    dropped whole.
  - Sharable sessions: the full selection state round-trips through a
    URL query string.
  - Four scripts: SLP1, Harvard-Kyoto, IAST, and Devanagari.

# Usage

Construct one App at startup and create sessions or call the stateless
helpers directly:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/vyakarana-tools/rupavali"
		"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
	)

	func main() {
		ctx := context.Background()
		app, err := rupavali.New(ctx)
		if err != nil {
			log.Fatal(err)
		}

		tables, err := app.TinantaTables(ctx, "01.0001", vyakarana.Options{})
		if err != nil {
			log.Fatal(err)
		}
		for _, table := range tables {
			fmt.Println(table.Lakara)
		}
	}

Surfaces live under pkg/adapters (HTTP, MCP) and cmd/rupavali (CLI and
terminal UI).
*/
package rupavali

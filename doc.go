// Package tilewave (module github.com/tilewave/wfc) is a Wave Function
// Collapse constraint-solving engine for 1-D and 2-D tile lattices.
//
// 🚀 What is this?
//
//	A deterministic, seeded-RNG constraint solver that brings together:
//
//	  • Tiles: per-cell superpositions with weighted Shannon entropy
//	  • Grids: dense 1-D/2-D lattices, an entropy priority queue, and an
//	    append-only update log for time-travel rendering
//	  • RuleSets: allowed-adjacency tables, closed under mirroring, with
//	    a stable JSON schema and a handful of sample fixtures
//	  • An observe/propagate/backtrack engine, plus two interchangeable
//	    contradiction-recovery strategies
//	  • An overlapping-bitmap pattern miner that derives a RuleSet from a
//	    sample image instead of hand-authoring one
//
// ✨ Why this shape?
//
//   - Deterministic    — every random draw comes from one seeded
//     *rand.Rand per grid; never global rand
//   - Inspectable      — the engine's state machine and the grid's
//     update log are both first-class, queryable values, not just logs
//   - Extensible       — contradiction recovery is an interface; add a
//     new Backtracker without touching the engine
//   - Pure Go          — no cgo; every third-party dependency is a
//     well-known, single-purpose library
//
// Everything is organized under top-level packages:
//
//	space/      — Location/Direction/Delta for 1-D and 2-D lattices
//	tile/       — per-cell superposition and weighted entropy
//	ruleset/    — allowed-adjacency tables, JSON schema, sample fixtures
//	grid/       — dense tile containers, entropy heap, update log
//	wfc/        — the observe/propagate/tick/run engine
//	backtrack/  — FullReset and GradualRadial contradiction recovery
//	extract/    — overlapping-bitmap pattern miner
//	render/     — SVG cell renderer with Oklab colour averaging
//	wsview/     — live websocket view of an in-progress grid
//	cmd/wfcgen/ — CLI: sample bitmap → ruleset JSON
//	cmd/wfcrun/ — CLI: ruleset JSON → collapsed grid → JSON/SVG
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for
// the full requirements this module implements.
package tilewave

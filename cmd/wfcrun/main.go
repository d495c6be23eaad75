// Command wfcrun collapses a Grid2D against a ruleset and writes the
// result as JSON (per-cell superpositions) or SVG.
//
// Usage:
//
//	wfcrun [options] <ruleset.json>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tilewave/wfc/backtrack"
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/render"
	"github.com/tilewave/wfc/ruleset"
	"github.com/tilewave/wfc/tile"
	"github.com/tilewave/wfc/wfc"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wfcrun: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wfcrun", flag.ContinueOnError)
	width := fs.Int("width", 20, "grid width in cells")
	height := fs.Int("height", 20, "grid height in cells")
	seed := fs.Int64("seed", 0, "PRNG seed")
	maxIterations := fs.Int("max-iterations", 10000, "iteration budget, ticks plus recoveries")
	backtracker := fs.String("backtracker", "full", "contradiction recovery: none, full, gradual")
	gradualBaseRadius := fs.Int("gradual-base-radius", 1, "base radius for -backtracker=gradual")
	outFormat := fs.String("format", "json", "output format: json or svg")
	output := fs.String("o", "", `output path ("-" for stdout, default: <ruleset>.out.<format>)`)
	svgWidth := fs.Int("svg-width", 0, "SVG pixel width (default: width*10)")
	svgHeight := fs.Int("svg-height", 0, "SVG pixel height (default: height*10)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing ruleset JSON path\nUsage: wfcrun [options] <ruleset.json>")
	}
	rulesetPath := fs.Arg(0)

	data, err := os.ReadFile(rulesetPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rulesetPath, err)
	}
	rules, err := ruleset.UnmarshalJSON2D(data)
	if err != nil {
		return fmt.Errorf("decoding ruleset: %w", err)
	}

	g, err := grid.New2D(*width, *height, rules, *seed)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	bt, err := parseBacktracker(*backtracker, *gradualBaseRadius)
	if err != nil {
		return err
	}

	engine := wfc.NewEngine2D(g)
	runErr := engine.Run(*maxIterations, bt)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "wfcrun: run did not finish cleanly: %v\n", runErr)
	}

	var doc []byte
	switch *outFormat {
	case "json":
		doc, err = gridJSON(g)
	case "svg":
		w := *svgWidth
		if w == 0 {
			w = *width * 10
		}
		h := *svgHeight
		if h == 0 {
			h = *height * 10
		}
		doc = []byte(render.Render(g, w, h, nil))
	default:
		return fmt.Errorf("unknown -format %q (use json or svg)", *outFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	return writeOutput(*output, rulesetPath, *outFormat, doc)
}

func parseBacktracker(name string, gradualBaseRadius int) (backtrack.Backtracker2D, error) {
	switch name {
	case "none":
		return nil, nil
	case "full":
		return backtrack.FullReset2D{}, nil
	case "gradual":
		return backtrack.NewGradualRadial2D(gradualBaseRadius), nil
	default:
		return nil, fmt.Errorf("unknown -backtracker %q (use none, full, or gradual)", name)
	}
}

// cellDocument is the JSON rendering of one grid cell's superposition.
type cellDocument struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	States    []int64 `json:"states"`
	Collapsed bool    `json:"collapsed"`
}

func gridJSON(g *grid.Grid2D) ([]byte, error) {
	positions := g.Positions()
	cells := make([]cellDocument, 0, len(positions))
	for _, pos := range positions {
		tl, ok := g.GetTile(pos)
		if !ok {
			continue
		}
		cells = append(cells, cellDocument{
			X:         pos.X,
			Y:         pos.Y,
			States:    statesAsInt64(tl.PossibleStates()),
			Collapsed: tl.HasCollapsed(),
		})
	}
	return json.MarshalIndent(struct {
		Width  int            `json:"width"`
		Height int            `json:"height"`
		Cells  []cellDocument `json:"cells"`
	}{Width: g.Width(), Height: g.Height(), Cells: cells}, "", "  ")
}

func statesAsInt64(states []tile.TileState) []int64 {
	ids := make([]int64, len(states))
	for i, s := range states {
		ids[i] = int64(s)
	}
	return ids
}

func writeOutput(output, rulesetPath, format string, doc []byte) error {
	if output == "-" {
		_, err := os.Stdout.Write(doc)
		return err
	}
	if output == "" {
		output = rulesetPath + ".out." + format
	}
	if err := os.WriteFile(output, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", output, len(doc))
	return nil
}

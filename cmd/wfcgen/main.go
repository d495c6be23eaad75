// Command wfcgen mines a RuleSet2D from a sample bitmap via overlapping
// pattern extraction and writes it out as JSON.
//
// Usage:
//
//	wfcgen [options] <sample.png|.jpg|.webp>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"

	"github.com/tilewave/wfc/extract"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wfcgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wfcgen", flag.ContinueOnError)
	n := fs.Int("n", 3, "side length of the square sampling window")
	symmetry := fs.Int("symmetry", 8, "number of dihedral-group variants to register per window (1-8)")
	periodic := fs.Bool("periodic", false, "treat the sample bitmap as wrapping at its edges")
	format := fs.String("format", "", "input format: png, jpeg, jpg, webp (auto-detect from extension if omitted)")
	output := fs.String("o", "", `output path for the ruleset JSON ("-" for stdout, default: <input>.ruleset.json)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing sample bitmap\nUsage: wfcgen [options] <sample.png|.jpg|.webp>")
	}
	inputPath := fs.Arg(0)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	img, err := decodeImage(data, detectFormat(*format, inputPath))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	ext, err := extract.New(img, extract.Options{
		N:             *n,
		Symmetry:      *symmetry,
		PeriodicInput: *periodic,
	})
	if err != nil {
		return fmt.Errorf("extracting patterns: %w", err)
	}

	doc, err := ext.Rules().MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding ruleset: %w", err)
	}

	return writeOutput(*output, inputPath, doc)
}

// decodeImage decodes data per format, mirroring the teacher's
// format-switch pattern for handling a handful of bitmap codecs behind
// one entry point.
func decodeImage(data []byte, format string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch format {
	case "png":
		return png.Decode(r)
	case "jpeg", "jpg":
		return jpeg.Decode(r)
	case "webp":
		return webp.Decode(r)
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	}
}

func detectFormat(formatFlag, inputPath string) string {
	if formatFlag != "" {
		return strings.ToLower(formatFlag)
	}
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".webp":
		return "webp"
	default:
		return ""
	}
}

func writeOutput(output, inputPath string, doc []byte) error {
	if output == "-" {
		_, err := io.Copy(os.Stdout, bytes.NewReader(doc))
		return err
	}
	if output == "" {
		output = inputPath + ".ruleset.json"
	}
	if err := os.WriteFile(output, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", output, len(doc))
	return nil
}

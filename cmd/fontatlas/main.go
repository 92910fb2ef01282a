// Command fontatlas renders a font into a fixed-grid glyph atlas image
// and a C header describing the layout.
//
// Usage:
//
//	fontatlas [flags] [fontPath] [outputPath] [cellWidth] [cellHeight] [fontSize] [padding]
//
// Without fontPath the bundled Go Mono font is used. outputPath defaults
// to font_atlas.png next to the executable; the header is written beside
// it as <name>_metadata.h.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/preview"
	"github.com/gogpu/fontatlas/text"
)

// autoManifest as the -manifest value writes <name>_manifest.json beside the image.
const autoManifest = "auto"

const usageLine = "Usage: %s [font_path] [output_path] [cell_width] [cell_height] [font_size] [padding]\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fontatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		first       = fs.Int("first", fontatlas.DefaultFirstChar, "first codepoint of the leading range")
		last        = fs.Int("last", fontatlas.DefaultLastChar, "last codepoint of the leading range")
		box         = fs.Bool("box", true, "append box drawing characters U+2500-U+257F")
		rasterizer  = fs.String("rasterizer", text.DefaultRasterizer, "glyph rasterizer ("+strings.Join(text.Rasterizers(), ", ")+")")
		manifest    = fs.String("manifest", "", "also write a JSON manifest to this path (\"auto\": next to the image)")
		previewText = fs.String("preview", "", "print this text through the atlas as ASCII art")
		verbose     = fs.Bool("v", false, "log every glyph placement")
		quiet       = fs.Bool("q", false, "log warnings only")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, usageLine, fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := slog.LevelInfo
	switch {
	case *verbose:
		level = slog.LevelDebug
	case *quiet:
		level = slog.LevelWarn
	}
	fontatlas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	inv, err := parsePositional(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return 1
	}

	if inv.fontPath != "" {
		if _, err := os.Stat(inv.fontPath); errors.Is(err, iofs.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: Font file not found: %s\n", inv.fontPath)
			fmt.Fprintf(stderr, usageLine, fs.Name())
			return 1
		} else if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	cfg := fontatlas.DefaultConfig()
	cfg.CellWidth = inv.cellWidth
	cfg.CellHeight = inv.cellHeight
	cfg.FontSize = float64(inv.fontSize)
	cfg.Padding = inv.padding
	cfg.FirstChar = rune(*first)
	cfg.LastChar = rune(*last)
	cfg.IncludeBoxDrawing = *box
	cfg.Rasterizer = *rasterizer

	var opts []fontatlas.Option
	switch *manifest {
	case "":
	case autoManifest:
		opts = append(opts, fontatlas.WithManifest(fontatlas.ManifestPath(inv.outputPath)))
	default:
		opts = append(opts, fontatlas.WithManifest(*manifest))
	}

	res, err := fontatlas.Generate(inv.fontPath, inv.outputPath, cfg, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, fontatlas.ErrFontNotFound) {
			fmt.Fprintf(stderr, usageLine, fs.Name())
		}
		return 1
	}

	for _, g := range res.Skipped() {
		fmt.Fprintf(stderr, "Warning: Could not render character %d (%q): %v\n", g.Codepoint, g.Codepoint, g.Err)
	}

	if *previewText != "" {
		width := preview.DefaultWidth
		if f, ok := stdout.(*os.File); ok {
			width = preview.TerminalWidth(f)
		}
		if err := preview.Write(stdout, res.Atlas, *previewText, width); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// invocation holds the positional arguments after defaults are applied.
type invocation struct {
	fontPath   string
	outputPath string
	cellWidth  int
	cellHeight int
	fontSize   int
	padding    int
}

// parsePositional applies the positional argument defaults: cell height
// follows cell width, font size follows cell height.
func parsePositional(args []string) (invocation, error) {
	if len(args) > 6 {
		return invocation{}, fmt.Errorf("too many arguments: %d", len(args))
	}
	inv := invocation{
		outputPath: defaultOutputPath(),
		cellWidth:  fontatlas.DefaultCellSize,
		padding:    fontatlas.DefaultPadding,
	}

	if len(args) > 0 {
		inv.fontPath = args[0]
	}
	if len(args) > 1 {
		inv.outputPath = args[1]
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"cell_width", &inv.cellWidth},
		{"cell_height", &inv.cellHeight},
		{"font_size", &inv.fontSize},
		{"padding", &inv.padding},
	}
	for i, arg := range args[min(len(args), 2):] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return invocation{}, fmt.Errorf("%s: %q is not an integer", ints[i].name, arg)
		}
		*ints[i].dst = v
	}

	if len(args) <= 3 {
		inv.cellHeight = inv.cellWidth
	}
	if len(args) <= 4 {
		inv.fontSize = inv.cellHeight
	}
	return inv, nil
}

// defaultOutputPath returns font_atlas.png next to the executable.
func defaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "font_atlas.png"
	}
	return filepath.Join(filepath.Dir(exe), "font_atlas.png")
}

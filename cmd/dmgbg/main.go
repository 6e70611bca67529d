// dmgbg - DMG installer background generator.
//
// Usage:
//
//	dmgbg [-o <file>] [-layout <path>] [options]
//	dmgbg init [-layout layout.json]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vts-app/dmgbg/pkg/generator"
	"github.com/vts-app/dmgbg/pkg/template"
)

// DefaultOutput is where the background is written when -o is not given.
const DefaultOutput = "scripts/dmg-background.png"

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "init":
			if err := runInit(args[1:], os.Stdout); err != nil {
				fatal(err)
			}
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(args, os.Stdout, os.Stderr); err != nil {
		fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dmgbg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		output     string
		layoutPath string
		fontPath   string
		embedded   bool
		retina     bool
		verbose    bool
	)

	fs.StringVar(&output, "o", DefaultOutput, "Output file path (.png)")
	fs.StringVar(&output, "output", DefaultOutput, "Output file path (.png)")
	fs.StringVar(&layoutPath, "layout", "", "Path to layout JSON (optional)")
	fs.StringVar(&fontPath, "font", "", "Font file tried before the system fonts")
	fs.BoolVar(&embedded, "embedded-font", false, "Fall back to the embedded Go font before the bitmap font")
	fs.BoolVar(&retina, "retina", false, "Also write a @2x variant")
	fs.BoolVar(&verbose, "v", false, "Log font fallback decisions")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	setupLogging(stderr, verbose)

	if err := generator.Probe(); err != nil {
		return err
	}

	layout := template.DefaultLayout()
	if layoutPath != "" {
		var err error
		layout, err = template.ParseLayoutFile(layoutPath)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
	}
	for _, w := range template.ValidateLayout(layout) {
		slog.Warn(w)
	}

	paths := layout.Font.Paths
	if fontPath != "" {
		paths = append([]string{fontPath}, paths...)
	}
	renderer := template.NewRenderer(template.NewFontChain(template.ChainOptions{
		Paths:    paths,
		Index:    layout.Font.Index,
		Embedded: embedded,
	}))

	if err := render(renderer, layout, output, stdout); err != nil {
		return err
	}
	if retina {
		if err := render(renderer, layout.Scale(2), retinaPath(output), stdout); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "\n📦 Background is ready for DMG creation!")
	fmt.Fprintln(stdout, "   The background will show installation instructions and an arrow.")
	return nil
}

// render draws layout and writes it to output.
func render(r *template.Renderer, layout *template.Layout, output string, stdout io.Writer) error {
	img := r.Render(layout)
	if err := generator.Generate(output, generator.Config{Image: img}); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(stdout, "✅ DMG background created: %s\n", output)
	fmt.Fprintf(stdout, "   Size: %dx%d pixels\n", b.Dx(), b.Dy())
	return nil
}

// retinaPath turns "dir/name.png" into "dir/name@2x.png".
func retinaPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "@2x" + ext
}

// setupLogging routes diagnostics to w. Font fallback decisions are only
// shown with -v.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	template.SetLogger(logger)
}

func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	var layoutOut string
	fs.StringVar(&layoutOut, "layout", "layout.json", "Output path for sample layout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(layoutOut, []byte(template.ExampleLayoutJSON()), 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	fmt.Fprintf(stdout, "Created: %s\n", layoutOut)
	fmt.Fprintf(stdout, "Run: dmgbg -layout %s\n", layoutOut)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`dmgbg — DMG installer background generator

USAGE:
    dmgbg [options]
    dmgbg init [-layout <path>]

OPTIONS:
    -o, -output <path>     Output file (default: scripts/dmg-background.png)
    -layout <path>         Layout JSON merged over the built-in layout
    -font <path>           Font file (.ttf/.otf/.ttc) tried first
    -embedded-font         Use the embedded Go font before the bitmap fallback
    -retina                Also write <name>@2x.png at double size
    -v                     Log font fallback decisions to stderr

FONTS:
    Fonts are tried in order: -font, the layout's font paths
    (default /System/Library/Fonts/Helvetica.ttc), then a built-in
    7x13 bitmap font. If none loads, the background has no text.

EXAMPLES:
    dmgbg
    dmgbg -o build/background.png -retina
    dmgbg init && dmgbg -layout layout.json
`)
}

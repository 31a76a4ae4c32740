package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/iw2rmb/saybox"
	"github.com/iw2rmb/saybox/scene"
)

type app struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	stdinIsTTY bool
}

func (a app) run(args []string) int {
	def := scene.DefaultOptions()
	fs := flag.NewFlagSet("saybox", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "%s\n\nUsage: saybox [flags] [text...]\n\nPrints text in a speech bubble. Without text arguments, text is read from stdin.\n\n", saybox.VersionLine())
		fs.PrintDefaults()
	}
	aspect := fs.Float64("aspect-ratio", def.AspectRatio, "target width/height ratio of the text block")
	vpad := fs.Int("min-vertical-padding", def.MinVerticalPadding, "blank rows above and below the text")
	hpad := fs.Int("min-horizontal-padding", def.MinHorizontalPadding, "blank columns left and right of the text")
	tab := fs.Int("tab-width", def.TabWidth, "distance between tab stops")
	scenePath := fs.String("scene", "", "YAML scene definition (default: built-in art)")
	verbose := fs.Bool("v", false, "log layout decisions to stderr")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintln(a.stdout, saybox.VersionLine())
		return 0
	}
	if *verbose {
		saybox.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer saybox.SetLogger(nil)
	}

	text, err := a.readText(fs.Args())
	if err != nil {
		a.fail(err)
		return 1
	}
	if text == "" {
		fs.Usage()
		return 2
	}

	sc := scene.Default()
	if *scenePath != "" {
		sc, err = scene.Load(*scenePath)
		if err != nil {
			a.fail(err)
			return 1
		}
	}

	opt := scene.Options{
		AspectRatio:          *aspect,
		MinVerticalPadding:   *vpad,
		MinHorizontalPadding: *hpad,
		TabWidth:             *tab,
	}
	out, err := scene.Render(text, sc, opt)
	if err != nil {
		a.fail(err)
		if errors.Is(err, scene.ErrInvalidOptions) {
			return 2
		}
		return 1
	}
	if _, err := io.WriteString(a.stdout, out); err != nil {
		a.fail(err)
		return 1
	}
	return 0
}

func (a app) readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if a.stdinIsTTY || a.stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (a app) fail(err error) {
	_, _ = io.WriteString(a.stderr, "saybox: "+err.Error()+"\n")
}

func main() {
	a := app{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdinIsTTY: term.IsTerminal(int(os.Stdin.Fd())),
	}
	os.Exit(a.run(os.Args[1:]))
}

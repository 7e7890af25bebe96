package cli

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/maze-wizard/internal/imaging"
	"github.com/ironsheep/maze-wizard/internal/maze"
)

const commandName = "maze-wizard"

// approvedExtensions are the image types accepted for both arguments.
var approvedExtensions = []string{"bmp", "jpg", "png"}

// Options holds a parsed command line.
type Options struct {
	Source      string
	Destination string
	Overwrite   bool

	// Highlight is the solution colour, nil for the default green.
	Highlight color.Color

	// Tolerance is copied to the palette. Zero means exact colour matching.
	Tolerance float64
}

// Palette returns the default palette with the requested tolerance.
func (o *Options) Palette() maze.Palette {
	p := maze.DefaultPalette()
	p.Tolerance = o.Tolerance
	return p
}

// parseArgs reads positional arguments and flags in any order. It checks
// syntax only; Validate checks the files.
func parseArgs(args []string) (*Options, []error) {
	opts := &Options{}
	var colorHex string

	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.Overwrite, "overwrite", false, "allow replacing an existing destination")
	fs.BoolVar(&opts.Overwrite, "o", false, "alias for --overwrite")
	fs.StringVar(&colorHex, "color", "", "solution colour as #RRGGBB")
	fs.Float64Var(&opts.Tolerance, "tolerance", 0, "CIE Lab colour tolerance")

	var errs []error
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			errs = append(errs, err)
			break
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	for i, arg := range positional {
		switch i {
		case 0:
			opts.Source = arg
		case 1:
			opts.Destination = arg
		default:
			errs = append(errs, fmt.Errorf("Unrecognized command or argument '%s'.", arg))
		}
	}

	if colorHex != "" {
		c, err := imaging.ParseHexColor(colorHex)
		if err != nil {
			errs = append(errs, fmt.Errorf("Option '--color': %w", err))
		} else {
			opts.Highlight = c
		}
	}
	if opts.Tolerance < 0 {
		errs = append(errs, errors.New("Option '--tolerance': value must not be negative."))
	}

	return opts, errs
}

// Validate checks the source and destination files and returns every
// problem found.
func (o *Options) Validate() []error {
	var errs []error

	if o.Source == "" {
		errs = append(errs, fmt.Errorf("Required argument 'source' missing for command: '%s'.", commandName))
	} else {
		if info, err := os.Stat(o.Source); err != nil || info.IsDir() {
			errs = append(errs, errors.New("Argument 'source': file does not exist."))
		}
		if !approvedExtension(o.Source) {
			errs = append(errs, errors.New("Argument 'source': invalid file type."))
		}
	}

	if o.Destination == "" {
		errs = append(errs, fmt.Errorf("Required argument 'destination' missing for command: '%s'.", commandName))
		return errs
	}
	if !approvedExtension(o.Destination) {
		errs = append(errs, errors.New("Invalid file type for argument 'destination'."))
	}
	if info, err := os.Stat(filepath.Dir(o.Destination)); err != nil || !info.IsDir() {
		errs = append(errs, errors.New("The specified directory for argument 'destination' does not exist."))
	}
	if _, err := os.Stat(o.Destination); err == nil && !o.Overwrite {
		errs = append(errs, errors.New("Destination file already exists. Use --overwrite to allow replacing it."))
	}

	return errs
}

// Parse parses args and validates the result. Every problem is returned,
// not just the first.
func Parse(args []string) (*Options, []error) {
	opts, errs := parseArgs(args)
	for _, err := range errs {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errs
		}
	}
	return opts, append(errs, opts.Validate()...)
}

func approvedExtension(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, a := range approvedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

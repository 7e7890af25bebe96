package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ironsheep/maze-wizard/internal/imaging"
	"github.com/ironsheep/maze-wizard/internal/maze"
)

const (
	solveFailedHeader = "Unable to solve maze:"
	noSolutionMessage = "Unable to find a solution for the input file"
)

// validationMessages are the lines printed for each validation failure.
var validationMessages = map[error]string{
	maze.ErrEntranceNotFound: "The maze entrance could not be identified.",
	maze.ErrExitNotFound:     "The maze exit could not be identified.",
	maze.ErrInvalidPerimeter: "The maze perimeter can only contain wall features.",
}

// Usage writes the command help to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <source> <destination> [options]\n", commandName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Solves a maze image and writes a solved copy. The maze must follow these")
	fmt.Fprintln(w, "pixel colour rules:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Entrance:  red pixels    (RGB 255, 0, 0)")
	fmt.Fprintln(w, "  Exit:      blue pixels   (RGB 0, 0, 255)")
	fmt.Fprintln(w, "  Walls:     black pixels  (RGB 0, 0, 0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The maze must be fully surrounded by black walls. The solution, if found,")
	fmt.Fprintln(w, "is painted in green.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Supported file types: [%s]\n", strings.Join(approvedExtensions, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --overwrite, --o     Allow replacing an existing destination file")
	fmt.Fprintln(w, "  --color <hex>        Solution colour (default #00FF00)")
	fmt.Fprintln(w, "  --tolerance <float>  CIE Lab distance accepted for reserved colours (default 0)")
}

// Run solves the maze named by args and returns the process exit code.
// Argument problems and solve failures go to stderr, one per line. With
// debug set, a summary of the solved maze is logged.
func Run(args []string, stdout, stderr io.Writer, debug bool) int {
	opts, errs := Parse(args)
	if len(errs) > 0 {
		for _, err := range errs {
			if errors.Is(err, flag.ErrHelp) {
				Usage(stdout)
				return 0
			}
		}
		for _, err := range errs {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	result, err := imaging.SolveFile(opts.Source, opts.Destination, imaging.SolveOptions{
		Palette:   opts.Palette(),
		Highlight: opts.Highlight,
	})
	if err != nil {
		fmt.Fprintln(stderr, solveFailedHeader)
		for _, line := range ErrorLines(err) {
			fmt.Fprintln(stderr, line)
		}
		return 1
	}

	if debug {
		log.Printf("Solved %s (%dx%d): entrance %v, exit %v, %d corridors, %d solution boxes",
			opts.Source, result.Width, result.Height, result.Entrance, result.Exit,
			result.Corridors, len(result.Solution))
		log.Printf("Wrote %s", result.Output)
	}
	return 0
}

// ErrorLines turns a solve error into the lines reported to the user:
// one per validation failure, a fixed message when the maze has no
// solution, otherwise the error text.
func ErrorLines(err error) []string {
	var verr *maze.ValidationError
	switch {
	case errors.As(err, &verr):
		lines := make([]string, len(verr.Errs))
		for i, e := range verr.Errs {
			lines[i] = validationMessage(e)
		}
		return lines
	case errors.Is(err, maze.ErrNoSolution):
		return []string{noSolutionMessage}
	}
	return []string{err.Error()}
}

func validationMessage(err error) string {
	if msg, ok := validationMessages[err]; ok {
		return msg
	}
	return err.Error()
}

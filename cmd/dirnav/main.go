package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/dirnav/internal/app"
)

func printHelp() {
	fmt.Print(`dirnav - Terminal-based directory browser

USAGE:
    dirnav [OPTIONS] [PATH]

    PATH is the starting root directory (default: ~).

OPTIONS:
    -h, --help    Show this help message and exit

KEYS:
    up/down/j/k   Move the highlight
    right/enter/l Expand the highlighted directory
    left/h        Collapse, or jump to the parent row
    g             Go to a path (with autocompletion)
    p             Toggle the preview pane
    r             Reload the highlighted directory from disk
    q             Quit
`)
}

func main() {
	// UTF-8 fallback keeps non-ASCII file names rendering correctly on
	// terminals with incomplete locale configuration.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	root := "~"
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			root = arg
		}
	}

	app, err := apppkg.NewApplication(root)
	if err != nil {
		// No directory to browse; refusing to start beats guessing one.
		fmt.Fprintf(os.Stderr, "dirnav: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}

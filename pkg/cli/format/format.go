// Package format holds shared terminal styling for depscope's CLI.
package format

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Shared output styles
var (
	ErrorColor   = color.New(color.FgRed, color.Bold)
	SuccessColor = color.New(color.FgGreen, color.Bold)
	HeadingColor = color.New(color.FgHiWhite, color.Bold)
	IdentColor   = color.New(color.FgCyan)
	DimColor     = color.New(color.FgHiBlack)
)

// Seconds renders a duration the way the shell reports timings.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f sec", d.Seconds())
}

// TerminalWidth returns the current terminal width, defaulting to 80 when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

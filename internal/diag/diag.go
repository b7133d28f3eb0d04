// Package diag provides the colorized, localized diagnostic output the
// tokendump CLI prints to stderr/stdout, grounded on xplore.go's use
// of fatih/color for highlighted terminal output and on align.go's use
// of golang.org/x/text/message for locale-formatted counts.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Highlight returns s wrapped in bold cyan, the way xplore.go tags
// matched spans for terminal display.
func Highlight(s string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(s)
}

// Count writes a localized, pluralized summary line such as
// "1,204 tokens" or "1 document" to w.
func Count(w io.Writer, n int, noun string) {
	label := noun
	if n != 1 {
		label = inflector.Pluralize(noun)
	}
	printer.Fprintf(w, "%d %s\n", n, label)
}

// Errorf writes a bold red diagnostic line to w, the way xplore.go
// flags malformed input during exploration.
func Errorf(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprint(msg))
}

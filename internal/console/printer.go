package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/gookit/color"
)

var colorsByName = map[string]color.Color{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// PrinterOptions controls how a Printer decorates its output.
type PrinterOptions struct {
	Color  bool // emit ANSI colors
	Banner bool // render Big text in large characters
}

// Printer writes user-facing text: plain lines, errors, colored fragments and
// large-character banners.
type Printer struct {
	out  io.Writer
	opts PrinterOptions
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, opts PrinterOptions) *Printer {
	return &Printer{out: out, opts: opts}
}

// Log writes msg followed by a newline.
func (p *Printer) Log(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Logf formats and writes a line.
func (p *Printer) Logf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error writes msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, "%s: %s\n", p.Colorize("Error", "red"), p.Colorize(msg, "red"))
}

// Colorize wraps text in the named color. Unknown names and a color-less
// Printer return text unchanged.
func (p *Printer) Colorize(text, name string) string {
	if !p.opts.Color {
		return text
	}
	c, ok := colorsByName[strings.ToLower(name)]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Big writes text in large ASCII-art characters in the named color. It is a
// no-op when banners are disabled.
func (p *Printer) Big(text, colorName string) {
	if !p.opts.Banner {
		return
	}
	art := figure.NewFigure(text, "", false).String()
	fmt.Fprint(p.out, p.Colorize(art, colorName))
	if !strings.HasSuffix(art, "\n") {
		fmt.Fprintln(p.out)
	}
}

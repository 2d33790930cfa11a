package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31;1m"
	ansiYellow = "\033[33;1m"
	ansiDim    = "\033[2m"
)

// Renderer writes diagnostics in a human-readable, optionally colored form.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer creates a renderer for out. Color is enabled only when out is a
// terminal.
func NewRenderer(out io.Writer) *Renderer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{out: out, color: color}
}

// SetColor overrides terminal detection, e.g. for --no-color.
func (r *Renderer) SetColor(enabled bool) { r.color = enabled }

// Render writes one diagnostic.
func (r *Renderer) Render(d *Diagnostic) {
	label, tint := "error", ansiRed
	if d.Severity == SeverityWarning {
		label, tint = "warning", ansiYellow
	}

	pos := fmt.Sprintf("%d:%d", d.Token.Line, d.Token.Column)
	if d.File != "" {
		pos = fmt.Sprintf("%s:%s", d.File, pos)
	}

	if r.color {
		fmt.Fprintf(r.out, "%s%s[%s]%s %s %s%s%s\n", tint, label, d.Code, ansiReset, d.Message, ansiDim, pos, ansiReset)
	} else {
		fmt.Fprintf(r.out, "%s[%s] %s (%s)\n", label, d.Code, d.Message, pos)
	}
}

// RenderAll writes every diagnostic in order.
func (r *Renderer) RenderAll(ds []*Diagnostic) {
	for _, d := range ds {
		r.Render(d)
	}
}

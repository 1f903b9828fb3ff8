package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fsdc/internal/diag"
)

type palette struct {
	location *color.Color
	severity *color.Color
	code     *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		code:     color.New(color.FgHiBlack),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.location, p.severity, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид. Для каждой печатает
//
//	<name>(<line>,<col>): error [CODE]: <message>
//
// затем строку исходника с кареткой под колонкой. Порядок диагностик не меняется.
func Pretty(w io.Writer, files []FileDiagnostics, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, fd := range files {
		for _, d := range fd.Errors {
			if err := prettyOne(w, fd, d, pal, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func prettyOne(w io.Writer, fd FileDiagnostics, d *diag.DefinitionError, pal palette, opts PrettyOpts) error {
	var b strings.Builder
	if d.Position.IsValid() {
		b.WriteString(pal.location.Sprint(d.Position.String()))
		b.WriteString(": ")
	}
	b.WriteString(pal.severity.Sprint("error"))
	if opts.ShowCodes {
		b.WriteString(" " + pal.code.Sprint(d.Code.ID()))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	if fd.File != nil && d.Position.IsValid() {
		writeExcerpt(&b, fd, d, pal, opts)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeExcerpt(b *strings.Builder, fd FileDiagnostics, d *diag.DefinitionError, pal palette, opts PrettyOpts) {
	line, err := safecast.Conv[uint32](d.Position.Line)
	if err != nil {
		return
	}
	first := line
	for range max(opts.Context, 0) {
		if first <= 1 {
			break
		}
		first--
	}
	gutterWidth := len(strconv.FormatUint(uint64(line), 10))

	for n := first; n <= line; n++ {
		text := strings.TrimRight(fd.File.GetLine(n), "\r")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "...")
		}
		fmt.Fprintf(b, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, n), text)
	}

	lineText := strings.TrimRight(fd.File.GetLine(line), "\r")
	fmt.Fprintf(b, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		caretPadding(lineText, d.Position.Column),
		pal.caret.Sprint("^"))
}

// caretPadding returns whitespace as wide as the text before column.
// Tabs are copied so the caret lines up however the terminal expands them.
func caretPadding(line string, column int) string {
	var b strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		col++
	}
	// позиция за концом строки (например, EOF)
	if col < column {
		b.WriteString(strings.Repeat(" ", column-col))
	}
	return b.String()
}

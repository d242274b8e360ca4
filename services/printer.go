package services

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/width"

	"rental-viewer/models"
)

const maxCellWidth = 40

// Printer renders views as aligned text tables. On a terminal, link cells
// show their label as a clickable OSC 8 hyperlink and column widths are
// capped to fit the window; elsewhere links print as plain URLs.
type Printer struct {
	out   io.Writer
	tty   bool
	width int
}

// NewPrinter creates a Printer for out, detecting whether it is a terminal.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{out: out}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.tty = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			p.width = w
		}
	}
	return p
}

func (p *Printer) Print(v *models.View) {
	sep := strings.Repeat("═", 54)

	fmt.Fprintf(p.out, "\n%s\n", p.style("1;35", sep))
	fmt.Fprintf(p.out, "%s\n", p.style("1;35", fmt.Sprintf("  %s · %s", v.Source, v.Variant)))
	fmt.Fprintf(p.out, "%s\n\n", p.style("1;35", sep))

	title := fmt.Sprintf("주택 리스트 조회 (총 %d건)", v.Total)
	if v.Deduplicated {
		title += fmt.Sprintf(" · 주소 중복제거 (%d세대)", v.Matched)
	}
	fmt.Fprintf(p.out, "  %s\n\n", p.style("1;33", title))

	if len(v.Table.Rows) == 0 {
		fmt.Fprintf(p.out, "  조건에 맞는 주택이 없습니다\n\n")
		return
	}

	cols := v.Table.Columns
	limit := maxCellWidth
	if p.width > 0 && len(cols) > 0 {
		limit = min(maxCellWidth, max(8, p.width/len(cols)-2))
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = min(displayWidth(string(c)), limit)
	}
	for _, row := range v.Table.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], min(displayWidth(p.cellText(cell)), limit))
		}
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(truncateWidth(string(c), limit), widths[i])
	}
	fmt.Fprintf(p.out, "  %s\n", p.style("1", strings.Join(header, "  ")))

	for _, row := range v.Table.Rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			text := pad(truncateWidth(p.cellText(cell), limit), widths[i])
			if p.tty && cell.Link != "" {
				text = "\033]8;;" + cell.Link + "\033\\" + text + "\033]8;;\033\\"
			}
			parts[i] = text
		}
		fmt.Fprintf(p.out, "  %s\n", strings.Join(parts, "  "))
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) cellText(c models.Cell) string {
	if c.Link != "" && !p.tty {
		return c.Link
	}
	return c.Text
}

func (p *Printer) style(code, s string) string {
	if !p.tty {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// displayWidth counts Hangul and other East Asian wide runes as two cells.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func truncateWidth(s string, limit int) string {
	if displayWidth(s) <= limit {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := displayWidth(string(r))
		if w+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}

func pad(s string, w int) string {
	if n := displayWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

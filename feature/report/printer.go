package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const rule = "==========================================================================================="

// Printer writes human-readable check output.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer for out. In auto mode color is enabled only
// when out is a terminal.
func NewPrinter(out io.Writer, mode string) *Printer {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorNever:
	default:
		color = IsTerminal(out)
	}
	if color {
		text.EnableColors()
	}
	return &Printer{out: out, color: color}
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) paint(colors text.Colors, s string) string {
	if !p.color {
		return s
	}
	return colors.Sprint(s)
}

func (p *Printer) line(colors text.Colors, s string) {
	fmt.Fprintln(p.out, p.paint(colors, s))
}

// Banner prints the program header.
func (p *Printer) Banner() {
	cyan := text.Colors{text.FgCyan}
	p.line(cyan, rule)
	p.line(cyan, "COM3D2 DLC Checker     |   Manifest: github.com/krypto5863/COM3D2_DLC_Checker")
	p.line(cyan, rule)
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a yellow line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(text.Colors{text.FgYellow}, fmt.Sprintf(format, args...))
}

// Error prints a red line.
func (p *Printer) Error(format string, args ...any) {
	p.line(text.Colors{text.FgRed}, fmt.Sprintf(format, args...))
}

// Lists prints the installed and not installed display names, one per line.
func (p *Printer) Lists(installed, notInstalled []string) {
	cyan := text.Colors{text.FgCyan}

	p.line(cyan, "\nAlready Installed:")
	for _, name := range installed {
		fmt.Fprintln(p.out, name)
	}

	p.line(cyan, "\nNot Installed :")
	for _, name := range notInstalled {
		fmt.Fprintln(p.out, name)
	}
}

// Table renders rows under headers with rounded borders.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	fmt.Fprintln(p.out, tw.Render())
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WaitForEnter prompts and blocks until a line (or EOF) is read from in.
func WaitForEnter(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\nPress 'Enter' to exit the process...")
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ShouldWait reports whether WaitForEnter should run for this session.
func ShouldWait(cfg Config, in any) bool {
	return cfg.WaitOnExit && IsTerminal(in)
}

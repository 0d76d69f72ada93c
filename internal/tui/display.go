// Package tui renders contact records to a terminal or plain text stream.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/smileynet/phonebook/internal/contact"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style only when the writer is a terminal.
	ColorAlways ColorMode = "always" // Style regardless of the writer.
	ColorNever  ColorMode = "never"  // Plain text only.
)

// Options configures printer creation.
type Options struct {
	Writer io.Writer // Output destination (default: os.Stdout).
	Color  ColorMode // Defaults to ColorAuto.
}

// Printer writes human-readable record lines. Unstyled output of a record
// is exactly its String form.
type Printer struct {
	w      io.Writer
	styled bool

	heading lipgloss.Style
	label   lipgloss.Style
	name    lipgloss.Style
	phone   lipgloss.Style
}

// NewPrinter returns a Printer that styles output when opts.Color allows it.
func NewPrinter(opts Options) *Printer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	r := lipgloss.NewRenderer(opts.Writer)
	styled := false
	switch opts.Color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
		styled = true
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		styled = isTTY(opts.Writer)
	}

	return &Printer{
		w:       opts.Writer,
		styled:  styled,
		heading: r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		name:    r.NewStyle().Bold(true),
		phone:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styled reports whether the printer emits styled output.
func (p *Printer) Styled() bool { return p.styled }

// Heading prints a section title.
func (p *Printer) Heading(text string) {
	if p.styled {
		text = p.heading.Render(text)
	}
	_, _ = fmt.Fprintln(p.w, text)
}

// Line prints text as-is.
func (p *Printer) Line(text string) {
	_, _ = fmt.Fprintln(p.w, text)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	_, _ = fmt.Fprintln(p.w)
}

// Record prints one record.
func (p *Printer) Record(r *contact.Record) {
	_, _ = fmt.Fprintln(p.w, p.FormatRecord(r))
}

// Records prints each record on its own line.
func (p *Printer) Records(rs []*contact.Record) {
	for _, r := range rs {
		p.Record(r)
	}
}

// Phone prints a single phone number belonging to name as "NAME: PHONE".
func (p *Printer) Phone(name contact.Name, phone contact.PhoneNumber) {
	if !p.styled {
		_, _ = fmt.Fprintf(p.w, "%s: %s\n", name, phone)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.name.Render(name.String()), p.phone.Render(phone.String()))
}

// FormatRecord returns the display form of r.
func (p *Printer) FormatRecord(r *contact.Record) string {
	if !p.styled {
		return r.String()
	}
	phones := r.Phones()
	parts := make([]string, len(phones))
	for i, ph := range phones {
		parts[i] = p.phone.Render(ph.String())
	}
	return p.label.Render("Contact name: ") + p.name.Render(r.Name().String()) +
		p.label.Render(", phones: ") + strings.Join(parts, contact.PhoneSeparator)
}

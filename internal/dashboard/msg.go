// Package dashboard implements a read-only two-pane browser for contact records.
package dashboard

import "github.com/smileynet/phonebook/internal/directory"

// Focus identifies which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Left pane (contact list) has focus.
	PaneRight              // Right pane (contact detail) has focus.
)

// Entry is an immutable snapshot of one contact for display.
type Entry struct {
	Name   string
	Phones []string
}

// Snapshot copies the records of d into display entries, in directory order.
// The dashboard renders the snapshot so the directory itself is never shared
// with the UI goroutine.
func Snapshot(d *directory.Directory) []Entry {
	entries := make([]Entry, 0, d.Len())
	for name, rec := range d.All() {
		phones := rec.Phones()
		e := Entry{Name: name, Phones: make([]string, len(phones))}
		for i, p := range phones {
			e.Phones[i] = p.String()
		}
		entries = append(entries, e)
	}
	return entries
}

// Package directory implements the keyed collection of contact records.
package directory

import (
	"fmt"
	"iter"
	"slices"

	"github.com/smileynet/phonebook/internal/contact"
)

// Directory maps contact names to records, remembering insertion order.
// It is not safe for concurrent use; callers that share a Directory across
// goroutines must serialize access.
type Directory struct {
	records map[string]*contact.Record
	order   []string
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{records: make(map[string]*contact.Record)}
}

// AddRecord stores r under its name. An existing record with the same name
// is replaced without error and keeps its position in iteration order.
func (d *Directory) AddRecord(r *contact.Record) {
	key := r.Name().String()
	if _, exists := d.records[key]; !exists {
		d.order = append(d.order, key)
	}
	d.records[key] = r
}

// Find returns the record stored under name.
func (d *Directory) Find(name string) (*contact.Record, bool) {
	r, ok := d.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// It returns an error wrapping contact.ErrNotFound if there is none.
func (d *Directory) Delete(name string) error {
	if _, ok := d.records[name]; !ok {
		return fmt.Errorf("directory: delete %q: %w", name, contact.ErrNotFound)
	}
	delete(d.records, name)
	d.order = slices.DeleteFunc(d.order, func(k string) bool { return k == name })
	return nil
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.order) }

// Names returns the record names in insertion order.
func (d *Directory) Names() []string {
	return slices.Clone(d.order)
}

// All yields (name, record) pairs in insertion order.
func (d *Directory) All() iter.Seq2[string, *contact.Record] {
	return func(yield func(string, *contact.Record) bool) {
		for _, name := range d.order {
			if !yield(name, d.records[name]) {
				return
			}
		}
	}
}

// Records returns the records in insertion order.
func (d *Directory) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(d.order))
	for _, r := range d.All() {
		out = append(out, r)
	}
	return out
}

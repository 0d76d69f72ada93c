// Package seed decodes sample contact files and builds a directory from them.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/directory"
)

// ErrInvalidSeed indicates a sample file is structurally unusable.
var ErrInvalidSeed = errors.New("seed: invalid sample file")

// File is the YAML layout of a sample contacts file.
type File struct {
	Contacts []Contact `yaml:"contacts"`
}

// Contact is one sample contact entry.
type Contact struct {
	Name   string   `yaml:"name"`
	Phones []string `yaml:"phones"`
}

// Decode parses a sample file, rejecting unknown fields.
// An empty or comment-only input decodes to a File with no contacts.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("seed: parsing: %w", err)
	}
	return f, nil
}

// Build adds every contact in f to a new Directory, in file order.
// A repeated name replaces the earlier entry, as Directory.AddRecord does.
func Build(f File) (*directory.Directory, error) {
	dir := directory.New()
	for i, c := range f.Contacts {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: contact %d has no name", ErrInvalidSeed, i)
		}
		rec := contact.NewRecord(c.Name)
		for _, raw := range c.Phones {
			if err := rec.AddPhone(raw); err != nil {
				return nil, fmt.Errorf("seed: contact %q: %w", c.Name, err)
			}
		}
		dir.AddRecord(rec)
	}
	return dir, nil
}

// Load decodes r and builds a Directory from it.
func Load(r io.Reader) (*directory.Directory, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFS loads the sample file name from fsys.
func LoadFS(fsys fs.FS, name string) (*directory.Directory, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", name, err)
	}
	return Load(bytes.NewReader(data))
}

// LoadFile loads the sample file at path on disk.
func LoadFile(path string) (*directory.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

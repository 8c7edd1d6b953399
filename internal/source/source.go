// Package source loads template files for scanning.
//
// On unix systems files are memory-mapped read-only, so a scanner borrows the
// file bytes directly instead of a heap copy. Elsewhere the file is read into
// memory.
package source

import (
	"fmt"
	"os"
)

// File is the content of a template file. Bytes is valid until Close.
type File struct {
	Name  string
	Bytes []byte

	release func() error
}

// Open loads the named file.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}

	data, release, err := load(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return &File{Name: name, Bytes: data, release: release}, nil
}

// Close releases the file content. Slices of Bytes must not be used afterwards.
func (f *File) Close() error {
	f.Bytes = nil
	if f.release == nil {
		return nil
	}
	err := f.release()
	f.release = nil
	return err
}

// Package load brings module binaries into memory for inspection. Files are
// memory-mapped where the platform supports it so that large modules can be
// scanned without copying them onto the heap.
package load

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// A File is a module binary held in memory. When the file was memory-mapped,
// Bytes is only valid until Close.
type File struct {
	Bytes []byte

	munmap func() error
}

// Close releases the file's mapping, if any. Bytes must not be used after
// Close returns.
func (f *File) Close() error {
	if f.munmap == nil {
		return nil
	}
	munmap := f.munmap
	f.munmap, f.Bytes = nil, nil
	return munmap()
}

// LoadFile loads the file at path into memory, mapping it when possible and
// falling back to an ordinary read otherwise.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if size := info.Size(); size > 0 {
		bytes, munmap, err := mapFile(f, size)
		if err == nil {
			Logger().Debug("mapped file", zap.String("path", path), zap.Int64("size", size))
			return &File{Bytes: bytes, munmap: munmap}, nil
		}
		Logger().Debug("map failed, falling back to read", zap.String("path", path), zap.Error(err))
	}

	bytes, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &File{Bytes: bytes}, nil
}

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package load

import (
	"errors"
	"os"
)

var errMapNotSupported = errors.New("memory-mapped files are not supported on this platform")

func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	return nil, nil, errMapNotSupported
}

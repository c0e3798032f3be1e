//go:build !windows

package coursesite

import (
	"os"
	"syscall"
)

// preserveFilePermissions copies the owner of the replaced file onto the
// temporary file that will take its place.
func preserveFilePermissions(path string, fileInfo os.FileInfo) error {
	if stat, ok := fileInfo.Sys().(*syscall.Stat_t); ok {
		return os.Chown(path, int(stat.Uid), int(stat.Gid))
	}
	return nil
}

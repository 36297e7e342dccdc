//go:build darwin || freebsd || linux

package fetchlib

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckDiskSpace checks whether the filesystem holding path has at least
// requiredBytes available. A non-positive requiredBytes (unknown size)
// skips the check. Statfs failures are ignored rather than failing the
// download up front.
func CheckDiskSpace(path string, requiredBytes int64) error {
	if requiredBytes <= 0 {
		return nil
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil
	}

	// Bavail is the block count available to unprivileged users.
	availableBytes := int64(stat.Bavail) * int64(stat.Bsize)

	if availableBytes < requiredBytes {
		return fmt.Errorf("%w: required %s, available %s",
			ErrInsufficientDiskSpace,
			ContentLength(requiredBytes),
			ContentLength(availableBytes))
	}

	return nil
}

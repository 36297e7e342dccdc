//go:build windows

package fetchlib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// CheckDiskSpace checks whether the volume holding path has at least
// requiredBytes available to the calling user. A non-positive
// requiredBytes (unknown size) skips the check, and query failures are
// ignored rather than failing the download up front.
func CheckDiskSpace(path string, requiredBytes int64) error {
	if requiredBytes <= 0 {
		return nil
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return nil
	}

	if int64(freeBytesAvailable) < requiredBytes {
		return fmt.Errorf("%w: required %s, available %s",
			ErrInsufficientDiskSpace,
			ContentLength(requiredBytes),
			ContentLength(int64(freeBytesAvailable)))
	}

	return nil
}

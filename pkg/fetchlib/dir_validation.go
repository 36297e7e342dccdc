package fetchlib

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateDownloadDirectory checks that the given path is an existing,
// writable directory. Returns nil if valid, or a specific error:
//   - ErrDirectoryNotFound if the path doesn't exist
//   - ErrNotADirectory if the path is a file
//   - ErrDirectoryNotWritable if the directory is not writable
func ValidateDownloadDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path is empty", ErrDirectoryNotFound)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrDirectoryNotFound, err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	// Probe writability by creating and removing a scratch file.
	testFile := filepath.Join(path, fmt.Sprintf(".bulkget_write_test_%d", os.Getpid()))
	f, err := os.OpenFile(testFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDirectoryNotWritable, path)
	}
	f.Close()
	os.Remove(testFile)

	return nil
}

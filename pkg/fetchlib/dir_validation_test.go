package fetchlib

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDownloadDirectory(t *testing.T) {
	t.Run("valid writable directory", func(t *testing.T) {
		if err := ValidateDownloadDirectory(t.TempDir()); err != nil {
			t.Errorf("ValidateDownloadDirectory: %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		err := ValidateDownloadDirectory("")
		if !errors.Is(err, ErrDirectoryNotFound) {
			t.Errorf("err = %v, want ErrDirectoryNotFound", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		err := ValidateDownloadDirectory(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrDirectoryNotFound) {
			t.Errorf("err = %v, want ErrDirectoryNotFound", err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		err := ValidateDownloadDirectory(file)
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("err = %v, want ErrNotADirectory", err)
		}
	})

	t.Run("unwritable directory", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root can write anywhere")
		}
		dir := filepath.Join(t.TempDir(), "ro")
		if err := os.Mkdir(dir, 0555); err != nil {
			t.Fatal(err)
		}
		err := ValidateDownloadDirectory(dir)
		if !errors.Is(err, ErrDirectoryNotWritable) {
			t.Errorf("err = %v, want ErrDirectoryNotWritable", err)
		}
	})
}

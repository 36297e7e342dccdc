//go:build darwin || freebsd || linux

package fetchlib

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestCheckDiskSpace(t *testing.T) {
	tmpDir := t.TempDir()

	var stat unix.Statfs_t
	if err := unix.Statfs(tmpDir, &stat); err != nil {
		t.Fatalf("statfs: %v", err)
	}
	availableBytes := int64(stat.Bavail) * int64(stat.Bsize)

	tests := []struct {
		name          string
		path          string
		requiredBytes int64
		wantErr       error
	}{
		{
			name:          "sufficient space",
			path:          tmpDir,
			requiredBytes: 1024,
		},
		{
			name:          "insufficient space",
			path:          tmpDir,
			requiredBytes: availableBytes + GB,
			wantErr:       ErrInsufficientDiskSpace,
		},
		{
			name:          "zero size skips the check",
			path:          tmpDir,
			requiredBytes: 0,
		},
		{
			name:          "unknown size skips the check",
			path:          tmpDir,
			requiredBytes: -1,
		},
		{
			name:          "unstatable path is not an error",
			path:          "/path/that/does/not/exist",
			requiredBytes: 1024,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDiskSpace(tt.path, tt.requiredBytes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckDiskSpace: %v", err)
			}
		})
	}
}

package fetchlib

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// DEF_CHUNK_SIZE is the copy buffer size used while streaming a body to
// disk.
const DEF_CHUNK_SIZE = 32 * KB

// Writer streams response bodies into destination files. It creates
// missing parent directories, copies in fixed-size chunks so memory use
// stays flat regardless of resource size, and removes the partial file
// on any failure so a failed transfer never leaves a truncated file
// behind.
type Writer struct {
	fs        afero.Fs
	chunkSize int
}

// NewWriter creates a Writer over the given filesystem. A nil fs means
// the OS filesystem.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{
		fs:        fs,
		chunkSize: int(DEF_CHUNK_SIZE),
	}
}

// WriteStream consumes body into the file at dest and returns the byte
// count written. Filesystem failures come back as *WriteError; read
// failures propagate unwrapped so the caller can classify them. In
// either case the partial destination file has been deleted.
func (w *Writer) WriteStream(body io.Reader, dest string) (written int64, err error) {
	if dir := filepath.Dir(dest); dir != "" && dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return 0, &WriteError{Path: dest, Err: err}
		}
	}

	f, err := w.fs.Create(dest)
	if err != nil {
		return 0, &WriteError{Path: dest, Err: err}
	}

	cleanup := func() {
		f.Close()
		w.fs.Remove(dest)
	}

	buf := make([]byte, w.chunkSize)
	for {
		nr, rerr := body.Read(buf)
		if nr > 0 {
			nw, werr := f.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				cleanup()
				return written, &WriteError{Path: dest, Err: werr}
			}
			if nw < nr {
				cleanup()
				return written, &WriteError{Path: dest, Err: io.ErrShortWrite}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			cleanup()
			return written, rerr
		}
	}

	if err := f.Close(); err != nil {
		w.fs.Remove(dest)
		return written, &WriteError{Path: dest, Err: err}
	}
	return written, nil
}

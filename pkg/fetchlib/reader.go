package fetchlib

import "io"

// CallbackProxyReader wraps an io.Reader and invokes a callback
// synchronously after each read operation with the number of bytes read.
// Tasks use it to report streaming progress without buffering.
type CallbackProxyReader struct {
	r io.Reader
	c func(n int)
}

// NewCallbackProxyReader creates a CallbackProxyReader that wraps the
// given reader and calls the callback after each read with the byte count.
func NewCallbackProxyReader(reader io.Reader, callback func(n int)) *CallbackProxyReader {
	return &CallbackProxyReader{
		r: reader,
		c: callback,
	}
}

// Read reads from the underlying reader into b and invokes the callback
// with the number of bytes read.
func (p *CallbackProxyReader) Read(b []byte) (n int, err error) {
	n, err = p.r.Read(b)
	if n > 0 {
		p.c(n)
	}
	return
}

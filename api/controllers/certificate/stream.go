package certificate_controller

import (
	"fmt"
	"io"
)

const streamChunkSize = 32 * 1024

type flushWriter interface {
	io.Writer
	Flush() error
}

// streamDocument writes data in chunks, flushing after each one. It stops at
// the first failed write, which usually means the client went away.
func streamDocument(w flushWriter, data []byte, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = len(data)
	}

	for written := 0; len(data) > 0; {
		n := min(chunkSize, len(data))
		if _, err := w.Write(data[:n]); err != nil {
			return fmt.Errorf("write chunk at offset %d: %w", written, err)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush at offset %d: %w", written, err)
		}
		written += n
		data = data[n:]
	}
	return nil
}

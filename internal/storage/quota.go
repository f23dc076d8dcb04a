package storage

import (
	"errors"
	"io"
)

// ErrQuotaExceeded is returned by a QuotaReader once the configured
// byte quota has been consumed.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// QuotaReader meters bytes flowing from a request body into the object
// store and fails the transfer as soon as the quota is crossed. The
// payload is never buffered whole; the check happens chunk by chunk.
//
// The reader never yields more than quota bytes: a chunk that would
// cross the boundary is truncated at the boundary and the read returns
// ErrQuotaExceeded. Source errors, io.EOF included, pass through
// unchanged so the caller can tell a client disconnect apart from a
// quota violation.
type QuotaReader struct {
	src      io.Reader
	quota    int64
	read     int64
	exceeded bool
}

// NewQuotaReader wraps src with a byte quota. A negative quota is
// treated as zero.
func NewQuotaReader(src io.Reader, quota int64) *QuotaReader {
	if quota < 0 {
		quota = 0
	}
	return &QuotaReader{src: src, quota: quota}
}

func (q *QuotaReader) Read(p []byte) (int, error) {
	if q.exceeded {
		return 0, ErrQuotaExceeded
	}
	n, err := q.src.Read(p)
	if n > 0 {
		if q.read+int64(n) > q.quota {
			allowed := q.quota - q.read
			q.read = q.quota
			q.exceeded = true
			return int(allowed), ErrQuotaExceeded
		}
		q.read += int64(n)
	}
	return n, err
}

// BytesRead reports how many bytes have been yielded so far.
func (q *QuotaReader) BytesRead() int64 {
	return q.read
}

// Exceeded reports whether the quota was crossed. The MinIO client does
// not wrap reader errors, so the upload pipeline checks this instead of
// errors.Is on the put error.
func (q *QuotaReader) Exceeded() bool {
	return q.exceeded
}

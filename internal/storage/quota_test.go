package storage

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestQuotaReaderUnderQuota(t *testing.T) {
	src := strings.NewReader("hello world")
	qr := NewQuotaReader(src, 100)

	data, err := io.ReadAll(qr)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("got %q", data)
	}
	if qr.BytesRead() != 11 {
		t.Fatalf("bytes read = %d, want 11", qr.BytesRead())
	}
	if qr.Exceeded() {
		t.Fatal("quota reported exceeded")
	}
}

func TestQuotaReaderExactQuota(t *testing.T) {
	payload := bytes.Repeat([]byte("a"), 1000)
	qr := NewQuotaReader(bytes.NewReader(payload), 1000)

	data, err := io.ReadAll(qr)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(data) != 1000 {
		t.Fatalf("got %d bytes, want 1000", len(data))
	}
	if qr.Exceeded() {
		t.Fatal("payload equal to the quota must not trip it")
	}
}

func TestQuotaReaderOverQuota(t *testing.T) {
	payload := bytes.Repeat([]byte("b"), 1200)
	qr := NewQuotaReader(bytes.NewReader(payload), 1000)

	data, err := io.ReadAll(qr)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
	if len(data) != 1000 {
		t.Fatalf("yielded %d bytes, must never exceed the 1000 byte quota", len(data))
	}
	if !qr.Exceeded() {
		t.Fatal("Exceeded() = false after quota violation")
	}

	// Further reads keep failing.
	n, err := qr.Read(make([]byte, 16))
	if n != 0 || !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("subsequent read = (%d, %v)", n, err)
	}
}

func TestQuotaReaderTruncatesBoundaryChunk(t *testing.T) {
	payload := bytes.Repeat([]byte("c"), 64)
	qr := NewQuotaReader(bytes.NewReader(payload), 10)

	buf := make([]byte, 64)
	n, err := qr.Read(buf)
	if n != 10 {
		t.Fatalf("boundary chunk yielded %d bytes, want 10", n)
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
	if qr.BytesRead() != 10 {
		t.Fatalf("bytes read = %d, want 10", qr.BytesRead())
	}
}

type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	n := copy(p, r.data)
	return n, nil
}

func TestQuotaReaderPassesSourceErrors(t *testing.T) {
	srcErr := errors.New("client went away")
	qr := NewQuotaReader(&failingReader{data: []byte("abc"), err: srcErr}, 100)

	_, err := io.ReadAll(qr)
	if !errors.Is(err, srcErr) {
		t.Fatalf("err = %v, want the source error unchanged", err)
	}
	if qr.Exceeded() {
		t.Fatal("source failure must not look like a quota violation")
	}
}

func TestQuotaReaderZeroQuota(t *testing.T) {
	qr := NewQuotaReader(strings.NewReader("x"), 0)
	n, err := qr.Read(make([]byte, 8))
	if n != 0 || !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("read = (%d, %v), want (0, ErrQuotaExceeded)", n, err)
	}

	// Negative quotas behave like zero.
	qr = NewQuotaReader(strings.NewReader("x"), -5)
	n, err = qr.Read(make([]byte, 8))
	if n != 0 || !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("read = (%d, %v), want (0, ErrQuotaExceeded)", n, err)
	}
}

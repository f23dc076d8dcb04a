package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payload := []byte("png bytes")
	err := store.PutObject(ctx, "bucket", "1/obj", bytes.NewReader(payload), int64(len(payload)), PutOptions{ContentType: "image/png"})
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}

	info, err := store.StatObject(ctx, "bucket", "1/obj")
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size != int64(len(payload)) || info.ContentType != "image/png" {
		t.Fatalf("stat = %+v", info)
	}

	reader, info, err := store.GetObject(ctx, "bucket", "1/obj")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	if !bytes.Equal(data, payload) || info.Size != int64(len(payload)) {
		t.Fatalf("got %q (size %d)", data, info.Size)
	}

	if err := store.RemoveObject(ctx, "bucket", "1/obj"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := store.StatObject(ctx, "bucket", "1/obj"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("stat after remove = %v", err)
	}
	// Removing again is a no-op.
	if err := store.RemoveObject(ctx, "bucket", "1/obj"); err != nil {
		t.Fatalf("second remove = %v", err)
	}
}

func TestMemoryStoreKeepsPartialOnReaderError(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	qr := NewQuotaReader(bytes.NewReader(bytes.Repeat([]byte("z"), 50)), 20)
	err := store.PutObject(ctx, "bucket", "2/obj", qr, -1, PutOptions{ContentType: "image/gif"})
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("put err = %v, want ErrQuotaExceeded", err)
	}

	// The partial object stays behind, like a remote store that already
	// committed earlier parts. Cleanup happens a layer above.
	info, statErr := store.StatObject(ctx, "bucket", "2/obj")
	if statErr != nil {
		t.Fatalf("stat failed: %v", statErr)
	}
	if info.Size != 20 {
		t.Fatalf("partial size = %d, want 20", info.Size)
	}
}

func TestObjectKey(t *testing.T) {
	got := ObjectKey(42, "abc-def")
	if got != "42/abc-def" {
		t.Fatalf("ObjectKey = %q", got)
	}
}

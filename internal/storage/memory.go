package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore is an in-process Store used by tests and local
// development without a MinIO endpoint. Writes observe reader errors
// the same way the MinIO client does: a failed put may leave a
// partial object behind.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func memoryKey(bucket, object string) string {
	return bucket + "/" + object
}

// PutObject stores the reader's bytes under bucket/object.
func (s *MemoryStore) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts PutOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		// Keep the partial write, matching remote object stores that
		// may have committed earlier parts before the failure.
		s.mu.Lock()
		s.objects[memoryKey(bucket, object)] = memoryObject{data: data, contentType: opts.ContentType}
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.objects[memoryKey(bucket, object)] = memoryObject{data: data, contentType: opts.ContentType}
	s.mu.Unlock()
	return nil
}

// GetObject returns a reader over the stored bytes.
func (s *MemoryStore) GetObject(ctx context.Context, bucket, object string) (io.ReadCloser, ObjectInfo, error) {
	s.mu.Lock()
	obj, ok := s.objects[memoryKey(bucket, object)]
	s.mu.Unlock()
	if !ok {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	info := ObjectInfo{
		ObjectName:  object,
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

// StatObject reports metadata for a stored object.
func (s *MemoryStore) StatObject(ctx context.Context, bucket, object string) (ObjectInfo, error) {
	s.mu.Lock()
	obj, ok := s.objects[memoryKey(bucket, object)]
	s.mu.Unlock()
	if !ok {
		return ObjectInfo{}, ErrObjectNotFound
	}
	return ObjectInfo{
		ObjectName:  object,
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

// RemoveObject deletes a stored object. Missing keys are not an error.
func (s *MemoryStore) RemoveObject(ctx context.Context, bucket, object string) error {
	s.mu.Lock()
	delete(s.objects, memoryKey(bucket, object))
	s.mu.Unlock()
	return nil
}

// Len reports how many objects the store holds.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

package storage

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-process ObjectStore for tests.
type MemoryStore struct {
	BaseURL string

	mu        sync.Mutex
	objects   map[string]memoryObject
	putErr    map[string]error
	deleteErr error
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{BaseURL: baseURL, objects: make(map[string]memoryObject), putErr: make(map[string]error)}
}

// FailPuts makes every Put whose key starts with prefix fail with err.
func (m *MemoryStore) FailPuts(prefix string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putErr[prefix] = err
}

// FailDeletes makes every Delete fail with err.
func (m *MemoryStore) FailDeletes(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteErr = err
}

func (m *MemoryStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for prefix, err := range m.putErr {
		if strings.HasPrefix(key, prefix) {
			return err
		}
	}
	m.objects[bucket+"/"+key] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), obj.data...), nil
}

func (m *MemoryStore) Delete(ctx context.Context, bucket, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, bucket+"/"+key)
	return nil
}

func (m *MemoryStore) PublicURL(bucket, key string) string {
	return JoinURL(m.BaseURL, bucket, key)
}

// Keys lists stored objects as "<bucket>/<key>".
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

// ContentType reports the content type an object was stored with.
func (m *MemoryStore) ContentType(bucket, key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[bucket+"/"+key].contentType
}

var _ ObjectStore = (*MemoryStore)(nil)

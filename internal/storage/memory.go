package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryObject struct {
	contentType string
	data        []byte
}

// Memory keeps objects in process memory. Used for local development and
// tests; everything is lost on restart.
type Memory struct {
	publicURLs

	mu   sync.RWMutex
	objs map[string]memoryObject
}

// NewMemory returns an empty store whose URLs start with publicBaseURL.
func NewMemory(publicBaseURL string) *Memory {
	return &Memory{
		publicURLs: newPublicURLs(publicBaseURL),
		objs:       make(map[string]memoryObject),
	}
}

func (m *Memory) Driver() Driver { return DriverMemory }

func (m *Memory) Put(_ context.Context, key string, r io.Reader, contentType string) (Object, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Object{}, err
	}

	m.mu.Lock()
	m.objs[key] = memoryObject{contentType: contentType, data: b}
	m.mu.Unlock()

	return Object{Key: key, URL: m.URL(key), ContentType: contentType, Size: int64(len(b))}, nil
}

func (m *Memory) Get(_ context.Context, key string) (Object, io.ReadCloser, error) {
	m.mu.RLock()
	obj, ok := m.objs[key]
	m.mu.RUnlock()
	if !ok {
		return Object{}, nil, ErrNotFound
	}

	data := bytes.Clone(obj.data)
	info := Object{Key: key, URL: m.URL(key), ContentType: obj.contentType, Size: int64(len(data))}
	return info, io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objs, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objs)
}

package types

import "sync"

type SyncMap[V any] struct {
	data map[string]V
	lock *sync.RWMutex
}

func NewSyncMap[V any]() *SyncMap[V] {
	return &SyncMap[V]{
		data: make(map[string]V),
		lock: &sync.RWMutex{},
	}
}

func (m *SyncMap[V]) Get(id string) (V, bool) {
	m.lock.RLock()
	res, present := m.data[id]
	m.lock.RUnlock()

	return res, present
}

func (m *SyncMap[V]) Set(id string, item V) {
	m.lock.Lock()
	m.data[id] = item
	m.lock.Unlock()
}

func (m *SyncMap[V]) Remove(id string) {
	m.lock.Lock()
	delete(m.data, id)
	m.lock.Unlock()
}

func (m *SyncMap[V]) Size() int {
	m.lock.RLock()
	size := len(m.data)
	m.lock.RUnlock()

	return size
}

func (m *SyncMap[V]) Each(fn func(id string, item V)) {
	m.lock.RLock()
	for id, item := range m.data {
		fn(id, item)
	}
	m.lock.RUnlock()
}

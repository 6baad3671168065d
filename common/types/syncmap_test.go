package types

import (
	"sync"
	"testing"
)

func TestSyncMapBasics(t *testing.T) {
	m := NewSyncMap[int]()

	if _, present := m.Get("a"); present {
		t.Error("empty map should hold nothing")
	}

	m.Set("a", 1)
	m.Set("b", 2)

	if v, present := m.Get("a"); !present || v != 1 {
		t.Errorf("expected a=1, got %v (present=%v)", v, present)
	}
	if m.Size() != 2 {
		t.Errorf("expected size 2, got %d", m.Size())
	}

	m.Remove("a")
	if _, present := m.Get("a"); present {
		t.Error("removed key should be gone")
	}

	seen := make(map[string]int)
	m.Each(func(id string, item int) { seen[id] = item })
	if len(seen) != 1 || seen["b"] != 2 {
		t.Errorf("unexpected Each contents: %v", seen)
	}
}

func TestSyncMapConcurrentAccess(t *testing.T) {
	m := NewSyncMap[int]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set("key", n)
				m.Get("key")
				m.Size()
			}
		}(i)
	}
	wg.Wait()

	if _, present := m.Get("key"); !present {
		t.Error("key should survive concurrent writes")
	}
}

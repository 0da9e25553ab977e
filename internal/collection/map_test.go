package collection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 2, m.Len())

	v, ok = m.Take(2)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
	_, ok = m.Take(2)
	assert.False(t, ok)

	m.Delete(1)
	assert.Equal(t, 0, m.Len())
}

func TestSyncMap_Concurrent(t *testing.T) {
	m := NewSyncMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Put(i, i*i)
			_, _ = m.Get(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
}

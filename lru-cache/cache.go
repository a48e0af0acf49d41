package cache

import (
	"sync"
)

type Cache[K comparable, V any] interface {
	Get(key K, fetchFunc func() (V, int64, error)) (V, error)
	Remove(key K)
}

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

type node[K comparable, V any] struct {
	key K
	val V

	size int64

	next, prev *node[K, V]
}

type lru[K comparable, V any] struct {
	size int64

	head *node[K, V]
}

func newLru[K comparable, V any]() *lru[K, V] {
	head := &node[K, V]{}
	head.next = head
	head.prev = head

	return &lru[K, V]{
		size: 0,
		head: head,
	}
}

func (l *lru[K, V]) remove(n *node[K, V]) {
	if n.next != nil {
		n.next.prev = n.prev
		n.prev.next = n.next
		n.prev = nil
		n.next = nil

		l.size -= n.size
	}
}

func (l *lru[K, V]) insert(n *node[K, V]) {
	n.next = l.head.next
	n.prev = l.head
	l.head.next.prev = n
	l.head.next = n

	l.size += n.size
}

func (l *lru[K, V]) moveToHead(n *node[K, V]) {
	l.remove(n)
	l.insert(n)
}

func (l *lru[K, V]) back() *node[K, V] {
	n := l.head.prev
	if n == l.head {
		return nil
	}
	return n
}

// LRUCache keeps the most recently used values up to a total size of
// capacity. The most recently fetched entry is never evicted, even when it
// alone exceeds capacity.
type LRUCache[K comparable, V any] struct {
	capacity int64

	list  *lru[K, V]
	table map[K]*node[K, V]

	mu sync.Mutex
}

func NewLRUCache[K comparable, V any](capacity int64) *LRUCache[K, V] {
	cache := &LRUCache[K, V]{
		capacity: capacity,
		list:     newLru[K, V](),
		table:    make(map[K]*node[K, V]),
	}
	return cache
}

// Get returns the cached value for key, calling fetchFunc to produce it on a
// miss. Failed fetches are not cached.
func (c *LRUCache[K, V]) Get(key K, fetchFunc func() (V, int64, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.table[key]; ok {
		c.list.moveToHead(n)
		return n.val, nil
	}

	val, size, err := fetchFunc()
	if err != nil {
		return val, err
	}

	n := &node[K, V]{key: key, val: val, size: size}
	c.table[key] = n
	c.list.insert(n)

	for c.list.size > c.capacity {
		back := c.list.back()
		if back == nil || back == n {
			break
		}
		c.list.remove(back)
		delete(c.table, back.key)
	}

	return val, nil
}

func (c *LRUCache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.table[key]
	if ok {
		delete(c.table, n.key)
		c.list.remove(n)
	}
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.table)
}

// Size is the sum of the sizes of the cached entries.
func (c *LRUCache[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.list.size
}

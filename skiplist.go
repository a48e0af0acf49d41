package collections

import (
	"math/rand"
	"sync"

	"github.com/omelentyev/runtime/collections/compare"
	"github.com/omelentyev/runtime/collections/iterator"
)

type Node struct {
	key any
	val any

	forward []*Node
}

func NewNode(key, val any, height int) *Node {
	return &Node{
		key:     key,
		val:     val,
		forward: make([]*Node, height),
	}
}

// SkipList is an ordered map whose keys may be of any type the comparator
// can order. Comparison errors abort the operation and are returned as is.
type SkipList struct {
	mu sync.RWMutex

	maxHeight int
	curHeight int
	prob      float32
	length    int

	head *Node

	cmp compare.Comparator
}

// NewSkiplist creates an empty list ordered by cmp, or by DefaultComparator
// when cmp is nil.
func NewSkiplist(cmp compare.Comparator) *SkipList {
	if cmp == nil {
		cmp = DefaultComparator
	}
	list := SkipList{
		maxHeight: MaxSkipListHeight,
		curHeight: 1,
		prob:      SkipListP,
		head:      NewNode(nil, nil, MaxSkipListHeight),

		cmp: cmp,
	}
	return &list
}

func (l *SkipList) findGreaterOrEqual(key any, prev []*Node) (*Node, error) {
	node := l.head
	for i := l.curHeight - 1; i >= 0; i-- {
		for next := node.forward[i]; next != nil; next = node.forward[i] {
			c, err := l.cmp.Compare(next.key, key)
			if err != nil {
				return nil, err
			}
			if c >= 0 {
				break
			}
			node = next
		}
		if prev != nil {
			prev[i] = node
		}
	}
	return node.forward[0], nil
}

func (l *SkipList) matches(node *Node, key any) (bool, error) {
	if node == nil {
		return false, nil
	}
	c, err := l.cmp.Compare(node.key, key)
	return c == 0, err
}

func (l *SkipList) Get(key any) (val any, exist bool, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	node, err := l.findGreaterOrEqual(key, nil)
	if err != nil {
		return nil, false, err
	}
	if ok, err := l.matches(node, key); !ok {
		return nil, false, err
	}
	return node.val, true, nil
}

// Insert adds key with val, replacing the value of an equal key.
func (l *SkipList) Insert(key, val any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := make([]*Node, l.maxHeight)
	node, err := l.findGreaterOrEqual(key, prev)
	if err != nil {
		return err
	}
	if ok, err := l.matches(node, key); err != nil {
		return err
	} else if ok {
		node.val = val
		return nil
	}

	height := l.randomHeight()
	newNode := NewNode(key, val, height)
	if height > l.curHeight {
		for i := l.curHeight; i < height; i++ {
			prev[i] = l.head
		}
		l.curHeight = height
	}

	for i := 0; i < height; i++ {
		newNode.forward[i] = prev[i].forward[i]
		prev[i].forward[i] = newNode
	}
	l.length++
	return nil
}

func (l *SkipList) Delete(key any) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := make([]*Node, l.maxHeight)
	node, err := l.findGreaterOrEqual(key, prev)
	if err != nil {
		return false, err
	}
	if ok, err := l.matches(node, key); !ok {
		return false, err
	}

	for i := range node.forward {
		if prev[i].forward[i] == node {
			prev[i].forward[i] = node.forward[i]
		}
	}
	for l.curHeight > 1 && l.head.forward[l.curHeight-1] == nil {
		l.curHeight--
	}
	l.length--
	return true, nil
}

func (l *SkipList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.length
}

func (l *SkipList) randomHeight() int {
	height := 1
	for height < l.maxHeight && rand.Float32() < l.prob {
		height++
	}
	return height
}

// SkipListIter is positioned on the first entry when created. Each call
// holds the list's read lock, so entries inserted or deleted between calls
// may or may not be observed.
type SkipListIter struct {
	list *SkipList
	node *Node
}

var _ iterator.Iterator = (*SkipListIter)(nil)

func NewSkiplistIterator(list *SkipList) *SkipListIter {
	i := &SkipListIter{list: list}
	i.First()
	return i
}

func (i *SkipListIter) First() {
	i.list.mu.RLock()
	defer i.list.mu.RUnlock()

	i.node = i.list.head.forward[0]
}

func (i *SkipListIter) Key() any {
	return i.node.key
}

func (i *SkipListIter) Value() any {
	i.list.mu.RLock()
	defer i.list.mu.RUnlock()

	return i.node.val
}

func (i *SkipListIter) Next() bool {
	i.list.mu.RLock()
	defer i.list.mu.RUnlock()

	if i.node != nil {
		i.node = i.node.forward[0]
	}
	return i.node != nil
}

func (i *SkipListIter) Seek(key any) error {
	i.list.mu.RLock()
	defer i.list.mu.RUnlock()

	n, err := i.list.findGreaterOrEqual(key, nil)
	if err != nil {
		return err
	}
	i.node = n
	return nil
}

func (i *SkipListIter) Valid() bool {
	return i.node != nil
}

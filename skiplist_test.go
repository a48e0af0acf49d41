package collections

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/omelentyev/runtime/collections/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testList struct {
	t    *testing.T
	list *SkipList
}

func newTestList(t *testing.T, cmp compare.Comparator) *testList {
	return &testList{
		t:    t,
		list: NewSkiplist(cmp),
	}
}

func (l *testList) insert(key, val any) {
	if err := l.list.Insert(key, val); err != nil {
		_, file, line, _ := runtime.Caller(1)
		l.t.Errorf("\n%v:%v: insert %v: %v", file, line, key, err)
	}
}

func (l *testList) get(key, expect any) {
	val, exist, err := l.list.Get(key)
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		l.t.Errorf("\n%v:%v: get %v: %v", file, line, key, err)
		return
	}

	if expect == nil {
		if exist {
			l.t.Errorf("\n%v:%v: invalid value, expect nil, got: %v", file, line, val)
		}
	} else if expect != val {
		l.t.Errorf("\n%v:%v: invalid value, expect: %v, got: %v", file, line, expect, val)
	}
}

func (l *testList) keys() []any {
	keys := make([]any, 0, l.list.Len())
	for it := NewSkiplistIterator(l.list); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestListReadWrite(t *testing.T) {
	list := newTestList(t, nil)
	list.insert("k1", "v1")
	list.insert("k2", "v2")
	list.insert("k3", "v3")
	list.get("k1", "v1")
	list.get("k2", "v2")
	list.get("k3", "v3")
	list.get("k4", nil)

	list.insert("k2", "v2'")
	list.get("k2", "v2'")
	assert.Equal(t, 3, list.list.Len())
}

func TestListCollationOrder(t *testing.T) {
	swedish, err := compare.New("sv")
	require.NoError(t, err)

	words := []any{"öl", "zebra", "Äpple", "apa", "ål", "Bok"}

	list := newTestList(t, swedish)
	for _, w := range words {
		list.insert(w, nil)
	}
	assert.Equal(t, []any{"apa", "Bok", "zebra", "ål", "Äpple", "öl"}, list.keys())

	list = newTestList(t, compare.DefaultInvariant())
	for _, w := range words {
		list.insert(w, nil)
	}
	assert.Equal(t, []any{"ål", "apa", "Äpple", "Bok", "öl", "zebra"}, list.keys())
}

func TestListDelete(t *testing.T) {
	list := newTestList(t, nil)
	for i := 0; i < 100; i++ {
		list.insert(compare.Of(i), i)
	}

	for i := 0; i < 100; i += 2 {
		deleted, err := list.list.Delete(compare.Of(i))
		require.NoError(t, err)
		assert.True(t, deleted)
	}
	deleted, err := list.list.Delete(compare.Of(0))
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, 50, list.list.Len())
	list.get(compare.Of(2), nil)
	list.get(compare.Of(3), 3)

	keys := list.keys()
	require.Len(t, keys, 50)
	for i, k := range keys {
		assert.Equal(t, compare.Of(2*i+1), k)
	}

	for i := 1; i < 100; i += 2 {
		_, err := list.list.Delete(compare.Of(i))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, list.list.Len())
	assert.Empty(t, list.keys())
}

func TestListSeek(t *testing.T) {
	list := newTestList(t, nil)
	for i := 0; i < 50; i += 5 {
		list.insert(compare.Of(i), fmt.Sprint(i))
	}

	it := NewSkiplistIterator(list.list)
	require.NoError(t, it.Seek(compare.Of(12)))
	require.True(t, it.Valid())
	assert.Equal(t, compare.Of(15), it.Key())
	assert.Equal(t, "15", it.Value())

	require.NoError(t, it.Seek(compare.Of(20)))
	assert.Equal(t, compare.Of(20), it.Key())
	assert.True(t, it.Next())
	assert.Equal(t, compare.Of(25), it.Key())

	require.NoError(t, it.Seek(compare.Of(46)))
	assert.False(t, it.Valid())

	it.First()
	assert.Equal(t, compare.Of(0), it.Key())
}

func TestListComparisonErrors(t *testing.T) {
	list := newTestList(t, nil)
	list.insert("a", 1)

	err := list.list.Insert(7, "seven")
	assert.ErrorIs(t, err, compare.ErrNotComparable)

	_, _, err = list.list.Get(struct{}{})
	assert.ErrorIs(t, err, compare.ErrNotComparable)

	_, err = list.list.Delete(3.5)
	assert.ErrorIs(t, err, compare.ErrNotComparable)

	assert.Error(t, NewSkiplistIterator(list.list).Seek(8))
	assert.Equal(t, 1, list.list.Len())
}

func TestListConcurrentAccess(t *testing.T) {
	list := NewSkiplist(nil)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				key := compare.Of(g*1000 + i)
				assert.NoError(t, list.Insert(key, i))
				_, ok, err := list.Get(key)
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 1000, list.Len())
}

package mock

import (
	"bytes"
	"io"
	"sort"
	"sync"

	sdkTypes "github.com/cosmos/cosmos-sdk/types"
)

// NewMultiStore returns a multistore backed by in-memory maps for testing
func NewMultiStore() sdkTypes.MultiStore {
	return TestMultiStore{kvstore: make(map[string]sdkTypes.KVStore)}
}

type TestMultiStore struct {
	kvstore map[string]sdkTypes.KVStore
}

func (t TestMultiStore) GetStoreType() sdkTypes.StoreType {
	panic("implement me")
}

func (t TestMultiStore) CacheWrap() sdkTypes.CacheWrap {
	panic("implement me")
}

func (t TestMultiStore) CacheWrapWithTrace(_ io.Writer, _ sdkTypes.TraceContext) sdkTypes.CacheWrap {
	panic("implement me")
}

func (t TestMultiStore) CacheMultiStore() sdkTypes.CacheMultiStore {
	panic("implement me")
}

func (t TestMultiStore) CacheMultiStoreWithVersion(_ int64) (sdkTypes.CacheMultiStore, error) {
	panic("implement me")
}

func (t TestMultiStore) GetStore(_ sdkTypes.StoreKey) sdkTypes.Store {
	panic("implement me")
}

func (t TestMultiStore) GetKVStore(key sdkTypes.StoreKey) sdkTypes.KVStore {
	if store, ok := t.kvstore[key.String()]; ok {
		return store
	}

	store := NewTestKVStore()
	t.kvstore[key.String()] = store
	return store
}

func (t TestMultiStore) TracingEnabled() bool {
	panic("implement me")
}

func (t TestMultiStore) SetTracer(_ io.Writer) sdkTypes.MultiStore {
	panic("implement me")
}

func (t TestMultiStore) SetTracingContext(_ sdkTypes.TraceContext) sdkTypes.MultiStore {
	panic("implement me")
}

// NewTestKVStore returns a map-backed KVStore for testing
func NewTestKVStore() sdkTypes.KVStore {
	return TestKVStore{mutex: &sync.RWMutex{}, store: make(map[string][]byte)}
}

type TestKVStore struct {
	mutex *sync.RWMutex
	store map[string][]byte
}

func (t TestKVStore) GetStoreType() sdkTypes.StoreType {
	panic("implement me")
}

func (t TestKVStore) CacheWrap() sdkTypes.CacheWrap {
	panic("implement me")
}

func (t TestKVStore) CacheWrapWithTrace(_ io.Writer, _ sdkTypes.TraceContext) sdkTypes.CacheWrap {
	panic("implement me")
}

func (t TestKVStore) Get(key []byte) []byte {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.store[string(key)]
}

func (t TestKVStore) Has(key []byte) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	_, ok := t.store[string(key)]
	return ok
}

func (t TestKVStore) Set(key, value []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.store[string(key)] = value
}

func (t TestKVStore) Delete(key []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.store, string(key))
}

func (t TestKVStore) Iterator(start, end []byte) sdkTypes.Iterator {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return newKVIterator(start, end, t.store)
}

func (t TestKVStore) ReverseIterator(start, end []byte) sdkTypes.Iterator {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	iter := newKVIterator(start, end, t.store)

	// the iterator comes back sorted in ascending order, so flip it
	for i, j := 0, len(iter.keys)-1; i < j; i, j = i+1, j-1 {
		iter.keys[i], iter.keys[j] = iter.keys[j], iter.keys[i]
		iter.values[i], iter.values[j] = iter.values[j], iter.values[i]
	}

	iter.start, iter.end = end, start

	return iter
}

type TestStoreKey string

// NewKVStoreKey provides a simple store key for testing
func NewKVStoreKey(key string) sdkTypes.StoreKey {
	return TestStoreKey(key)
}

func (t TestStoreKey) Name() string {
	return string(t)
}

func (t TestStoreKey) String() string {
	return string(t)
}

type kvIterator struct {
	keys       [][]byte
	values     [][]byte
	index      int
	start, end []byte
}

func newKVIterator(start, end []byte, content map[string][]byte) *kvIterator {
	keys := make([][]byte, 0)

	for k := range content {
		b := []byte(k)

		if (start == nil && end == nil) || (bytes.Compare(b, start) >= 0 && bytes.Compare(b, end) < 0) {
			// copy so iterating and writing cannot race
			temp := make([]byte, len(b))
			copy(temp, b)
			keys = append(keys, temp)
		}
	}

	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })

	values := make([][]byte, len(keys))
	for i := 0; i < len(keys); i++ {
		value := content[string(keys[i])]
		temp := make([]byte, len(value))
		copy(temp, value)

		values[i] = temp
	}

	return &kvIterator{
		keys:   keys,
		values: values,
		index:  0,
		start:  start,
		end:    end,
	}
}

func (it *kvIterator) Domain() (start []byte, end []byte) {
	return it.start, it.end
}

func (it *kvIterator) Valid() bool {
	return it.index < len(it.keys)
}

func (it *kvIterator) Next() {
	it.index++
}

func (it *kvIterator) Key() (key []byte) {
	if !it.Valid() {
		panic("iterator position out of bounds")
	}

	return it.keys[it.index]
}

func (it *kvIterator) Value() (value []byte) {
	if !it.Valid() {
		panic("iterator position out of bounds")
	}

	return it.values[it.index]
}

func (it *kvIterator) Error() error {
	return nil
}

func (it *kvIterator) Close() error {
	return nil
}

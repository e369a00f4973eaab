package mock

import (
	"testing"

	sdkTypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
)

var _ sdkTypes.Iterator = &kvIterator{}

func TestTestKVStore_Iterator(t *testing.T) {
	store := NewTestKVStore()
	store.Set([]byte("a"), []byte("1"))
	store.Set([]byte("b"), []byte("2"))
	store.Set([]byte("c"), []byte("3"))

	var iter sdkTypes.Iterator = store.Iterator(nil, nil)

	var keys, values []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
		values = append(values, string(iter.Value()))
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)
	assert.NoError(t, iter.Error())
	assert.NoError(t, iter.Close())
}

func TestTestKVStore_ReverseIterator(t *testing.T) {
	store := NewTestKVStore()
	store.Set([]byte("a"), []byte("1"))
	store.Set([]byte("b"), []byte("2"))

	iter := store.ReverseIterator(nil, nil)
	defer func() { assert.NoError(t, iter.Close()) }()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}

	assert.Equal(t, []string{"b", "a"}, keys)
}

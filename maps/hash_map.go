// Package maps provides a hash map for keys that hash themselves, such as
// numeric.Value. Lookups go through the key's own hash and equality instead
// of Go's built-in map key semantics.
package maps

import (
	"iter"

	"github.com/amp-labs/amp-numeric/collectable"
	"github.com/amp-labs/amp-numeric/hashing"
)

// HashFunc maps a key to its bucket.
type HashFunc func(hashing.Hashable) (uint64, error)

// KeyValuePair is one entry of a HashMap.
type KeyValuePair[K collectable.Collectable[K], V any] struct {
	Key   K
	Value V
}

// HashMap stores entries in buckets chosen by the key's 64-bit hash.
// Keys with the same hash share a bucket and are told apart with Equals, so
// collisions cost time but never correctness.
//
// A key that is not equal to itself, such as a wrapped NaN, can be added but
// never found again. This matches how Go's built-in maps treat NaN keys.
//
// HashMap is not safe for concurrent use.
type HashMap[K collectable.Collectable[K], V any] struct {
	hash    HashFunc
	buckets map[uint64][]KeyValuePair[K, V]
	size    int
}

// NewHashMap returns an empty map that hashes keys with hashing.Sum64.
func NewHashMap[K collectable.Collectable[K], V any]() *HashMap[K, V] {
	return NewHashMapWith[K, V](hashing.Sum64)
}

// NewHashMapWith returns an empty map that hashes keys with hash.
func NewHashMapWith[K collectable.Collectable[K], V any](hash HashFunc) *HashMap[K, V] {
	return &HashMap[K, V]{
		hash:    hash,
		buckets: make(map[uint64][]KeyValuePair[K, V]),
	}
}

func (m *HashMap[K, V]) find(key K) (uint64, int, error) {
	code, err := m.hash(key)
	if err != nil {
		return 0, -1, err
	}

	for i, entry := range m.buckets[code] {
		if key.Equals(entry.Key) {
			return code, i, nil
		}
	}

	return code, -1, nil
}

// Get returns the value stored for key.
func (m *HashMap[K, V]) Get(key K) (V, bool, error) {
	var zero V

	code, idx, err := m.find(key)
	if err != nil || idx < 0 {
		return zero, false, err
	}

	return m.buckets[code][idx].Value, true, nil
}

// GetOrElse returns the value stored for key, or defaultValue if there is none.
func (m *HashMap[K, V]) GetOrElse(key K, defaultValue V) (V, error) {
	value, found, err := m.Get(key)
	if err != nil || !found {
		return defaultValue, err
	}

	return value, nil
}

// Add inserts or replaces the value for key.
func (m *HashMap[K, V]) Add(key K, value V) error {
	code, idx, err := m.find(key)
	if err != nil {
		return err
	}

	if idx >= 0 {
		m.buckets[code][idx].Value = value

		return nil
	}

	m.buckets[code] = append(m.buckets[code], KeyValuePair[K, V]{Key: key, Value: value})
	m.size++

	return nil
}

// Remove deletes key. Removing a missing key is a no-op.
func (m *HashMap[K, V]) Remove(key K) error {
	code, idx, err := m.find(key)
	if err != nil || idx < 0 {
		return err
	}

	bucket := m.buckets[code]
	last := len(bucket) - 1
	bucket[idx] = bucket[last]
	bucket[last] = KeyValuePair[K, V]{}
	bucket = bucket[:last]

	if len(bucket) == 0 {
		delete(m.buckets, code)
	} else {
		m.buckets[code] = bucket
	}

	m.size--

	return nil
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) (bool, error) {
	_, idx, err := m.find(key)

	return idx >= 0, err
}

// Size returns the number of entries.
func (m *HashMap[K, V]) Size() int {
	return m.size
}

// Clear removes every entry.
func (m *HashMap[K, V]) Clear() {
	m.buckets = make(map[uint64][]KeyValuePair[K, V])
	m.size = 0
}

// Seq iterates over all entries in no particular order.
func (m *HashMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, entry := range bucket {
				if !yield(entry.Key, entry.Value) {
					return
				}
			}
		}
	}
}

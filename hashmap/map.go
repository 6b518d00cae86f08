package hashmap // import "github.com/RomanDudnik/HashMapMethods/hashmap"

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/hash"
	"jsouthworth.net/go/seq"
)

const (
	// DefaultCapacity is the number of buckets allocated by Empty.
	DefaultCapacity = 16
	// LoadFactor is the ratio of keys to buckets at which the map
	// grows.
	LoadFactor = 0.5
)

var errCapacity = errors.New("capacity must be at least 1")

// Map is a mutable hashmap. Keys are spread over an array of buckets by
// their hash and collisions are resolved by chaining.
type Map[K comparable, V any] struct {
	seed     uintptr
	size     int
	buckets  []*Chain[K, V]
	onResize func(oldCap, newCap int)
}

// Empty returns a new empty map with DefaultCapacity buckets and a
// random hash seed.
func Empty[K comparable, V any]() *Map[K, V] {
	return New[K, V](DefaultCapacity)
}

// New returns a new empty map with the given number of buckets. New
// panics if capacity is less than 1.
func New[K comparable, V any](capacity int) *Map[K, V] {
	if capacity < 1 {
		panic(errCapacity)
	}
	return &Map[K, V]{
		seed:    uintptr(rand.Uint64()),
		buckets: make([]*Chain[K, V], capacity),
	}
}

// From returns a new map holding the entries of a go native map.
func From[K comparable, V any](native map[K]V) *Map[K, V] {
	out := Empty[K, V]()
	for key, val := range native {
		out.Insert(key, val)
	}
	return out
}

// FromEntries returns a new map holding entries. Later entries win
// over earlier entries with an equal key.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	out := Empty[K, V]()
	for _, e := range entries {
		out.Insert(e.key, e.value)
	}
	return out
}

// Insert associates value with key. If the key was already present
// its previous value is returned and replaced is true.
//
// The load factor is checked before anything else, so an insert that
// only overwrites an existing key may still grow the map.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if float64(len(m.buckets))*LoadFactor <= float64(m.size) {
		m.resize()
	}
	idx := m.indexFor(key)
	bucket := m.buckets[idx]
	if bucket == nil {
		bucket = &Chain[K, V]{}
		m.buckets[idx] = bucket
	}
	prev, replaced = bucket.Insert(NewEntry(key, value))
	if !replaced {
		m.size++
	}
	return prev, replaced
}

// Lookup returns the value associated with key and whether the key
// exists in the map.
func (m *Map[K, V]) Lookup(key K) (value V, found bool) {
	bucket := m.buckets[m.indexFor(key)]
	if bucket == nil {
		return value, false
	}
	return bucket.Lookup(key)
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Delete removes key from the map and returns the value it held. If
// the key was absent found is false and the map is unchanged.
func (m *Map[K, V]) Delete(key K) (value V, found bool) {
	bucket := m.buckets[m.indexFor(key)]
	if bucket == nil {
		return value, false
	}
	value, found = bucket.Delete(key)
	if found {
		m.size--
	}
	return value, found
}

// Length returns the number of entries in the map.
func (m *Map[K, V]) Length() int {
	return m.size
}

// Capacity returns the number of buckets.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// OnResize registers fn to be called after every growth of the map
// with the capacity before and after. Passing nil removes the hook.
func (m *Map[K, V]) OnResize(fn func(oldCap, newCap int)) {
	m.onResize = fn
}

// Range calls do on each entry in bucket order, and within a bucket in
// chain order, until do returns false.
func (m *Map[K, V]) Range(do func(key K, value V) bool) {
	for _, bucket := range m.buckets {
		if bucket == nil {
			continue
		}
		cont := bucket.Range(func(e Entry[K, V]) bool {
			return do(e.key, e.value)
		})
		if !cont {
			return
		}
	}
}

// Seq returns a lazy sequence of the map's entries. Each element is an
// Entry[K, V]. Seq returns nil for an empty map.
func (m *Map[K, V]) Seq() seq.Sequence {
	return mapSeqNew(m.buckets, 0)
}

// AsNative returns the map converted to a go native map type.
func (m *Map[K, V]) AsNative() map[K]V {
	out := make(map[K]V, m.size)
	m.Range(func(key K, val V) bool {
		out[key] = val
		return true
	})
	return out
}

// Equal tests if two maps are Equal by comparing the entries of each.
// Values are compared with dyn.Equal.
func (m *Map[K, V]) Equal(o interface{}) bool {
	other, ok := o.(*Map[K, V])
	if !ok {
		return false
	}
	if m.Length() != other.Length() {
		return false
	}
	foundAll := true
	m.Range(func(key K, value V) bool {
		v, ok := other.Lookup(key)
		if !ok || !dyn.Equal(v, value) {
			foundAll = false
		}
		return foundAll
	})
	return foundAll
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Range(func(key K, val V) bool {
		fmt.Fprintf(&b, "%s ", NewEntry(key, val))
		return true
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// indexFor maps key to a bucket. hash.Any yields an unsigned value so
// the index is never negative.
func (m *Map[K, V]) indexFor(key K) int {
	return bucketIndex(hash.Any(key, m.seed), len(m.buckets))
}

func bucketIndex(h uintptr, capacity int) int {
	return int(h % uintptr(capacity))
}

// resize doubles the number of buckets. Entries are copied into a fresh
// bucket array which replaces the old one only once it is complete.
// Keys are already distinct so entries are pushed directly onto their
// new chains without going back through Insert.
func (m *Map[K, V]) resize() {
	oldCap := len(m.buckets)
	newCap := oldCap * 2
	buckets := make([]*Chain[K, V], newCap)
	size := 0
	for _, bucket := range m.buckets {
		if bucket == nil {
			continue
		}
		for n := bucket.head; n != nil; n = n.next {
			idx := bucketIndex(hash.Any(n.entry.key, m.seed), newCap)
			if buckets[idx] == nil {
				buckets[idx] = &Chain[K, V]{}
			}
			buckets[idx].push(n.entry)
			size++
		}
	}
	m.buckets = buckets
	m.size = size
	if m.onResize != nil {
		m.onResize(oldCap, newCap)
	}
}

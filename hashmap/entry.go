package hashmap

import "fmt"

// Entry is a map entry. Each entry consists of a key and value. The key
// never changes once the entry is created; the value is replaced in
// place when the key is inserted again.
type Entry[K comparable, V any] struct {
	key   K
	value V
}

// NewEntry returns an entry holding key and value.
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key returns the key of the entry.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Value returns the value of the entry.
func (e Entry[K, V]) Value() V {
	return e.value
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.key, e.value)
}

type node[K comparable, V any] struct {
	entry Entry[K, V]
	next  *node[K, V]
}

// Package stringmap wraps hashmap.Map as a map of strings to strings
// whose values can be walked with a sequence or an iterator.
package stringmap // import "github.com/RomanDudnik/HashMapMethods/stringmap"

import (
	"github.com/RomanDudnik/HashMapMethods/hashmap"
	"jsouthworth.net/go/seq"
)

// Map is a string keyed, string valued map.
type Map struct {
	backingMap *hashmap.Map[string, string]
}

// New returns an empty map with the default number of buckets.
func New() *Map {
	return &Map{backingMap: hashmap.Empty[string, string]()}
}

// NewWithCapacity returns an empty map with capacity buckets. It panics
// if capacity is less than 1.
func NewWithCapacity(capacity int) *Map {
	return &Map{backingMap: hashmap.New[string, string](capacity)}
}

// Put associates value with key, replacing any previous value.
func (m *Map) Put(key, value string) {
	m.backingMap.Insert(key, value)
}

// Get returns the value for key and whether it exists.
func (m *Map) Get(key string) (string, bool) {
	return m.backingMap.Lookup(key)
}

// Remove deletes key from the map if present.
func (m *Map) Remove(key string) {
	m.backingMap.Delete(key)
}

// Length returns the number of keys in the map.
func (m *Map) Length() int {
	return m.backingMap.Length()
}

// Capacity returns the number of buckets in the backing map.
func (m *Map) Capacity() int {
	return m.backingMap.Capacity()
}

// OnResize registers a function called whenever the backing map grows.
func (m *Map) OnResize(fn func(oldCap, newCap int)) {
	m.backingMap.OnResize(fn)
}

// Values returns a lazy sequence of the values in the map, or nil if
// the map is empty. The order follows the buckets of the backing map
// and is neither insertion order nor stable across growth.
func (m *Map) Values() seq.Sequence {
	return valueSeqNew(m.backingMap.Seq())
}

// Iterator returns a single pass iterator over the values.
func (m *Map) Iterator() *ValueIterator {
	return &ValueIterator{entries: m.backingMap.Iterator()}
}

// Range calls do on each value until do returns false.
func (m *Map) Range(do func(value string) bool) {
	m.backingMap.Range(func(_, value string) bool {
		return do(value)
	})
}

// String returns a string representation of the map.
func (m *Map) String() string {
	return m.backingMap.String()
}

// ValueIterator walks the values of a Map once. It is invalidated by any
// change to the map.
type ValueIterator struct {
	entries *hashmap.Iterator[string, string]
}

// HasNext is true when there are more values.
func (i *ValueIterator) HasNext() bool {
	return i.entries.HasNext()
}

// Next returns the next value. Next panics if HasNext is false.
func (i *ValueIterator) Next() string {
	_, v := i.entries.Next()
	return v
}

type valueSeq struct {
	entries seq.Sequence
}

func valueSeqNew(entries seq.Sequence) seq.Sequence {
	if entries == nil {
		return nil
	}
	return &valueSeq{entries: entries}
}

func (s *valueSeq) First() interface{} {
	return s.entries.First().(hashmap.Entry[string, string]).Value()
}

func (s *valueSeq) Next() seq.Sequence {
	return valueSeqNew(s.entries.Next())
}

func (s *valueSeq) String() string {
	return seq.ConvertToString(s)
}

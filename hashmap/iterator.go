package hashmap

import (
	"errors"

	"jsouthworth.net/go/seq"
)

var errExhausted = errors.New("Next called on an exhausted iterator")

// Iterator provides a single pass over the entries of a map in bucket
// order. Iterators are not safe for concurrent access and are
// invalidated by any change to the map they were created from.
type Iterator[K comparable, V any] struct {
	buckets []*Chain[K, V]
	bucket  int
	n       *node[K, V]
}

// Iterator returns an iterator positioned before the first entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{buckets: m.buckets, bucket: -1}
}

// HasNext is true when there are more elements to be iterated over.
func (i *Iterator[K, V]) HasNext() bool {
	if i.n != nil && i.n.next != nil {
		return true
	}
	return nextBucket(i.buckets, i.bucket+1) >= 0
}

// Next provides the next key value pair and advances the cursor. Next
// panics if HasNext is false.
func (i *Iterator[K, V]) Next() (key K, value V) {
	if i.n != nil && i.n.next != nil {
		i.n = i.n.next
	} else {
		b := nextBucket(i.buckets, i.bucket+1)
		if b < 0 {
			panic(errExhausted)
		}
		i.bucket = b
		i.n = i.buckets[b].head
	}
	return i.n.entry.key, i.n.entry.value
}

// nextBucket returns the index of the first non-empty bucket at or
// after from, or -1.
func nextBucket[K comparable, V any](buckets []*Chain[K, V], from int) int {
	for j := from; j < len(buckets); j++ {
		if b := buckets[j]; b != nil && b.head != nil {
			return j
		}
	}
	return -1
}

type mapSeq[K comparable, V any] struct {
	buckets []*Chain[K, V]
	bucket  int
	n       *node[K, V]
}

func mapSeqNew[K comparable, V any](buckets []*Chain[K, V], from int) seq.Sequence {
	b := nextBucket(buckets, from)
	if b < 0 {
		return nil
	}
	return &mapSeq[K, V]{
		buckets: buckets,
		bucket:  b,
		n:       buckets[b].head,
	}
}

func (s *mapSeq[K, V]) First() interface{} {
	return s.n.entry
}

func (s *mapSeq[K, V]) Next() seq.Sequence {
	if s.n.next != nil {
		return &mapSeq[K, V]{
			buckets: s.buckets,
			bucket:  s.bucket,
			n:       s.n.next,
		}
	}
	return mapSeqNew(s.buckets, s.bucket+1)
}

func (s *mapSeq[K, V]) String() string {
	return seq.ConvertToString(s)
}

package hashmap

import (
	"fmt"
	"strings"

	"jsouthworth.net/go/seq"
)

// Chain is a bucket of a Map. It holds, as a singly linked list, every
// entry whose key hashes to the same bucket index. The zero value is an
// empty chain ready to use.
type Chain[K comparable, V any] struct {
	head   *node[K, V]
	length int
}

// Insert places the entry in the chain. If an entry with an equal key
// already exists its value is replaced and the previous value is
// returned with replaced set to true. Otherwise the entry is appended
// to the end of the chain.
func (c *Chain[K, V]) Insert(e Entry[K, V]) (prev V, replaced bool) {
	if c.head == nil {
		c.head = &node[K, V]{entry: e}
		c.length = 1
		return prev, false
	}
	n := c.head
	for {
		if keysEqual(n.entry.key, e.key) {
			prev = n.entry.value
			n.entry.value = e.value
			return prev, true
		}
		if n.next == nil {
			break
		}
		n = n.next
	}
	n.next = &node[K, V]{entry: e}
	c.length++
	return prev, false
}

// Lookup returns the value stored for key and whether it was found.
func (c *Chain[K, V]) Lookup(key K) (value V, found bool) {
	for n := c.head; n != nil; n = n.next {
		if keysEqual(n.entry.key, key) {
			return n.entry.value, true
		}
	}
	return value, false
}

// Delete unlinks the entry for key and returns its value. If the key is
// not in the chain, found is false and the chain is unchanged.
func (c *Chain[K, V]) Delete(key K) (value V, found bool) {
	var prev *node[K, V]
	for n := c.head; n != nil; prev, n = n, n.next {
		if !keysEqual(n.entry.key, key) {
			continue
		}
		if prev == nil {
			c.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		c.length--
		return n.entry.value, true
	}
	return value, false
}

// Length returns the number of entries in the chain.
func (c *Chain[K, V]) Length() int {
	return c.length
}

// Range calls fn on each entry from head to tail until fn returns
// false. Range reports whether it reached the end of the chain.
func (c *Chain[K, V]) Range(fn func(Entry[K, V]) bool) bool {
	for n := c.head; n != nil; n = n.next {
		if !fn(n.entry) {
			return false
		}
	}
	return true
}

// Seq returns the entries of the chain as a sequence, or nil if the
// chain is empty.
func (c *Chain[K, V]) Seq() seq.Sequence {
	if c.head == nil {
		return nil
	}
	return &chainSeq[K, V]{n: c.head}
}

// String returns a string representation of the chain.
func (c *Chain[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "( ")
	c.Range(func(e Entry[K, V]) bool {
		fmt.Fprintf(&b, "%s ", e)
		return true
	})
	fmt.Fprint(&b, ")")
	return b.String()
}

// push links a new node for e in front of the head. It is only valid
// when the key of e is known to be absent from the chain.
func (c *Chain[K, V]) push(e Entry[K, V]) {
	c.head = &node[K, V]{entry: e, next: c.head}
	c.length++
}

type chainSeq[K comparable, V any] struct {
	n *node[K, V]
}

func (s *chainSeq[K, V]) First() interface{} {
	return s.n.entry
}

func (s *chainSeq[K, V]) Next() seq.Sequence {
	if s.n.next == nil {
		return nil
	}
	return &chainSeq[K, V]{n: s.n.next}
}

func (s *chainSeq[K, V]) String() string {
	return seq.ConvertToString(s)
}

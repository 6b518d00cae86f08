// Package hashset implements a mutable Set datastructure on top of hashmap
package hashset // import "github.com/RomanDudnik/HashMapMethods/hashset"

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RomanDudnik/HashMapMethods/hashmap"
	"jsouthworth.net/go/seq"
)

var errElemType = errors.New("sequence element has the wrong type for the set")
var errFromType = errors.New("From requires a *Set, []T, []interface{}, map[T]struct{}, seq.Seqable or seq.Sequence")

// Set is an unordered set of comparable elements.
type Set[T comparable] struct {
	backingMap *hashmap.Map[T, struct{}]
}

// Empty returns a new empty set.
func Empty[T comparable]() *Set[T] {
	return &Set[T]{
		backingMap: hashmap.Empty[T, struct{}](),
	}
}

// New returns a set containing the supplied elements.
func New[T comparable](elems ...T) *Set[T] {
	s := Empty[T]()
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// From builds a new set from one of several go types:
//
// *Set:
//    The elements are copied into a new set; the argument is not shared.
// []T:
//    The elements are passed to New.
// []interface{}:
//    Each element must be a T.
// map[T]struct{}:
//    The keys of the map are added.
// seq.Seqable:
//    Seq is called and the resulting sequence is added.
// seq.Sequence:
//    Every element of the sequence must be a T.
//
// A nil value yields the empty set. From panics on any other type or
// when an element is not a T.
func From[T comparable](value interface{}) *Set[T] {
	if value == nil {
		return Empty[T]()
	}
	switch v := value.(type) {
	case *Set[T]:
		return setFromSequence[T](v.Seq())
	case []T:
		return New(v...)
	case []interface{}:
		s := Empty[T]()
		for _, elem := range v {
			s.Add(asElem[T](elem))
		}
		return s
	case map[T]struct{}:
		s := Empty[T]()
		for elem := range v {
			s.Add(elem)
		}
		return s
	case seq.Seqable:
		return setFromSequence[T](v.Seq())
	case seq.Sequence:
		return setFromSequence[T](v)
	default:
		panic(errFromType)
	}
}

func asElem[T comparable](v interface{}) T {
	elem, ok := v.(T)
	if !ok {
		panic(errElemType)
	}
	return elem
}

func setFromSequence[T comparable](coll seq.Sequence) *Set[T] {
	s := Empty[T]()
	for ; coll != nil; coll = coll.Next() {
		s.Add(asElem[T](coll.First()))
	}
	return s
}

// Add adds an element to the set. Add reports whether the element was
// not already present.
func (s *Set[T]) Add(elem T) bool {
	_, replaced := s.backingMap.Insert(elem, struct{}{})
	return !replaced
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set[T]) Contains(elem T) bool {
	return s.backingMap.Contains(elem)
}

// Delete removes an element from the set. Delete reports whether the
// element was present.
func (s *Set[T]) Delete(elem T) bool {
	_, found := s.backingMap.Delete(elem)
	return found
}

// Range calls do on each element of the set until do returns false.
func (s *Set[T]) Range(do func(elem T) bool) {
	s.backingMap.Range(func(key T, _ struct{}) bool {
		return do(key)
	})
}

// Seq returns the elements of the set as a sequence, or nil if the set
// is empty.
func (s *Set[T]) Seq() seq.Sequence {
	return elemSeqNew[T](s.backingMap.Seq())
}

// Length returns the elements in the set.
func (s *Set[T]) Length() int {
	return s.backingMap.Length()
}

// String returns a string serialization of the set.
func (s *Set[T]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem T) bool {
		fmt.Fprintf(&b, "%v ", elem)
		return true
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

type elemSeq[T comparable] struct {
	entries seq.Sequence
}

func elemSeqNew[T comparable](entries seq.Sequence) seq.Sequence {
	if entries == nil {
		return nil
	}
	return &elemSeq[T]{entries: entries}
}

func (s *elemSeq[T]) First() interface{} {
	return s.entries.First().(hashmap.Entry[T, struct{}]).Key()
}

func (s *elemSeq[T]) Next() seq.Sequence {
	return elemSeqNew[T](s.entries.Next())
}

func (s *elemSeq[T]) String() string {
	return seq.ConvertToString(s)
}

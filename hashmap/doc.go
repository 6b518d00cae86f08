// Package hashmap implements a mutable hashmap built from a resizable
// array of buckets. Each bucket is a singly linked chain of entries and
// keys that hash to the same bucket are told apart by key equality.
//
// The map grows by doubling its capacity whenever the number of stored
// keys has reached half the number of buckets. The check is made before
// every insertion, including insertions that only replace the value of
// a key already present. The map never shrinks.
//
// A note about Key equality. If you would like to override the default
// go equality operator for keys in this map library implement the
// Equal(other interface{}) bool function for the type. Otherwise '=='
// will be used with all its restrictions. Keys that are equal must
// also hash the same; types may implement Hash() uintptr to control
// their hash.
//
// Maps are not safe for concurrent use.
package hashmap

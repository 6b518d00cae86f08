package hashmap

import "jsouthworth.net/go/dyn"

// Equaler allows a key type to decide equality itself instead of
// relying on '=='.
type Equaler interface {
	Equal(v interface{}) bool
}

func keysEqual[K comparable](k1, k2 K) bool {
	switch key := any(k1).(type) {
	case Equaler:
		return key.Equal(k2)
	default:
		return dyn.Equal(k1, k2)
	}
}

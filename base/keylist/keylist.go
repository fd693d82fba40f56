// Copyright (c) 2024, The my-nncf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list (slice) of values with a map
// from a comparable key to indexes, supporting fast lookup by key while
// preserving insertion order for iteration.
package keylist

import "fmt"

// List is an ordered list of Values with a parallel ordered list of Keys,
// and a key-to-index map for fast lookup. The zero value is usable.
type List[K comparable, V any] struct {
	// Values is the ordered slice of values.
	Values []V

	// Keys is the ordered slice of keys, parallel to [List.Values].
	Keys []K

	// indexes is the key-to-index map, built lazily.
	indexes map[K]int
}

// New returns a new [List]. The zero value is also usable directly.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int, len(kl.Keys))
		for i, k := range kl.Keys {
			kl.indexes[k] = i
		}
	}
}

// Len returns the number of items in the list. It is safe on a nil list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Set sets the given key to the given value, appending to the end of the
// list for a new key and replacing the value in place for an existing one,
// with the same semantics as a Go map assignment.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if i, ok := kl.indexes[key]; ok {
		kl.Values[i] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
}

// Add appends the given key and value, returning an error if the key is
// already present. See [List.Set] for replacing semantics.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already in the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
	return nil
}

// At returns the value for the given key, with the zero value returned for
// a missing key. See [List.AtTry] when the zero value is not diagnostic.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key, and false if the key is
// not in the list.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	kl.initIndexes()
	if i, ok := kl.indexes[key]; ok {
		return kl.Values[i], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, or -1 if not present.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.initIndexes()
	if i, ok := kl.indexes[key]; ok {
		return i
	}
	return -1
}

// Reset removes all entries from the list.
func (kl *List[K, V]) Reset() {
	kl.Keys = nil
	kl.Values = nil
	kl.indexes = nil
}

// String returns a string representation of the list in insertion order.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	return sv + "}"
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"cmp"
	"io"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// Map - ordered map holding a single tree
type Map[K any, V any] struct {
	tree *avl.Tree[K, V]

	inserts counter.Counter
	updates counter.Counter
	erases  counter.Counter

	findMisses  counter.Counter
	eraseMisses counter.Counter
}

// Statistics - operation counts since the map was created
type Statistics struct {
	Inserts     uint64 `json:"inserts"`
	Updates     uint64 `json:"updates"`
	Erases      uint64 `json:"erases"`
	FindMisses  uint64 `json:"find_misses"`  // Find, Get and Lookup of an absent key
	EraseMisses uint64 `json:"erase_misses"` // Erase of an absent key
	Rotations   uint64 `json:"rotations"`
}

// New - create an empty map for a naturally ordered key
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: avl.New[K, V](),
	}
}

// NewFunc - create an empty map with a specific key ordering
func NewFunc[K any, V any](compare avl.CompareFunc[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: avl.NewFunc[K, V](compare),
	}
}

// Insert - add a key, or overwrite the value of an existing key
func (m *Map[K, V]) Insert(key K, value V) {
	if m.tree.Insert(key, value) {
		m.inserts.Increment()
	} else {
		m.updates.Increment()
	}
}

// Erase - remove a key, nothing happens if the key is absent
func (m *Map[K, V]) Erase(key K) {
	if m.tree.Delete(key) {
		m.erases.Increment()
	} else {
		m.eraseMisses.Increment()
	}
}

// Find - the value stored for a key and true, or the zero value and
// false if the key is absent
func (m *Map[K, V]) Find(key K) (V, bool) {
	value, ok := m.tree.Search(key)
	if !ok {
		m.findMisses.Increment()
	}
	return value, ok
}

// Get - the value stored for a key or the zero value if absent
//
// a stored zero value cannot be told apart from an absent key, use
// Find when that matters
func (m *Map[K, V]) Get(key K) V {
	value, _ := m.Find(key)
	return value
}

// Lookup - the value stored for a key or fault.ErrKeyNotFound
func (m *Map[K, V]) Lookup(key K) (V, error) {
	value, ok := m.Find(key)
	if !ok {
		return value, fault.ErrKeyNotFound
	}
	return value, nil
}

// Contains - true if the key is present, not counted in the
// statistics
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.tree.Search(key)
	return ok
}

// Len - number of keys in the map
func (m *Map[K, V]) Len() int {
	return m.tree.Count()
}

// IsMyTreeBalanced - diagnostic check of the AVL balance of every node
//
// cached heights are recomputed while checking
func (m *Map[K, V]) IsMyTreeBalanced() bool {
	return m.tree.IsBalanced()
}

// Check - read only validation of ordering, heights and balance
func (m *Map[K, V]) Check() error {
	if !m.tree.CheckOrder() {
		return fault.ErrTreeUnordered
	}
	if !m.tree.CheckHeights() {
		return fault.ErrTreeUnbalanced
	}
	return nil
}

// Height - height of the underlying tree
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Print - ASCII graphic of the underlying tree, returns its depth
func (m *Map[K, V]) Print(w io.Writer, printData bool) int {
	return m.tree.Print(w, printData)
}

// Statistics - snapshot of the operation counters
func (m *Map[K, V]) Statistics() Statistics {
	return Statistics{
		Inserts:     m.inserts.Uint64(),
		Updates:     m.updates.Uint64(),
		Erases:      m.erases.Uint64(),
		FindMisses:  m.findMisses.Uint64(),
		EraseMisses: m.eraseMisses.Uint64(),
		Rotations:   m.tree.Rotations(),
	}
}

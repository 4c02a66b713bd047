// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/counter"
)

// CompareFunc - ordering of keys: negative if a < b, zero if a == b
// and positive if a > b
type CompareFunc[K any] func(a K, b K) int

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root      *Node[K, V]
	count     int
	compare   CompareFunc[K]
	rotations counter.Counter
}

// New - create an initially empty tree for a naturally ordered key
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree using a specific key
// ordering
func NewFunc[K any, V any](compare CompareFunc[K]) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Rotations - total single rotations performed since creation
func (tree *Tree[K, V]) Rotations() uint64 {
	return tree.rotations.Uint64()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // height of sub-tree rooted here, leaf = 1
}

// allocate a new leaf node
func newNode[K any, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// cached height, nil counts as zero
func height[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute height from the children
// must be called after any child pointer changes
func (p *Node[K, V]) fixHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// right height minus left height
// forceRecompute refreshes this node's cached height first
func (p *Node[K, V]) balanceFactor(forceRecompute bool) int {
	if forceRecompute {
		p.fixHeight()
	}
	return height(p.right) - height(p.left)
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return height(p)
}

// BalanceFactor - height(right) - height(left) from cached heights
func (p *Node[K, V]) BalanceFactor() int {
	return p.balanceFactor(false)
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

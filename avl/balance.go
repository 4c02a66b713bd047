// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote right child, returns new sub-tree root
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	// lower node first as new root depends on it
	p.fixHeight()
	p1.fixHeight()

	tree.rotations.Increment()
	return p1
}

// promote left child, returns new sub-tree root
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.fixHeight()
	p1.fixHeight()

	tree.rotations.Increment()
	return p1
}

// restore the balance of a node whose children have already been
// finalised, returns the possibly new sub-tree root
func (tree *Tree[K, V]) balance(p *Node[K, V]) *Node[K, V] {
	p.fixHeight()

	switch p.balanceFactor(false) {
	case +2: // right heavy
		if p.right.balanceFactor(false) < 0 {
			// double RL rotation
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)

	case -2: // left heavy
		if p.left.balanceFactor(false) > 0 {
			// double LR rotation
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	}
	return p
}

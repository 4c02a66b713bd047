// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree, returns true if an
// item was removed
func (tree *Tree[K, V]) Delete(key K) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, removed = tree.delete(key, p.left)
	case c > 0: // key > p.key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		l := p.left
		r := p.right
		p.left = nil
		p.right = nil
		if nil == r {
			return l, true
		}

		// in-order successor takes the place of p
		q := findMin(r)
		q.right = tree.removeMin(r)
		q.left = l
		return tree.balance(q), true
	}
	if !removed {
		return p, false
	}
	return tree.balance(p), true
}

// lowest node in a sub-tree
func findMin[K any, V any](p *Node[K, V]) *Node[K, V] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// detach the lowest node of a sub-tree, returns the new sub-tree root
func (tree *Tree[K, V]) removeMin(p *Node[K, V]) *Node[K, V] {
	if nil == p.left {
		return p.right
	}
	p.left = tree.removeMin(p.left)
	return tree.balance(p)
}

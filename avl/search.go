// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, the boolean is false and the value
// is the zero value if the key is not in the tree
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	p := tree.search(key, tree.root)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// Node - find the node holding a specific key, or nil
func (tree *Tree[K, V]) Node(key K) *Node[K, V] {
	return tree.search(key, tree.root)
}

func (tree *Tree[K, V]) search(key K, p *Node[K, V]) *Node[K, V] {
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

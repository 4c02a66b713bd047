// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - check every node has a balance factor of -1, 0 or +1
//
// Note: the heights are recomputed bottom up while checking, so any
//       stale cached height is repaired as a side effect.  Use
//       CheckHeights for a read only check.
func (tree *Tree[K, V]) IsBalanced() bool {
	return isBalanced(tree.root)
}

// internal: balance checker, children are checked (and repaired)
// before the node itself
func isBalanced[K any, V any](p *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if !isBalanced(p.left) || !isBalanced(p.right) {
		return false
	}
	return inRange(p.balanceFactor(true))
}

func inRange(bf int) bool {
	return bf >= -1 && bf <= +1
}

// CheckHeights - read only check that every cached height is correct
// and every balance factor is in range
func (tree *Tree[K, V]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the actual height of the sub-tree
func checkHeights[K any, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if h != p.height || !inRange(hr-hl) {
		return h, false
	}
	return h, true
}

// CheckOrder - check that every key in a left sub-tree is lower and
// every key in a right sub-tree is higher than the node's own key
func (tree *Tree[K, V]) CheckOrder() bool {
	return tree.checkOrder(tree.root, nil, nil)
}

// internal: low and high are the exclusive bounds, nil if unbounded
func (tree *Tree[K, V]) checkOrder(p *Node[K, V], low *K, high *K) bool {
	if nil == p {
		return true
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return false
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return false
	}
	return tree.checkOrder(p.left, low, &p.key) && tree.checkOrder(p.right, &p.key, high)
}

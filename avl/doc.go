// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree where every node caches the
// height of the sub-tree below it
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node exclusively owns its left and right sub-trees, there are
// no parent pointers.  Insert and delete are recursive and rebuild
// the path from the root to the affected node, rebalancing every
// ancestor on the way back up.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  A delete of a node
// with two children promotes its in-order successor into its place.
package avl

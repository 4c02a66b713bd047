// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordmap - an ordered key/value map backed by an AVL tree
//
// Insert, erase and lookup are O(log n) worst case.  Inserting an
// existing key overwrites its value, erasing an absent key does
// nothing.
//
// Note: a map is not thread safe, access it from a single go routine
//       or guard it with a mutex.
package ordmap

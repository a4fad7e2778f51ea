// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a generic sorted in-memory index.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Keyed is an index item. Items are ordered and matched by their key.
type Keyed interface {
	Key() string
}

// Index is a sorted array of items.
type Index[V Keyed] struct {
	// items is sorted by key. Items with equal keys keep their input order.
	items []V

	cmp func(string, string) int
}

// New creates an index from the given slice and comparison function. The
// input slice is not modified. If cmp is nil [strings.Compare] is used.
func New[V Keyed](items []V, cmp func(string, string) int) *Index[V] {
	if cmp == nil {
		cmp = strings.Compare
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.Key(), b.Key())
	})

	return &Index[V]{
		items: sorted,
		cmp:   cmp,
	}
}

// Len returns the number of items in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// All returns all items in key order.
func (idx *Index[V]) All() []V {
	return slices.Clone(idx.items)
}

// Search performs a binary search over the index and returns the items whose
// key compares equal to query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return idx.cmp(query, idx.items[i].Key())
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.items) && idx.cmp(query, idx.items[j].Key()) == 0 {
		j++
	}
	return slices.Clone(idx.items[i:j])
}

// Prefix returns the items whose key starts with prefix. It is only
// meaningful for indexes ordered by [strings.Compare].
func (idx *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].Key() >= prefix
	})

	var result []V
	for ; i < len(idx.items) && strings.HasPrefix(idx.items[i].Key(), prefix); i++ {
		result = append(result, idx.items[i])
	}
	return result
}

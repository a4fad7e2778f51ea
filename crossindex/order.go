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

package crossindex

import (
	"cmp"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/ianlewis/go-ladino/record"
)

// Comparator orders the entries of a page.
type Comparator func(a, b *record.Version) int

// ByHeadword orders entries by their Ladino headword and then by their first
// English translation. A missing English translation sorts first.
func ByHeadword(a, b *record.Version) int {
	if c := strings.Compare(a.Ladino, b.Ladino); c != 0 {
		return c
	}
	return strings.Compare(a.Translations.First("english"), b.Translations.First("english"))
}

// BySerializedSize returns a comparator that orders entries by the length of
// their JSON encoding. Encoded lengths are cached for the lifetime of the
// comparator.
//
// The order is arbitrary with respect to meaning but stable for a fixed
// input.
func BySerializedSize() Comparator {
	sizes := map[*record.Version]int{}
	size := func(v *record.Version) int {
		if n, ok := sizes[v]; ok {
			return n
		}
		// Versions only hold strings so encoding does not fail.
		b, _ := sonic.ConfigStd.Marshal(v)
		sizes[v] = len(b)
		return len(b)
	}
	return func(a, b *record.Version) int {
		return cmp.Compare(size(a), size(b))
	}
}

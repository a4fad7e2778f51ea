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
	"strings"

	"github.com/ianlewis/go-ladino/internal/folding"
	"github.com/ianlewis/go-ladino/internal/index"
)

type foldedWord struct {
	folded string
	word   string
}

func (w *foldedWord) Key() string {
	return w.folded
}

// buildSearch creates a folded word index for every language.
func (idx *Index) buildSearch() {
	idx.search = make(map[string]*index.Index[*foldedWord], len(idx.Pages))
	for language := range idx.Pages {
		var words []*foldedWord
		for _, w := range idx.Words(language) {
			words = append(words, &foldedWord{
				folded: folding.Search(w),
				word:   w,
			})
		}
		// Words are already sorted so equal folded keys keep word order.
		idx.search[language] = index.New(words, strings.Compare)
	}
}

// Search returns the words of language that match query ignoring case,
// accents and repeated whitespace.
func (idx *Index) Search(language, query string) []string {
	s, ok := idx.search[language]
	if !ok {
		return nil
	}

	var result []string
	for _, w := range s.Search(folding.Search(query)) {
		result = append(result, w.word)
	}
	return result
}

// Prefix returns the words of language whose folded form starts with the
// folded prefix.
func (idx *Index) Prefix(language, prefix string) []string {
	s, ok := idx.search[language]
	if !ok {
		return nil
	}

	var result []string
	for _, w := range s.Prefix(folding.Search(prefix)) {
		result = append(result, w.word)
	}
	return result
}

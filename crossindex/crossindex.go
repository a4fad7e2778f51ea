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

// Package crossindex builds the bidirectional translation index from
// normalized versions.
//
// Every Ladino headword is registered under its lower cased key together
// with the translations of the version that produced it. Every translation
// word is registered under its own language pointing back to the Ladino
// headwords that translate to it.
package crossindex

import (
	"maps"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/internal/folding"
	"github.com/ianlewis/go-ladino/internal/index"
	"github.com/ianlewis/go-ladino/record"
)

// Entry holds the words a Ladino key translates to, keyed by language. The
// "ladino" key holds the headwords in their original case and the "accented"
// key their accented forms.
type Entry map[string][]string

// Count holds per language totals.
type Count struct {
	Words    int `json:"words"`
	Examples int `json:"examples"`
}

// Index is the cross-language index.
type Index struct {
	// Languages are the foreign languages of the index in configuration
	// order.
	Languages []string

	// Ladino maps lower cased Ladino words to their translations.
	Ladino map[string]Entry

	// Foreign maps each foreign language to a mapping of lower cased words
	// to the Ladino headwords that translate to them.
	Foreign map[string]map[string][]string

	// Pages maps each language, including Ladino, to a mapping of lower
	// cased words to the versions that produced them.
	Pages map[string]map[string][]*record.Version

	// Count holds the word and example totals of each language.
	Count map[string]*Count

	search map[string]*index.Index[*foldedWord]
}

// Options are options for building an index.
type Options struct {
	// LadinoOrder orders Ladino pages. The default is [ByHeadword].
	LadinoOrder Comparator

	// ForeignOrder orders foreign language pages. The default is
	// [BySerializedSize].
	ForeignOrder Comparator
}

// Build builds the index of versions for the given foreign languages.
func Build(languages []string, versions []*record.Version, opts *Options) *Index {
	if opts == nil {
		opts = &Options{}
	}
	ladinoOrder := opts.LadinoOrder
	if ladinoOrder == nil {
		ladinoOrder = ByHeadword
	}
	foreignOrder := opts.ForeignOrder
	if foreignOrder == nil {
		foreignOrder = BySerializedSize()
	}

	idx := &Index{
		Languages: slices.Clone(languages),
		Ladino:    map[string]Entry{},
		Foreign:   make(map[string]map[string][]string, len(languages)),
		Pages:     make(map[string]map[string][]*record.Version, len(languages)+1),
		Count:     make(map[string]*Count, len(languages)+1),
	}
	idx.Pages[config.Ladino] = map[string][]*record.Version{}
	idx.Count[config.Ladino] = &Count{}
	for _, l := range languages {
		idx.Foreign[l] = map[string][]string{}
		idx.Pages[l] = map[string][]*record.Version{}
		idx.Count[l] = &Count{}
	}

	for _, v := range versions {
		idx.addLadino(v.Ladino, v.Accented, v)
		for _, alt := range v.AltSpellings {
			idx.addLadino(alt.Ladino, alt.Accented, v)
		}
		for _, l := range languages {
			idx.addForeign(l, v)
		}
	}

	for _, pages := range idx.Pages[config.Ladino] {
		slices.SortStableFunc(pages, ladinoOrder)
	}
	for _, l := range languages {
		for _, pages := range idx.Pages[l] {
			slices.SortStableFunc(pages, foreignOrder)
		}
	}

	idx.buildSearch()

	return idx
}

// addLadino registers word under Ladino with the translations of v.
func (idx *Index) addLadino(word, accented string, v *record.Version) {
	key := folding.Key(word)
	log.Debug().
		Str("word", word).
		Str("key", key).
		Str("accented", accented).
		Msg("adding ladino word")

	c := idx.Count[config.Ladino]
	c.Words++
	for _, ex := range v.Examples {
		if _, ok := ex[config.Ladino]; ok {
			c.Examples++
		}
	}

	e, ok := idx.Ladino[key]
	if !ok {
		e = Entry{}
		idx.Ladino[key] = e
	}
	// Languages are visited in sorted order so the entry is built the same
	// way on every run.
	for _, l := range slices.Sorted(maps.Keys(v.Translations)) {
		e[l] = union(e[l], v.Translations[l].Words()...)
	}
	e[config.Ladino] = union(e[config.Ladino], word)
	if accented != "" {
		e[config.Accented] = union(e[config.Accented], accented)
	}

	idx.Pages[config.Ladino][key] = append(idx.Pages[config.Ladino][key], v)
}

// addForeign registers the language translations of v pointing back to its
// headword.
func (idx *Index) addForeign(language string, v *record.Version) {
	t, ok := v.Translations[language]
	if !ok {
		return
	}

	words := idx.Foreign[language]
	pages := idx.Pages[language]
	for _, w := range t.Words() {
		key := folding.Key(w)
		words[key] = union(words[key], v.Ladino)
		idx.Count[language].Words++
		pages[key] = append(pages[key], v)
	}
}

// union adds words to the sorted set s. The result is never nil.
func union(s []string, words ...string) []string {
	if s == nil {
		s = []string{}
	}
	for _, w := range words {
		i, found := slices.BinarySearch(s, w)
		if !found {
			s = slices.Insert(s, i, w)
		}
	}
	return s
}

// Lookup returns the entry for word in language. For a foreign language the
// entry holds only the "ladino" key.
func (idx *Index) Lookup(language, word string) (Entry, bool) {
	key := folding.Key(word)
	if language == config.Ladino {
		e, ok := idx.Ladino[key]
		return e, ok
	}
	words, ok := idx.Foreign[language][key]
	if !ok {
		return nil, false
	}
	return Entry{config.Ladino: words}, true
}

// PagesOf returns the versions that produced word in language.
func (idx *Index) PagesOf(language, word string) []*record.Version {
	return idx.Pages[language][folding.Key(word)]
}

// Words returns the sorted keys of language.
func (idx *Index) Words(language string) []string {
	return slices.Sorted(maps.Keys(idx.Pages[language]))
}

// AllLanguages returns "ladino" followed by the foreign languages.
func (idx *Index) AllLanguages() []string {
	return append([]string{config.Ladino}, idx.Languages...)
}

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

// Package export writes the cross-index as JSON files for the site renderer.
//
// The output directory holds:
//
//	dictionary.json          the translation tables of every language
//	count.json               per language word and example totals
//	words/ladino/<word>.json the entries of each Ladino page
//	examples.json            all examples ordered by their Ladino text
//	messages.json            linked messages, when a source is given
//
// Map keys are sorted so the same input always produces the same bytes.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/crossindex"
	"github.com/ianlewis/go-ladino/record"
)

const (
	// DictionaryFile is the name of the translation table file.
	DictionaryFile = "dictionary.json"

	// CountFile is the name of the totals file.
	CountFile = "count.json"

	// ExamplesFile is the name of the examples file.
	ExamplesFile = "examples.json"

	// MessagesFile is the name of the messages file.
	MessagesFile = "messages.json"

	// WordsDir is the directory holding the per word pages.
	WordsDir = "words"
)

var errWord = errors.New("invalid page word")

// jsonAPI sorts map keys and leaves HTML and non-ASCII text unescaped.
var jsonAPI = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	ValidateString:   true,
}.Froze()

// Options are export options.
type Options struct {
	// Pretty indents the dictionary, count and examples files.
	Pretty bool

	// Examples are the examples to write. They are written sorted by their
	// Ladino text.
	Examples []*record.TaggedExample

	// Messages is an optional message source.
	Messages MessageSource
}

// Export clears dir and writes the index to it.
func Export(dir string, idx *crossindex.Index, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	log.Info().Str("path", dir).Msg("exporting")

	if err := Clean(dir); err != nil {
		return err
	}

	w := &writer{dir: dir, pretty: opts.Pretty}
	if err := w.write(DictionaryFile, Tables(idx), w.pretty); err != nil {
		return err
	}
	if err := w.write(CountFile, Counts{Dictionary: idx.Count}, w.pretty); err != nil {
		return err
	}
	if err := w.writePages(idx); err != nil {
		return err
	}

	has := Has(idx)
	if err := w.write(ExamplesFile, LinkExamples(opts.Examples, has), w.pretty); err != nil {
		return err
	}

	if opts.Messages != nil {
		msgs, err := opts.Messages.Messages()
		if err != nil {
			return fmt.Errorf("reading messages: %w", err)
		}
		if err := w.write(MessagesFile, LinkMessages(msgs, has), w.pretty); err != nil {
			return err
		}
	}

	return nil
}

// Clean creates dir if needed and removes everything in it.
func Clean(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("removing %q: %w", e.Name(), err)
		}
	}
	return nil
}

// Counts is the layout of the totals file.
type Counts struct {
	Dictionary map[string]*crossindex.Count `json:"dictionary"`
}

// Tables returns the translation tables of every language keyed by
// language.
func Tables(idx *crossindex.Index) map[string]any {
	tables := make(map[string]any, len(idx.Languages)+1)
	tables[config.Ladino] = idx.Ladino
	for _, l := range idx.Languages {
		tables[l] = idx.Foreign[l]
	}
	return tables
}

type writer struct {
	dir    string
	pretty bool
}

// write encodes v as JSON to name under the output directory.
func (w *writer) write(name string, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = jsonAPI.MarshalIndent(v, "", "    ")
	} else {
		b, err = jsonAPI.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encoding %q: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// writePages writes the entries of every Ladino page. Pages are always
// compact.
func (w *writer) writePages(idx *crossindex.Index) error {
	pages := idx.Pages[config.Ladino]
	words := idx.Words(config.Ladino)

	log.Info().Int("pages", len(words)).Msg("exporting ladino pages")

	for _, word := range words {
		if word == "" || word == "." || word == ".." || strings.ContainsAny(word, `/\`) {
			return fmt.Errorf("%w: %q", errWord, word)
		}
		name := filepath.Join(WordsDir, config.Ladino, word+".json")
		if err := w.write(name, pages[word], false); err != nil {
			return err
		}
	}
	return nil
}

// Has returns a function reporting whether a word has a Ladino page.
func Has(idx *crossindex.Index) func(string) bool {
	pages := idx.Pages[config.Ladino]
	return func(word string) bool {
		_, ok := pages[word]
		return ok
	}
}

// LinkedExample is an example with a linked Ladino text.
type LinkedExample struct {
	Example map[string]string `json:"example"`
	Word    string            `json:"word,omitempty"`
	Source  string            `json:"source"`
}

// LinkExamples returns the examples sorted by their Ladino text with a
// "ladino_html" key holding the linked text. The input is not modified.
func LinkExamples(examples []*record.TaggedExample, has func(string) bool) []*LinkedExample {
	sorted := slices.Clone(examples)
	slices.SortStableFunc(sorted, func(a, b *record.TaggedExample) int {
		return strings.Compare(a.Example[config.Ladino], b.Example[config.Ladino])
	})

	linked := make([]*LinkedExample, 0, len(sorted))
	for _, ex := range sorted {
		m := make(map[string]string, len(ex.Example)+1)
		for k, v := range ex.Example {
			m[k] = v
		}
		m["ladino_html"] = LinkWords(ex.Example[config.Ladino], has)
		linked = append(linked, &LinkedExample{
			Example: m,
			Word:    ex.Word,
			Source:  ex.Source,
		})
	}
	return linked
}

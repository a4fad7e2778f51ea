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

// Package dictionary implements loading a directory of word records.
package dictionary

import (
	"cmp"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/rs/zerolog/log"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/normalize"
	"github.com/ianlewis/go-ladino/record"
	"github.com/ianlewis/go-ladino/schema"
)

// Dictionary is the result of loading a directory of word records.
type Dictionary struct {
	// Versions are the flat versions of every record in load order.
	Versions []*record.Version

	// Examples are the examples of every record in load order.
	Examples []*record.TaggedExample

	// Records are all raw records in load order.
	Records []*record.Record

	// Lists maps each configured list name to its member records in curated
	// order.
	Lists map[string][]*record.Record

	// Categories maps each configured category to its member records ordered
	// by headword and English translation.
	Categories map[string][]*record.Record

	// Verbs are the records whose grammar is "verb".
	Verbs []*record.Record

	cfg *config.Config
}

// New returns an empty dictionary for the given configuration.
func New(cfg *config.Config) *Dictionary {
	d := &Dictionary{
		Lists:      make(map[string][]*record.Record, len(cfg.Lists)),
		Categories: make(map[string][]*record.Record, len(cfg.Categories)),
		cfg:        cfg,
	}
	for name := range cfg.Lists {
		d.Lists[name] = nil
	}
	for _, cat := range cfg.Categories {
		d.Categories[cat] = nil
	}
	return d
}

// Load reads every file in dir in file name order. Files ending in .gz are
// read with gzip and files ending in .dz with dictzip. Loading stops at the
// first invalid record.
func Load(cfg *config.Config, dir string) (*Dictionary, error) {
	log.Info().Str("path", dir).Msg("loading dictionary")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	d := New(cfg)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		log.Debug().Str("path", path).Msg("loading word")

		rec, err := readRecord(path)
		if err != nil {
			return nil, err
		}
		if err := d.Add(rec); err != nil {
			return nil, err
		}
	}
	d.Sort()

	log.Info().
		Int("records", len(d.Records)).
		Int("versions", len(d.Versions)).
		Int("examples", len(d.Examples)).
		Msg("dictionary loaded")

	return d, nil
}

// Add validates and normalizes rec and adds it to the dictionary. Groupings
// are not re-sorted; call Sort after the last record.
func (d *Dictionary) Add(rec *record.Record) error {
	if err := schema.Validate(d.cfg, rec); err != nil {
		return err
	}
	res, err := normalize.Record(d.cfg, rec)
	if err != nil {
		return err
	}

	d.Records = append(d.Records, rec)
	d.Versions = append(d.Versions, res.Versions...)
	d.Examples = append(d.Examples, res.Examples...)

	if rec.GrammarValue() == config.Verb {
		d.Verbs = append(d.Verbs, rec)
	}
	for _, cat := range rec.Categories {
		d.Categories[cat] = append(d.Categories[cat], rec)
	}
	headword := rec.Headword()
	for name, words := range d.cfg.Lists {
		if slices.Contains(words, headword) {
			d.Lists[name] = append(d.Lists[name], rec)
		}
	}

	return nil
}

// Sort orders the list and category groupings.
func (d *Dictionary) Sort() {
	for _, recs := range d.Categories {
		slices.SortStableFunc(recs, compareHeadword)
	}
	for name, recs := range d.Lists {
		slices.SortStableFunc(recs, func(a, b *record.Record) int {
			return cmp.Compare(d.cfg.ListPosition(name, a.Headword()), d.cfg.ListPosition(name, b.Headword()))
		})
	}
}

// compareHeadword orders records by headword and then by the English
// translations of their first version.
func compareHeadword(a, b *record.Record) int {
	if c := strings.Compare(a.Headword(), b.Headword()); c != 0 {
		return c
	}
	return slices.Compare(english(a), english(b))
}

func english(r *record.Record) []string {
	if len(r.Versions) == 0 {
		return nil
	}
	return r.Versions[0].Translations.Words("english")
}

// readRecord decodes the word record at path.
func readRecord(path string) (*record.Record, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	//nolint:wrapcheck // Decode errors carry the file name.
	return record.Decode(r, filepath.Base(path))
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// open opens a possibly compressed file.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, close: func() error {
			z.Close()
			return f.Close()
		}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, close: func() error {
			z.Close()
			return f.Close()
		}}, nil
	default:
		return f, nil
	}
}

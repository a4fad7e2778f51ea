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

// Package testutil implements helpers for writing test dictionaries.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/record"
)

// ConfigYAML is a dictionary configuration used by tests.
const ConfigYAML = `gramatika:
  - noun
  - verb
  - adjective
  - adverb
  - conjunction
origenes:
  - hebrew
  - espanyol
  - turko
kategorias:
  - animales
  - kolores
  - komidas
gender:
  - masculine
  - feminine
numero:
  - singular
  - plural
tiempos:
  - present indicative
  - pasado simple
pronombres:
  - yo
  - tu
  - el
  - mozotros
  - vozotros
  - eyos
listas:
  kolores:
    - preto
    - blanko
pajinas:
  about.md: about.html
`

// Config returns the configuration described by ConfigYAML.
func Config() *config.Config {
	return &config.Config{
		Grammar:    []string{"noun", "verb", "adjective", "adverb", "conjunction"},
		Origins:    []string{"hebrew", "espanyol", "turko"},
		Categories: []string{"animales", "kolores", "komidas"},
		Genders:    []string{"masculine", "feminine"},
		Numbers:    []string{"singular", "plural"},
		Tenses:     []string{"present indicative", "pasado simple"},
		Pronouns:   []string{"yo", "tu", "el", "mozotros", "vozotros", "eyos"},
		Lists:      map[string][]string{"kolores": {"preto", "blanko"}},
		Pages:      map[string]string{"about.md": "about.html"},
		Languages:  slices.Clone(config.DefaultLanguages),
	}
}

// Compression is the compression used when writing a test file.
type Compression int

const (
	// None writes the file as is.
	None Compression = iota

	// Gzip compresses the file with gzip.
	Gzip

	// DictZip compresses the file with dictzip.
	DictZip
)

// Ext returns the file extension suffix for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case DictZip:
		return ".dz"
	default:
		return ""
	}
}

// WriteFile writes data to dir/name with the given compression and returns
// the path of the written file. The compression extension is appended to
// name.
func WriteFile(t *testing.T, dir, name, data string, c Compression) string {
	t.Helper()

	path := filepath.Join(dir, name+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch c {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// MakeRepo creates a temporary dictionary repository holding the test
// configuration and the given word files. The keys of words are file names.
// It returns the repository path.
func MakeRepo(t *testing.T, words map[string]string) string {
	t.Helper()

	repo := t.TempDir()
	WriteFile(t, repo, config.FileName, ConfigYAML, None)

	wordsDir := filepath.Join(repo, "words")
	if err := os.Mkdir(wordsDir, 0o700); err != nil {
		t.Fatal(err)
	}
	for name, data := range words {
		WriteFile(t, wordsDir, name, data, None)
	}

	return repo
}

// MakeWords creates a temporary words directory holding the given files.
func MakeWords(t *testing.T, words map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range words {
		WriteFile(t, dir, name, data, None)
	}
	return dir
}

// Decode decodes a word record from a string.
func Decode(t *testing.T, filename, data string) *record.Record {
	t.Helper()

	rec, err := record.Decode(strings.NewReader(data), filename)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return rec
}

// Klaro is a minimal noun record with one translation and one example.
const Klaro = `grammar: noun
origen: hebrew
versions:
  - ladino: Klaro
    gender: masculine
    number: singular
    translations:
      english: clear
examples:
  - ladino: Es klaro.
    english: It's clear.
`

// Komer is a verb record with two tenses.
const Komer = `grammar: verb
origen: espanyol
versions:
  - ladino: komer
    translations:
      english: eat
      french: manger
      spanish: comer
examples:
  - ladino: Kero komer.
    english: I want to eat.
conjugations:
  present indicative:
    yo:
      ladino: komo
      translations:
        english: I eat
    tu:
      ladino: komes
      translations:
        english: you eat
  pasado simple:
    yo:
      ladino: komí
      translations:
        english: I ate
`

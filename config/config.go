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

// Package config implements reading the dictionary configuration file.
//
// The configuration enumerates the closed vocabularies that every word record
// is checked against (grammar kinds, origins, categories, genders, numbers,
// conjugation tenses and pronouns), the curated word lists and the known
// translation languages.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// FileName is the name of the configuration file in a dictionary repository.
const FileName = "config.yaml"

const (
	// Ladino is the language of the headwords.
	Ladino = "ladino"

	// Accented is the pseudo-language holding accented display forms.
	Accented = "accented"

	// Bozes is the example key holding a pronunciation note.
	Bozes = "bozes"

	// Verb is the grammar kind that requires conjugations.
	Verb = "verb"

	// Noun is the grammar kind that requires gender and number.
	Noun = "noun"
)

// DefaultLanguages are the translation languages used when the configuration
// does not list any.
var DefaultLanguages = []string{"english", "french", "hebrew", "spanish", "turkish", "portuguese"}

var (
	// ErrConfig is a parent error for all configuration errors.
	ErrConfig = errors.New("config")

	errEmptyVocabulary = fmt.Errorf("%w: empty vocabulary", ErrConfig)
	errDuplicateWord   = fmt.Errorf("%w: duplicate word in list", ErrConfig)
	errBadLanguage     = fmt.Errorf("%w: reserved language name", ErrConfig)
)

// Config is the dictionary configuration. It is loaded once and is not
// modified afterwards.
type Config struct {
	Grammar    []string `yaml:"gramatika"`
	Origins    []string `yaml:"origenes"`
	Categories []string `yaml:"kategorias"`
	Genders    []string `yaml:"gender"`
	Numbers    []string `yaml:"numero"`
	Tenses     []string `yaml:"tiempos"`
	Pronouns   []string `yaml:"pronombres"`

	// Lists maps a curated list name to its ordered headwords.
	Lists map[string][]string `yaml:"listas"`

	// Pages maps markdown sources to the html pages rendered from them. The
	// map is carried for the renderer.
	Pages map[string]string `yaml:"pajinas"`

	// Languages are the known translation languages.
	Languages []string `yaml:"languages" env:"LADINO_LANGUAGES" env-separator:","`
}

// Load reads the configuration from the config.yaml file in the repository
// at path.
func Load(path string) (*Config, error) {
	return LoadFile(filepath.Join(path, FileName))
}

// LoadFile reads the configuration from the given file.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = slices.Clone(DefaultLanguages)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Grammar) == 0 {
		return fmt.Errorf("%w: gramatika", errEmptyVocabulary)
	}
	if len(c.Origins) == 0 {
		return fmt.Errorf("%w: origenes", errEmptyVocabulary)
	}

	for _, l := range c.Languages {
		switch l {
		case Ladino, Accented, Bozes:
			return fmt.Errorf("%w: %q", errBadLanguage, l)
		}
	}

	for name, words := range c.Lists {
		seen := make(map[string]bool, len(words))
		for _, w := range words {
			if seen[w] {
				return fmt.Errorf("%w: %q in %q", errDuplicateWord, w, name)
			}
			seen[w] = true
		}
	}

	return nil
}

// HasGrammar reports whether g is a configured grammar kind.
func (c *Config) HasGrammar(g string) bool {
	return slices.Contains(c.Grammar, g)
}

// HasOrigin reports whether o is a configured origin.
func (c *Config) HasOrigin(o string) bool {
	return slices.Contains(c.Origins, o)
}

// HasCategory reports whether cat is a configured category.
func (c *Config) HasCategory(cat string) bool {
	return slices.Contains(c.Categories, cat)
}

// HasGender reports whether g is a configured gender.
func (c *Config) HasGender(g string) bool {
	return slices.Contains(c.Genders, g)
}

// HasNumber reports whether n is a configured grammatical number.
func (c *Config) HasNumber(n string) bool {
	return slices.Contains(c.Numbers, n)
}

// HasTense reports whether t is a configured conjugation tense.
func (c *Config) HasTense(t string) bool {
	return slices.Contains(c.Tenses, t)
}

// HasPronoun reports whether p is a configured pronoun.
func (c *Config) HasPronoun(p string) bool {
	return slices.Contains(c.Pronouns, p)
}

// IsLanguage reports whether l is a known translation language.
func (c *Config) IsLanguage(l string) bool {
	return slices.Contains(c.Languages, l)
}

// IsExampleKey reports whether key may appear in an example.
func (c *Config) IsExampleKey(key string) bool {
	return key == Ladino || key == Bozes || c.IsLanguage(key)
}

// AllLanguages returns "ladino" followed by the translation languages.
func (c *Config) AllLanguages() []string {
	return append([]string{Ladino}, c.Languages...)
}

// ListNames returns the curated list names in sorted order.
func (c *Config) ListNames() []string {
	names := make([]string, 0, len(c.Lists))
	for name := range c.Lists {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListPosition returns the position of word in the named list or -1.
func (c *Config) ListPosition(list, word string) int {
	return slices.Index(c.Lists[list], word)
}

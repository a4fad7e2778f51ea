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

// Package normalize flattens validated word records into versions.
//
// A record yields its base versions in source order followed by one version
// per conjugated form, tenses then pronouns in source order. Only the first
// version carries the record's examples and comments.
package normalize

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/internal/folding"
	"github.com/ianlewis/go-ladino/record"
)

// Result is the normalized form of one record.
type Result struct {
	// Versions are the flat versions of the record.
	Versions []*record.Version

	// Examples are the record's examples tagged with the lower cased
	// headword and the source file name.
	Examples []*record.TaggedExample
}

// Record normalizes rec. The record should have passed schema validation.
// Versions are modified in place: their source, translations, examples and
// comments are set.
func Record(cfg *config.Config, rec *record.Record) (*Result, error) {
	f := rec.Filename
	res := &Result{}

	examples := rec.Examples
	comments := rec.Comments

	for i, v := range rec.Versions {
		if !v.HasLadino() {
			return nil, record.Errorf(f, record.FieldLadino, "", "The ladino 'version' is missing from file '%s'", f)
		}
		if err := prepare(cfg, v, f); err != nil {
			return nil, err
		}

		if i == 0 {
			if err := rec.ShapeError(record.FieldExamples); err != nil {
				return nil, err
			}
			if len(examples) > 0 {
				parsed, err := parseExamples(cfg, examples, f)
				if err != nil {
					return nil, err
				}
				v.Examples = parsed
				word := folding.Key(v.Ladino)
				for _, ex := range parsed {
					res.Examples = append(res.Examples, &record.TaggedExample{
						Example: ex,
						Word:    word,
						Source:  f,
					})
				}
			}
			if err := rec.ShapeError(record.FieldComments); err != nil {
				return nil, err
			}
			if comments != nil {
				v.Comments = comments
			}

			if err := rec.ShapeError(record.FieldAltSpelling); err != nil {
				return nil, err
			}
			for _, alt := range rec.AltSpellings {
				if err := prepareAlt(cfg, alt, f); err != nil {
					return nil, err
				}
			}
			v.AltSpellings = append(v.AltSpellings, rec.AltSpellings...)
		}

		res.Versions = append(res.Versions, v)
	}

	if err := rec.ShapeError(record.FieldConjugations); err != nil {
		return nil, err
	}
	for _, tense := range rec.Conjugations {
		if !cfg.HasTense(tense.Name) {
			return nil, record.Errorf(f, record.FieldConjugations, tense.Name, "Verb conjugation time '%s' is no recogrnized in '%s'", tense.Name, f)
		}
		for _, form := range tense.Forms {
			if !cfg.HasPronoun(form.Pronoun) {
				return nil, record.Errorf(f, record.FieldConjugations, form.Pronoun, "Incorrect pronoun '%s' in verb time '%s' in '%s'", form.Pronoun, tense.Name, f)
			}
			v := form.Version
			if !v.HasLadino() {
				return nil, record.Errorf(f, record.FieldLadino, "", "The field 'ladino' is missing from verb time: '%s' pronoun '%s' in file '%s'", tense.Name, form.Pronoun, f)
			}
			if err := prepare(cfg, v, f); err != nil {
				return nil, err
			}
			res.Versions = append(res.Versions, v)
		}
	}

	return res, nil
}

// prepare sets the source and translations of a version and of its
// alternative spellings.
func prepare(cfg *config.Config, v *record.Version, filename string) error {
	v.Source = filename
	tr, err := Translations(cfg, v.RawTranslations(), filename)
	if err != nil {
		return err
	}
	v.Translations = tr

	for _, alt := range v.AltSpellings {
		if err := prepareAlt(cfg, alt, filename); err != nil {
			return err
		}
	}
	return nil
}

func prepareAlt(cfg *config.Config, alt *record.Version, filename string) error {
	if !alt.HasLadino() {
		return record.Errorf(filename, record.FieldAltSpelling, "", "The field 'ladino' is missing from alternative spelling in '%s'", filename)
	}
	return prepare(cfg, alt, filename)
}

// Translations coerces a raw translations mapping. Configured languages are
// coerced first, in configuration order, followed by any other keys in
// source order. A nil or null node yields nil translations.
func Translations(cfg *config.Config, n *yaml.Node, filename string) (record.Translations, error) {
	if n == nil || n.ShortTag() == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, record.Errorf(filename, record.FieldTranslations, record.Repr(n), "bad type %s for translations in '%s'", record.TypeName(n), filename)
	}

	raw := make(map[string]*yaml.Node, len(n.Content)/2)
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if _, ok := raw[key]; !ok {
			keys = append(keys, key)
		}
		raw[key] = n.Content[i+1]
	}

	order := make([]string, 0, len(keys))
	for _, l := range cfg.Languages {
		if _, ok := raw[l]; ok {
			order = append(order, l)
		}
	}
	for _, k := range keys {
		if !cfg.IsLanguage(k) {
			order = append(order, k)
		}
	}

	tr := make(record.Translations, len(keys))
	for _, language := range order {
		t, err := record.ParseTranslation(raw[language])
		if err != nil {
			var terr *record.TranslationTypeError
			if !errors.As(err, &terr) {
				return nil, err
			}
			return nil, record.Errorf(filename, language, record.Repr(raw[language]),
				"bad type %s for %s in %s in '%s'", terr.Type, language, partialRepr(n, tr), filename)
		}
		tr[language] = t
	}
	return tr, nil
}

// partialRepr renders the translations mapping with the languages coerced
// so far shown as lists.
func partialRepr(n *yaml.Node, coerced record.Translations) string {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		val := n.Content[i+1]
		if t, ok := coerced[key.Value]; ok {
			val = listNode(t.Words())
		}
		m.Content = append(m.Content, key, val)
	}
	return record.Repr(m)
}

func listNode(words []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, w := range words {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: w})
	}
	return seq
}

func parseExamples(cfg *config.Config, nodes []*yaml.Node, filename string) ([]record.Example, error) {
	examples := make([]record.Example, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != yaml.MappingNode {
			text := n.Value
			if n.Kind != yaml.ScalarNode {
				text = record.Repr(n)
			}
			return nil, record.Errorf(filename, record.FieldExamples, text, "The example '%s' is a string instead of a dictionary in '%s'", text, filename)
		}

		ex := make(record.Example, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if !cfg.IsExampleKey(key) {
				return nil, record.Errorf(filename, record.FieldExamples, key, "Incorrect language '%s' in example in '%s'", key, filename)
			}
			val := n.Content[i+1]
			text := val.Value
			if val.Kind != yaml.ScalarNode {
				text = record.Repr(val)
			}
			ex[key] = text
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

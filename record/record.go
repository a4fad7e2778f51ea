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

// Package record implements reading hand-authored word records.
//
// A word record is a YAML document describing one headword:
//
//	grammar: noun
//	origen: hebrew
//	categories: [komidas]
//	versions:
//	  - ladino: Klaro
//	    gender: masculine
//	    number: singular
//	    translations:
//	      english: clear
//	      french: [clair, évident]
//	examples:
//	  - ladino: Es klaro.
//	    english: It's clear.
//	comments: [...]
//	conjugations:          # verbs only
//	  present indicative:
//	    yo: {ladino: komo, translations: {english: I eat}}
//
// Records are decoded without interpretation: field presence and the source
// shape of each value are kept so that the schema and normalize packages can
// report precise errors.
package record

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Record field names.
const (
	FieldGrammar      = "grammar"
	FieldOrigin       = "origen"
	FieldCategories   = "categories"
	FieldKategorias   = "kategorias"
	FieldVersions     = "versions"
	FieldExamples     = "examples"
	FieldComments     = "comments"
	FieldConjugations = "conjugations"
	FieldAltSpelling  = "alternative-spelling"

	FieldLadino       = "ladino"
	FieldAccented     = "accented"
	FieldGender       = "gender"
	FieldNumber       = "number"
	FieldTranslations = "translations"
)

// Record is a raw word record read from one file.
type Record struct {
	// Filename is the base name of the source file.
	Filename string

	// Grammar is the grammar kind. It is nil if the field is missing.
	Grammar *string

	// Origin is the word origin. It is nil if the field is missing.
	Origin *string

	// Categories are the declared categories.
	Categories []string

	// Versions are the grammatical realizations of the word. HasVersions
	// reports whether the field was present.
	Versions    []*Version
	HasVersions bool

	// Examples are the raw example nodes. HasExamples reports whether the
	// field was present.
	Examples    []*yaml.Node
	HasExamples bool

	// Comments are the record's comments as decoded from YAML. They may be
	// any shape. An empty list is the same as no comments.
	Comments any

	// Conjugations are the verb conjugations in source order. HasConjugations
	// reports whether the field was present.
	Conjugations    []*Tense
	HasConjugations bool

	// AltSpellings are record level alternative spellings of the headword.
	AltSpellings []*Version

	// shapeErrs holds errors for present fields whose values have the wrong
	// shape. They are reported when the field is checked or used.
	shapeErrs map[string]error
}

// ShapeError returns the error for a field whose value could not be decoded,
// or nil. The categories field is reported under [FieldCategories] whichever
// key it was written with.
func (r *Record) ShapeError(field string) error {
	return r.shapeErrs[field]
}

// Headword returns the Ladino text of the first version or the empty string.
func (r *Record) Headword() string {
	if len(r.Versions) == 0 {
		return ""
	}
	return r.Versions[0].Ladino
}

// GrammarValue returns the grammar kind or the empty string.
func (r *Record) GrammarValue() string {
	if r.Grammar == nil {
		return ""
	}
	return *r.Grammar
}

// Tense is the set of conjugated forms of a verb for one tense.
type Tense struct {
	Name  string
	Forms []*Form
}

// Form is a conjugated form of a verb for one pronoun.
type Form struct {
	Pronoun string
	Version *Version
}

// Example maps a language, "ladino" or "bozes" to the example text.
type Example map[string]string

// TaggedExample is an example together with the headword and file it was
// recorded with.
type TaggedExample struct {
	Example Example `json:"example"`

	// Word is the lower cased headword. It is empty for examples read from
	// stand-alone example files.
	Word string `json:"word,omitempty"`

	Source string `json:"source"`
}

// Version is a grammatical realization of a word: the base entry, an
// alternative spelling or a conjugated form.
type Version struct {
	Ladino   string  `json:"ladino"`
	Accented string  `json:"accented,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Number   *string `json:"number,omitempty"`

	// Translations are set by the normalizer from the raw translations node.
	Translations Translations `json:"translations,omitempty"`

	AltSpellings []*Version `json:"alternative-spelling,omitempty"`

	// Source is the file name the version was read from.
	Source string `json:"source,omitempty"`

	// Examples and Comments are only attached to the first version of a
	// record.
	Examples []Example `json:"examples,omitempty"`
	Comments any       `json:"comments,omitempty"`

	hasLadino       bool
	rawTranslations *yaml.Node
	node            *yaml.Node
}

// HasLadino reports whether the version has a "ladino" field.
func (v *Version) HasLadino() bool {
	return v.hasLadino
}

// RawTranslations returns the translations node as written in the source or
// nil.
func (v *Version) RawTranslations() *yaml.Node {
	return v.rawTranslations
}

// String returns the version sub-record as written in the source.
func (v *Version) String() string {
	if v.node == nil {
		return "{}"
	}
	return Repr(v.node)
}

// Decode reads a single word record from r. An empty document decodes to a
// record with no fields. Only a document that is not a mapping is an error;
// badly shaped field values are kept as shape errors, see
// [Record.ShapeError].
func Decode(r io.Reader, filename string) (*Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %q: %w", filename, err)
	}

	rec := &Record{Filename: filename}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind == 0 || root.ShortTag() == tagNull {
		return rec, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, Errorf(filename, "", "", "The file '%s' does not contain a mapping", filename)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		val := resolve(root.Content[i+1])

		var err error
		switch key {
		case FieldGrammar:
			rec.Grammar = scalarPtr(val)
		case FieldOrigin:
			rec.Origin = scalarPtr(val)
		case FieldCategories, FieldKategorias:
			var cats []string
			cats, err = decodeStrings(val, filename, key)
			for _, c := range cats {
				if !slices.Contains(rec.Categories, c) {
					rec.Categories = append(rec.Categories, c)
				}
			}
			key = FieldCategories
		case FieldVersions:
			rec.HasVersions = true
			rec.Versions, err = decodeVersions(val, filename, key)
		case FieldExamples:
			rec.HasExamples = true
			rec.Examples, err = sequence(val, filename, key)
		case FieldComments:
			rec.Comments, err = decodeComments(val, filename)
		case FieldConjugations:
			rec.HasConjugations = true
			rec.Conjugations, err = decodeConjugations(val, filename)
		case FieldAltSpelling:
			rec.AltSpellings, err = decodeVersions(val, filename, key)
		}
		if err != nil {
			if rec.shapeErrs == nil {
				rec.shapeErrs = make(map[string]error)
			}
			if _, ok := rec.shapeErrs[key]; !ok {
				rec.shapeErrs[key] = err
			}
		}
	}

	return rec, nil
}

// decodeComments decodes comments of any shape. Null and empty lists are no
// comments.
func decodeComments(n *yaml.Node, filename string) (any, error) {
	if n == nil || n.ShortTag() == tagNull || (n.Kind == yaml.SequenceNode && len(n.Content) == 0) {
		return nil, nil
	}
	var c any
	if err := n.Decode(&c); err != nil {
		return nil, Errorf(filename, FieldComments, Repr(n), "Invalid value %s in '%s' field in '%s'", Repr(n), FieldComments, filename)
	}
	return c, nil
}

// scalarPtr returns the value of a present field. Null values are rendered
// as None.
func scalarPtr(n *yaml.Node) *string {
	s := Repr(n)
	if n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() != tagNull {
		s = n.Value
	}
	return &s
}

// optionalScalar returns nil for null values.
func optionalScalar(n *yaml.Node) *string {
	if n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull) {
		return nil
	}
	return scalarPtr(n)
}

func sequence(n *yaml.Node, filename, field string) ([]*yaml.Node, error) {
	switch {
	case n == nil, n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull:
		return nil, nil
	case n.Kind == yaml.SequenceNode:
		nodes := make([]*yaml.Node, 0, len(n.Content))
		for _, c := range n.Content {
			nodes = append(nodes, resolve(c))
		}
		return nodes, nil
	default:
		return nil, Errorf(filename, field, Repr(n), "The '%s' field is not a list in '%s'", field, filename)
	}
}

// decodeStrings decodes a list of strings. A single string is treated as a
// one element list.
func decodeStrings(n *yaml.Node, filename, field string) ([]string, error) {
	if n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() != tagNull {
		return []string{n.Value}, nil
	}

	nodes, err := sequence(n, filename, field)
	if err != nil {
		return nil, err
	}

	var s []string
	for _, c := range nodes {
		if c.Kind != yaml.ScalarNode {
			return nil, Errorf(filename, field, Repr(c), "Invalid value %s in '%s' field in '%s'", Repr(c), field, filename)
		}
		s = append(s, c.Value)
	}
	return s, nil
}

func decodeVersions(n *yaml.Node, filename, field string) ([]*Version, error) {
	nodes, err := sequence(n, filename, field)
	if err != nil {
		return nil, err
	}

	versions := make([]*Version, 0, len(nodes))
	for _, c := range nodes {
		v, err := decodeVersion(c, filename, field)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func decodeVersion(n *yaml.Node, filename, field string) (*Version, error) {
	if n.Kind != yaml.MappingNode {
		return nil, Errorf(filename, field, Repr(n), "The '%s' field contains %s instead of a dictionary in '%s'", field, Repr(n), filename)
	}

	v := &Version{node: n}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := resolve(n.Content[i+1])

		switch key {
		case FieldLadino:
			v.hasLadino = true
			v.Ladino = val.Value
		case FieldAccented:
			if p := optionalScalar(val); p != nil {
				v.Accented = *p
			}
		case FieldGender:
			v.Gender = optionalScalar(val)
		case FieldNumber:
			v.Number = optionalScalar(val)
		case FieldTranslations:
			v.rawTranslations = val
		case FieldAltSpelling:
			alts, err := decodeVersions(val, filename, key)
			if err != nil {
				return nil, err
			}
			v.AltSpellings = alts
		}
	}
	return v, nil
}

func decodeConjugations(n *yaml.Node, filename string) ([]*Tense, error) {
	if n == nil || n.ShortTag() == tagNull {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, Errorf(filename, FieldConjugations, Repr(n), "The 'conjugations' field is not a dictionary in '%s'", filename)
	}

	var tenses []*Tense
	for i := 0; i+1 < len(n.Content); i += 2 {
		t := &Tense{Name: n.Content[i].Value}
		forms := resolve(n.Content[i+1])
		if forms.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(forms.Content); j += 2 {
				v, err := decodeVersion(resolve(forms.Content[j+1]), filename, FieldConjugations)
				if err != nil {
					return nil, err
				}
				t.Forms = append(t.Forms, &Form{
					Pronoun: forms.Content[j].Value,
					Version: v,
				})
			}
		} else if forms.ShortTag() != tagNull {
			return nil, Errorf(filename, FieldConjugations, t.Name, "Verb conjugation time '%s' is not a dictionary in '%s'", t.Name, filename)
		}
		tenses = append(tenses, t)
	}
	return tenses, nil
}

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

package record

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, data string) *Record {
	t.Helper()

	rec, err := Decode(strings.NewReader(data), "word.yaml")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return rec
}

func node(t *testing.T, data string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatal(err)
	}
	return doc.Content[0]
}

func TestDecode(t *testing.T) {
	t.Parallel()

	rec := decode(t, `grammar: verb
origen: espanyol
kategorias: komidas
versions:
  - ladino: komer
    accented: komér
    translations:
      english: eat
examples: []
comments: [regular]
conjugations:
  pasado simple:
    yo: {ladino: komí}
  present indicative:
    tu: {ladino: komes}
    yo: {ladino: komo}
`)

	if diff := cmp.Diff("verb", rec.GrammarValue()); diff != "" {
		t.Errorf("Grammar (-want, +got):\n%s", diff)
	}
	if rec.Origin == nil || *rec.Origin != "espanyol" {
		t.Errorf("Origin: want espanyol, got %v", rec.Origin)
	}
	if diff := cmp.Diff([]string{"komidas"}, rec.Categories); diff != "" {
		t.Errorf("Categories (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"regular"}, rec.Comments); diff != "" {
		t.Errorf("Comments (-want, +got):\n%s", diff)
	}
	if !rec.HasVersions || !rec.HasExamples || !rec.HasConjugations {
		t.Errorf("presence: want all fields present, got versions=%v examples=%v conjugations=%v",
			rec.HasVersions, rec.HasExamples, rec.HasConjugations)
	}
	if rec.Examples == nil || len(rec.Examples) != 0 {
		t.Errorf("Examples: want empty list, got %v", rec.Examples)
	}
	if diff := cmp.Diff("komer", rec.Headword()); diff != "" {
		t.Errorf("Headword (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("komér", rec.Versions[0].Accented); diff != "" {
		t.Errorf("Accented (-want, +got):\n%s", diff)
	}

	// Tenses and pronouns keep their source order.
	var forms []string
	for _, tense := range rec.Conjugations {
		for _, f := range tense.Forms {
			forms = append(forms, tense.Name+"/"+f.Pronoun+"/"+f.Version.Ladino)
		}
	}
	want := []string{"pasado simple/yo/komí", "present indicative/tu/komes", "present indicative/yo/komo"}
	if diff := cmp.Diff(want, forms); diff != "" {
		t.Errorf("Conjugations (-want, +got):\n%s", diff)
	}
}

func TestDecode_presence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		data         string
		grammar      *string
		versions     bool
		examples     bool
		conjugations bool
	}{
		{
			name: "empty document",
			data: "",
		},
		{
			name: "null document",
			data: "~\n",
		},
		{
			name:     "null fields",
			data:     "grammar:\nversions:\nexamples:\nconjugations:\n",
			grammar:  ptr("None"),
			versions: true,
			examples: true,
			// A null conjugations field is still present.
			conjugations: true,
		},
		{
			name:    "grammar only",
			data:    "grammar: noun\n",
			grammar: ptr("noun"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := decode(t, test.data)
			if diff := cmp.Diff(test.grammar, rec.Grammar); diff != "" {
				t.Errorf("Grammar (-want, +got):\n%s", diff)
			}
			if rec.HasVersions != test.versions {
				t.Errorf("HasVersions: want %v, got %v", test.versions, rec.HasVersions)
			}
			if rec.HasExamples != test.examples {
				t.Errorf("HasExamples: want %v, got %v", test.examples, rec.HasExamples)
			}
			if rec.HasConjugations != test.conjugations {
				t.Errorf("HasConjugations: want %v, got %v", test.conjugations, rec.HasConjugations)
			}
		})
	}
}

func ptr(s string) *string {
	return &s
}

func TestDecode_notMapping(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("- klaro\n"), "word.yaml")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Decode: want %v, got %v", ErrValidation, err)
	}
	if diff := cmp.Diff("The file 'word.yaml' does not contain a mapping", err.Error()); diff != "" {
		t.Errorf("Decode (-want, +got):\n%s", diff)
	}
}

func TestDecode_shapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		field    string
		expected string
	}{
		{
			name:     "versions not a list",
			data:     "versions: klaro\n",
			field:    FieldVersions,
			expected: "The 'versions' field is not a list in 'word.yaml'",
		},
		{
			name:     "version not a mapping",
			data:     "versions: [klaro]\n",
			field:    FieldVersions,
			expected: "The 'versions' field contains 'klaro' instead of a dictionary in 'word.yaml'",
		},
		{
			name:     "conjugations not a mapping",
			data:     "conjugations: [komo]\n",
			field:    FieldConjugations,
			expected: "The 'conjugations' field is not a dictionary in 'word.yaml'",
		},
		{
			name:     "tense not a mapping",
			data:     "conjugations:\n  pasado simple: komí\n",
			field:    FieldConjugations,
			expected: "Verb conjugation time 'pasado simple' is not a dictionary in 'word.yaml'",
		},
		{
			name:     "kategorias reported as categories",
			data:     "kategorias: [[kolores]]\n",
			field:    FieldCategories,
			expected: "Invalid value ['kolores'] in 'kategorias' field in 'word.yaml'",
		},
		{
			name:     "examples not a list",
			data:     "examples: {ladino: Es klaro.}\n",
			field:    FieldExamples,
			expected: "The 'examples' field is not a list in 'word.yaml'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := decode(t, "grammar: adverb\n"+test.data)
			if diff := cmp.Diff("adverb", rec.GrammarValue()); diff != "" {
				t.Errorf("Grammar (-want, +got):\n%s", diff)
			}

			err := rec.ShapeError(test.field)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("ShapeError: want %v, got %v", ErrValidation, err)
			}
			if diff := cmp.Diff(test.expected, err.Error()); diff != "" {
				t.Errorf("ShapeError (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_categories(t *testing.T) {
	t.Parallel()

	rec := decode(t, "categories: [kolores, animales]\nkategorias: [komidas, kolores]\n")
	if diff := cmp.Diff([]string{"kolores", "animales", "komidas"}, rec.Categories); diff != "" {
		t.Errorf("Categories (-want, +got):\n%s", diff)
	}
	if err := rec.ShapeError(FieldCategories); err != nil {
		t.Errorf("ShapeError: %v", err)
	}
}

func TestDecode_comments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected any
	}{
		{
			name: "missing",
		},
		{
			name: "empty list",
			data: "comments: []\n",
		},
		{
			name:     "string",
			data:     "comments: regular\n",
			expected: "regular",
		},
		{
			name: "mappings",
			data: "comments:\n  - ladino: Es regular.\n    english: It is regular.\n",
			expected: []any{
				map[string]any{"ladino": "Es regular.", "english": "It is regular."},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := decode(t, test.data)
			if diff := cmp.Diff(test.expected, rec.Comments); diff != "" {
				t.Errorf("Comments (-want, +got):\n%s", diff)
			}
			if err := rec.ShapeError(FieldComments); err != nil {
				t.Errorf("ShapeError: %v", err)
			}
		})
	}
}

func TestDecode_syntax(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("grammar: [noun\n"), "word.yaml")
	if err == nil {
		t.Fatal("Decode: expected failure")
	}
	if errors.Is(err, ErrValidation) {
		t.Errorf("Decode: syntax error should not be a validation error: %v", err)
	}
}

func TestRepr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{
			name:     "mapping in source order",
			data:     "ladino: klaro\ngender: droid\n",
			expected: "{'ladino': 'klaro', 'gender': 'droid'}",
		},
		{
			name:     "scalars",
			data:     "[1, 2.5, true, false, ~, text]",
			expected: "[1, 2.5, True, False, None, 'text']",
		},
		{
			name:     "single quote",
			data:     `"It's"`,
			expected: `"It's"`,
		},
		{
			name:     "both quotes",
			data:     `"It's \"so\""`,
			expected: `'It\'s "so"'`,
		},
		{
			name:     "newline",
			data:     `"a\nb"`,
			expected: `'a\nb'`,
		},
		{
			name:     "nested",
			data:     "{english: [clear], french: {a: b}}",
			expected: "{'english': ['clear'], 'french': {'a': 'b'}}",
		},
		{
			name:     "alias",
			data:     "a: &x klaro\nb: *x\n",
			expected: "{'a': 'klaro', 'b': 'klaro'}",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Repr(node(t, test.data))); diff != "" {
				t.Errorf("Repr (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"{a: b}":     "dict",
		"[a]":        "list",
		"text":       "str",
		"5":          "int",
		"5.5":        "float",
		"true":       "bool",
		"~":          "NoneType",
		"2024-01-02": "date",
	}

	for data, want := range tests {
		t.Run(data, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(want, TypeName(node(t, data))); diff != "" {
				t.Errorf("TypeName (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParseTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		kind  TranslationKind
		words []string
		err   string
	}{
		{
			name:  "empty string",
			data:  "''",
			kind:  Empty,
			words: []string{},
		},
		{
			name:  "string",
			data:  "clear",
			kind:  Single,
			words: []string{"clear"},
		},
		{
			name:  "list",
			data:  "[clear, evident]",
			kind:  Many,
			words: []string{"clear", "evident"},
		},
		{
			name:  "empty list",
			data:  "[]",
			kind:  Many,
			words: []string{},
		},
		{
			name: "int",
			data: "5",
			err:  "int",
		},
		{
			name: "null",
			data: "~",
			err:  "NoneType",
		},
		{
			name: "dict",
			data: "{a: b}",
			err:  "dict",
		},
		{
			name: "nested list",
			data: "[[a]]",
			err:  "list",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tr, err := ParseTranslation(node(t, test.data))
			if test.err != "" {
				var terr *TranslationTypeError
				if !errors.As(err, &terr) {
					t.Fatalf("ParseTranslation: want *TranslationTypeError, got %v", err)
				}
				if !errors.Is(err, ErrTranslationType) {
					t.Errorf("ParseTranslation: want %v, got %v", ErrTranslationType, err)
				}
				if diff := cmp.Diff(test.err, terr.Type); diff != "" {
					t.Errorf("Type (-want, +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTranslation: %v", err)
			}
			if tr.Kind() != test.kind {
				t.Errorf("Kind: want %v, got %v", test.kind, tr.Kind())
			}
			if diff := cmp.Diff(test.words, tr.Words()); diff != "" {
				t.Errorf("Words (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTranslation_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tr       Translation
		expected string
	}{
		{name: "empty", tr: NoTranslation(), expected: "[]"},
		{name: "single", tr: SingleTranslation("clear"), expected: `["clear"]`},
		{name: "many", tr: ManyTranslation("clear", "evident"), expected: `["clear","evident"]`},
		{name: "empty single", tr: SingleTranslation(""), expected: "[]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := test.tr.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Errorf("MarshalJSON (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTranslations(t *testing.T) {
	t.Parallel()

	tr := Translations{"english": ManyTranslation("clear", "evident")}

	if diff := cmp.Diff("clear", tr.First("english")); diff != "" {
		t.Errorf("First (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("", tr.First("french")); diff != "" {
		t.Errorf("First (-want, +got):\n%s", diff)
	}
	if got := tr.Words("french"); got != nil {
		t.Errorf("Words: want nil, got %v", got)
	}
}

func TestVersion_String(t *testing.T) {
	t.Parallel()

	rec := decode(t, "versions:\n  - ladino: klaro\n    gender: ~\n")
	if diff := cmp.Diff("{'ladino': 'klaro', 'gender': None}", rec.Versions[0].String()); diff != "" {
		t.Errorf("String (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("{}", (&Version{}).String()); diff != "" {
		t.Errorf("String (-want, +got):\n%s", diff)
	}
}

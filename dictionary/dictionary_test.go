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

package dictionary_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ladino/dictionary"
	"github.com/ianlewis/go-ladino/internal/testutil"
	"github.com/ianlewis/go-ladino/record"
)

func ladinos(versions []*record.Version) []string {
	var words []string
	for _, v := range versions {
		words = append(words, v.Ladino)
	}
	return words
}

func headwords(recs []*record.Record) []string {
	var words []string
	for _, r := range recs {
		words = append(words, r.Headword()+"|"+r.Versions[0].Translations.First("english"))
	}
	return words
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeWords(t, map[string]string{
		"klaro.yaml": testutil.Klaro,
	})

	d, err := dictionary.Load(testutil.Config(), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"Klaro"}, ladinos(d.Versions)); diff != "" {
		t.Errorf("Versions (-want, +got):\n%s", diff)
	}
	if want, got := "klaro.yaml", d.Versions[0].Source; want != got {
		t.Errorf("Source: want %q, got %q", want, got)
	}

	wantExamples := []*record.TaggedExample{
		{
			Example: record.Example{"ladino": "Es klaro.", "english": "It's clear."},
			Word:    "klaro",
			Source:  "klaro.yaml",
		},
	}
	if diff := cmp.Diff(wantExamples, d.Examples); diff != "" {
		t.Errorf("Examples (-want, +got):\n%s", diff)
	}
	if want, got := 1, len(d.Records); want != got {
		t.Errorf("Records: want %d, got %d", want, got)
	}
	if d.Verbs != nil {
		t.Errorf("Verbs: want none, got %d", len(d.Verbs))
	}
}

func TestLoad_compression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    testutil.Compression
	}{
		{name: "plain", c: testutil.None},
		{name: "gzip", c: testutil.Gzip},
		{name: "dictzip", c: testutil.DictZip},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			testutil.WriteFile(t, dir, "klaro.yaml", testutil.Klaro, test.c)
			testutil.WriteFile(t, dir, "komer.yaml", testutil.Komer, test.c)

			d, err := dictionary.Load(testutil.Config(), dir)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			want := []string{"Klaro", "komer", "komo", "komes", "komí"}
			if diff := cmp.Diff(want, ladinos(d.Versions)); diff != "" {
				t.Errorf("Versions (-want, +got):\n%s", diff)
			}
			if want, got := 2, len(d.Examples); want != got {
				t.Errorf("Examples: want %d, got %d", want, got)
			}
			if want, got := 1, len(d.Verbs); want != got {
				t.Errorf("Verbs: want %d, got %d", want, got)
			}
		})
	}
}

func TestLoad_fileOrder(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeWords(t, map[string]string{
		"b.yaml": "grammar: adverb\norigen: turko\nversions:\n  - ladino: b\nexamples: []\n",
		"a.yaml": "grammar: adverb\norigen: turko\nversions:\n  - ladino: a\nexamples: []\n",
		"c.yaml": "grammar: adverb\norigen: turko\nversions:\n  - ladino: c\nexamples: []\n",
	})

	d, err := dictionary.Load(testutil.Config(), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ladinos(d.Versions)); diff != "" {
		t.Errorf("Versions (-want, +got):\n%s", diff)
	}
}

func TestLoad_error(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeWords(t, map[string]string{
		"a.yaml": testutil.Klaro,
		"b.yaml": "origen: hebrew\nversions:\n  - ladino: klaro\nexamples: []\n",
		"c.yaml": "grammar: Strange\n",
	})

	d, err := dictionary.Load(testutil.Config(), dir)
	if d != nil {
		t.Errorf("Load: want nil dictionary, got %v", d)
	}
	if !errors.Is(err, record.ErrValidation) {
		t.Fatalf("Load: want %v, got %v", record.ErrValidation, err)
	}
	if diff := cmp.Diff("The 'grammar' field is missing from file 'b.yaml'", err.Error()); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_conjugationTense(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeWords(t, map[string]string{
		"komer.yaml": "grammar: verb\norigen: espanyol\nversions:\n  - ladino: komer\nexamples: []\nconjugations:\n  futuro:\n    yo:\n      ladino: komere\n",
	})

	d, err := dictionary.Load(testutil.Config(), dir)
	if d != nil {
		t.Errorf("Load: want nil dictionary, got %v", d)
	}
	if diff := cmp.Diff("Verb conjugation time 'futuro' is no recogrnized in 'komer.yaml'", err.Error()); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_missingDir(t *testing.T) {
	t.Parallel()

	d, err := dictionary.Load(testutil.Config(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Load: expected failure")
	}
	if d != nil {
		t.Errorf("Load: want nil dictionary, got %v", d)
	}
}

func TestLoad_groupings(t *testing.T) {
	t.Parallel()

	dir := testutil.MakeWords(t, map[string]string{
		"preto.yaml": `grammar: adjective
origen: espanyol
categories: [kolores]
versions:
  - ladino: preto
    translations:
      english: black
examples: []
`,
		"blanko.yaml": `grammar: adjective
origen: espanyol
categories: [kolores]
versions:
  - ladino: blanko
    translations:
      english: white
examples: []
`,
		"blanko2.yaml": `grammar: adjective
origen: espanyol
kategorias: [kolores, komidas]
versions:
  - ladino: blanko
    translations:
      english: blank
examples: []
`,
		"komer.yaml": testutil.Komer,
	})

	d, err := dictionary.Load(testutil.Config(), dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"blanko|blank", "blanko|white", "preto|black"}
	if diff := cmp.Diff(want, headwords(d.Categories["kolores"])); diff != "" {
		t.Errorf("Categories[kolores] (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"blanko|blank"}, headwords(d.Categories["komidas"])); diff != "" {
		t.Errorf("Categories[komidas] (-want, +got):\n%s", diff)
	}
	if got, ok := d.Categories["animales"]; !ok || got != nil {
		t.Errorf("Categories[animales]: want empty grouping, got %v, %v", got, ok)
	}

	want = []string{"preto|black", "blanko|white", "blanko|blank"}
	if diff := cmp.Diff(want, headwords(d.Lists["kolores"])); diff != "" {
		t.Errorf("Lists[kolores] (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"komer|eat"}, headwords(d.Verbs)); diff != "" {
		t.Errorf("Verbs (-want, +got):\n%s", diff)
	}
}

func TestLoadExamples(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "b.yaml", "examples:\n  - ladino: Buenos diyas.\n    english: Good morning.\n", testutil.None)
	testutil.WriteFile(t, dir, "a.yaml", "examples:\n  - ladino: Ke haber?\n  - ladino: Bien.\n", testutil.Gzip)
	testutil.WriteFile(t, dir, "empty.yaml", "", testutil.None)

	examples, err := dictionary.LoadExamples(dir)
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}

	want := []*record.TaggedExample{
		{Example: record.Example{"ladino": "Ke haber?"}, Source: "a.yaml.gz"},
		{Example: record.Example{"ladino": "Bien."}, Source: "a.yaml.gz"},
		{Example: record.Example{"ladino": "Buenos diyas.", "english": "Good morning."}, Source: "b.yaml"},
	}
	if diff := cmp.Diff(want, examples); diff != "" {
		t.Errorf("LoadExamples (-want, +got):\n%s", diff)
	}
}

func TestLoadExamples_missing(t *testing.T) {
	t.Parallel()

	examples, err := dictionary.LoadExamples(filepath.Join(t.TempDir(), "examples"))
	if err != nil {
		t.Fatalf("LoadExamples: %v", err)
	}
	if examples != nil {
		t.Errorf("LoadExamples: want nil, got %v", examples)
	}
}

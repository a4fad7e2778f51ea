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

// Package schema checks word records against the configured vocabularies.
//
// Checks run in a fixed order and stop at the first failure:
//  1. grammar is present and known.
//  2. conjugations are present if and only if the grammar is "verb".
//  3. for nouns, every version has a known gender and number.
//  4. origen is present and known.
//  5. every category is known.
//  6. versions are present and not empty.
//  7. examples are present (an empty list is allowed).
package schema

import (
	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/record"
)

// Validate checks rec against the vocabularies in cfg. The returned error is
// a *record.Error describing the first violation found.
func Validate(cfg *config.Config, rec *record.Record) error {
	for _, check := range []func(*config.Config, *record.Record) error{
		checkGrammar,
		checkConjugations,
		checkNoun,
		checkOrigin,
		checkCategories,
		checkVersions,
		checkExamples,
	} {
		if err := check(cfg, rec); err != nil {
			return err
		}
	}
	return nil
}

func checkGrammar(cfg *config.Config, rec *record.Record) error {
	f := rec.Filename
	if rec.Grammar == nil {
		return record.Errorf(f, record.FieldGrammar, "", "The 'grammar' field is missing from file '%s'", f)
	}
	if g := *rec.Grammar; !cfg.HasGrammar(g) {
		return record.Errorf(f, record.FieldGrammar, g, "Invalid grammar '%s' in file '%s'", g, f)
	}
	return nil
}

func checkConjugations(_ *config.Config, rec *record.Record) error {
	f := rec.Filename
	isVerb := rec.GrammarValue() == config.Verb
	if isVerb && !rec.HasConjugations {
		return record.Errorf(f, record.FieldConjugations, "", "Grammar is 'verb', but there is NO 'conjugations' field in '%s'", f)
	}
	if !isVerb && rec.HasConjugations {
		return record.Errorf(f, record.FieldConjugations, "", "Grammar is NOT a 'verb', but there are conjugations in '%s'", f)
	}
	return nil
}

func checkNoun(cfg *config.Config, rec *record.Record) error {
	if rec.GrammarValue() != config.Noun {
		return nil
	}

	if err := rec.ShapeError(record.FieldVersions); err != nil {
		return err
	}

	f := rec.Filename
	for _, v := range rec.Versions {
		if v.Gender == nil {
			return record.Errorf(f, record.FieldGender, "", "The 'gender' field is None in '%s' version %s", f, v)
		}
		if g := *v.Gender; !cfg.HasGender(g) {
			return record.Errorf(f, record.FieldGender, g, "Invalid value '%s' in 'gender' field in '%s' version %s", g, f, v)
		}
		if v.Number == nil {
			return record.Errorf(f, record.FieldNumber, "", "The 'number' field is None in '%s' version %s", f, v)
		}
		if n := *v.Number; !cfg.HasNumber(n) {
			return record.Errorf(f, record.FieldNumber, n, "The 'number' field is '%s' in '%s' version %s", n, f, v)
		}
	}
	return nil
}

func checkOrigin(cfg *config.Config, rec *record.Record) error {
	f := rec.Filename
	if rec.Origin == nil {
		return record.Errorf(f, record.FieldOrigin, "", "The 'origen' field is missing from file '%s'", f)
	}
	if o := *rec.Origin; !cfg.HasOrigin(o) {
		return record.Errorf(f, record.FieldOrigin, o, "Invalid origen '%s' in file '%s'", o, f)
	}
	return nil
}

func checkCategories(cfg *config.Config, rec *record.Record) error {
	if err := rec.ShapeError(record.FieldCategories); err != nil {
		return err
	}
	for _, cat := range rec.Categories {
		if !cfg.HasCategory(cat) {
			return record.Errorf(rec.Filename, record.FieldCategories, cat, "Invalid category '%s' in file '%s'", cat, rec.Filename)
		}
	}
	return nil
}

func checkVersions(_ *config.Config, rec *record.Record) error {
	f := rec.Filename
	if !rec.HasVersions {
		return record.Errorf(f, record.FieldVersions, "", "The 'versions' field is missing from file '%s'", f)
	}
	if err := rec.ShapeError(record.FieldVersions); err != nil {
		return err
	}
	if len(rec.Versions) == 0 {
		return record.Errorf(f, record.FieldVersions, "", "The 'versions' field is empty in file '%s'", f)
	}
	return nil
}

func checkExamples(_ *config.Config, rec *record.Record) error {
	if !rec.HasExamples {
		return record.Errorf(rec.Filename, record.FieldExamples, "", "The 'examples' field is missing in '%s'", rec.Filename)
	}
	return nil
}

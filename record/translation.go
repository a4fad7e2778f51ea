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
	"fmt"
	"slices"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// ErrTranslationType indicates a translation value that is neither a string
// nor a list of strings.
var ErrTranslationType = errors.New("bad translation type")

// TranslationKind is the source shape of a translation value.
type TranslationKind int

const (
	// Empty is an empty string: the word has no translation.
	Empty TranslationKind = iota

	// Single is a non-empty string: a single target word.
	Single

	// Many is a list of target words.
	Many
)

// String returns the kind name.
func (k TranslationKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Single:
		return "single"
	case Many:
		return "many"
	default:
		return fmt.Sprintf("TranslationKind(%d)", int(k))
	}
}

// Translation is the translation of a word into one target language. Its
// kind is decided from the source document when the record is read.
type Translation struct {
	kind  TranslationKind
	words []string
}

// NoTranslation returns an empty translation.
func NoTranslation() Translation {
	return Translation{kind: Empty}
}

// SingleTranslation returns a translation with a single target word. An
// empty word yields an empty translation.
func SingleTranslation(word string) Translation {
	if word == "" {
		return NoTranslation()
	}
	return Translation{kind: Single, words: []string{word}}
}

// ManyTranslation returns a list-valued translation. The list is kept as
// given.
func ManyTranslation(words ...string) Translation {
	return Translation{kind: Many, words: slices.Clone(words)}
}

// TranslationTypeError is returned by [ParseTranslation] for values of an
// unsupported type.
type TranslationTypeError struct {
	// Type is the name of the offending value's type.
	Type string
}

// Error implements [error.Error].
func (e *TranslationTypeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrTranslationType, e.Type)
}

// Unwrap returns [ErrTranslationType].
func (e *TranslationTypeError) Unwrap() error {
	return ErrTranslationType
}

// ParseTranslation reads a translation from its YAML node. Strings become
// Empty or Single translations and sequences of scalars become Many
// translations. Any other value is a *TranslationTypeError.
func ParseTranslation(n *yaml.Node) (Translation, error) {
	n = resolve(n)
	if n == nil {
		return Translation{}, &TranslationTypeError{Type: TypeName(n)}
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() != tagStr {
			return Translation{}, &TranslationTypeError{Type: TypeName(n)}
		}
		return SingleTranslation(n.Value), nil
	case yaml.SequenceNode:
		words := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolve(c)
			if c == nil || c.Kind != yaml.ScalarNode {
				return Translation{}, &TranslationTypeError{Type: TypeName(n)}
			}
			words = append(words, c.Value)
		}
		return Translation{kind: Many, words: words}, nil
	default:
		return Translation{}, &TranslationTypeError{Type: TypeName(n)}
	}
}

// Kind returns the source shape of the translation.
func (t Translation) Kind() TranslationKind {
	return t.kind
}

// Words returns the translation as a list of target words. Empty
// translations return an empty, non-nil list.
func (t Translation) Words() []string {
	if len(t.words) == 0 {
		return []string{}
	}
	return slices.Clone(t.words)
}

// First returns the first target word or the empty string.
func (t Translation) First() string {
	if len(t.words) == 0 {
		return ""
	}
	return t.words[0]
}

// MarshalJSON implements [json.Marshaler]. Translations are always written
// as lists.
func (t Translation) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // error should not be wrapped
	return sonic.ConfigStd.Marshal(t.Words())
}

// Translations maps a target language to a translation.
type Translations map[string]Translation

// Words returns the target words for language.
func (t Translations) Words(language string) []string {
	tr, ok := t[language]
	if !ok {
		return nil
	}
	return tr.Words()
}

// First returns the first target word for language or the empty string.
func (t Translations) First(language string) string {
	return t[language].First()
}

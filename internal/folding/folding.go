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

// Package folding implements the text folding used to build dictionary keys
// and search queries.
package folding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WhitespaceFolder trims leading and trailing whitespace and collapses every
// internal whitespace span into a single ASCII space.
type WhitespaceFolder struct {
	// seenText is set once the first non-space rune has been emitted.
	seenText bool

	// pending is set while inside an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			if w.seenText {
				w.pending = true
			}
			continue
		}

		// Runes are written with EncodeRune so that invalid input is replaced
		// by utf8.RuneError, whose length differs from size.
		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}

// NewKeyFolder returns a transformer that produces dictionary keys: whitespace
// is folded and the text is lower cased.
func NewKeyFolder() transform.Transformer {
	return transform.Chain(&WhitespaceFolder{}, cases.Lower(language.Und))
}

// NewSearchFolder returns a transformer used for lenient lookups. On top of
// key folding it strips combining marks so that "kómo" matches "komo".
func NewSearchFolder() transform.Transformer {
	return transform.Chain(
		&WhitespaceFolder{},
		cases.Lower(language.Und),
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
}

// Key returns the dictionary key for word.
func Key(word string) string {
	return apply(NewKeyFolder(), word, strings.ToLower)
}

// Search returns the search key for word.
func Search(word string) string {
	return apply(NewSearchFolder(), word, strings.ToLower)
}

func apply(t transform.Transformer, s string, fallback func(string) string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return fallback(s)
	}
	return out
}

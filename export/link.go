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

package export

import (
	"fmt"
	"regexp"

	"github.com/ianlewis/go-ladino/internal/folding"
)

var wordRegexp = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// LinkWords replaces every word of sentence that has a Ladino page with a
// link to that page. The link text keeps the original case.
func LinkWords(sentence string, has func(string) bool) string {
	return wordRegexp.ReplaceAllStringFunc(sentence, func(word string) string {
		key := folding.Key(word)
		if !has(key) {
			return word
		}
		return fmt.Sprintf(`<a href="/words/ladino/%s.html">%s</a>`, key, word)
	})
}

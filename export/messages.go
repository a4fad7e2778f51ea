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
	"slices"
	"strings"
	"time"
)

// Message is a short text published outside the dictionary.
type Message struct {
	// Page is the page name of the message without extension.
	Page string `json:"page"`

	// Title is the message title.
	Title string `json:"title"`

	// Filename is the file the message was read from.
	Filename string `json:"filename"`

	// Text is the plain message text.
	Text string `json:"text"`

	// Published is the publication time.
	Published time.Time `json:"pub"`
}

// MessageSource provides messages to publish alongside the dictionary.
type MessageSource interface {
	Messages() ([]*Message, error)
}

// MessageSourceFunc adapts a function to a [MessageSource].
type MessageSourceFunc func() ([]*Message, error)

// Messages implements [MessageSource.Messages].
func (f MessageSourceFunc) Messages() ([]*Message, error) {
	return f()
}

// LinkedMessage is a message with linked title and text and the pages of
// its neighbours.
type LinkedMessage struct {
	*Message

	TitleHTML string `json:"title_html"`
	TextHTML  string `json:"text_html"`

	// Prev and Next are the pages of the neighbouring messages. The first
	// and last message link to each other.
	Prev string `json:"prev"`
	Next string `json:"next"`
}

// LinkMessages returns the messages newest first with words that have a
// Ladino page linked. Line breaks in the text become <br> tags.
func LinkMessages(msgs []*Message, has func(string) bool) []*LinkedMessage {
	sorted := slices.Clone(msgs)
	slices.SortStableFunc(sorted, func(a, b *Message) int {
		return b.Published.Compare(a.Published)
	})

	n := len(sorted)
	linked := make([]*LinkedMessage, 0, n)
	for i, m := range sorted {
		linked = append(linked, &LinkedMessage{
			Message:   m,
			TitleHTML: LinkWords(m.Title, has),
			TextHTML:  strings.ReplaceAll(LinkWords(m.Text, has), "\n", "<br>"),
			Prev:      sorted[(i+n-1)%n].Page,
			Next:      sorted[(i+1)%n].Page,
		})
	}
	return linked
}

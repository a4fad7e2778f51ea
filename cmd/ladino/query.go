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

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ladino"
	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/export"
)

// ErrNotFound indicates that a query matched no words.
var ErrNotFound = fmt.Errorf("%w: not found", ErrLadino)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up a word in the dictionary",
		ArgsUsage: "WORD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Usage:   "look up the word in `LANG`",
				Aliases: []string{"l"},
				Value:   config.Ladino,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one WORD argument", ErrFlagParse)
			}

			site, err := openSite(c)
			if err != nil {
				return err
			}

			language := c.String("language")
			if !slices.Contains(site.Index.AllLanguages(), language) {
				return fmt.Errorf("%w: unknown language %q", ErrFlagParse, language)
			}

			words := site.Index.Search(language, c.Args().First())
			if len(words) == 0 {
				return fmt.Errorf("%w: %q", ErrNotFound, c.Args().First())
			}

			for _, w := range words {
				if err := printWord(c.App.Writer, site, language, w); err != nil {
					return fmt.Errorf("%w: %w", ErrLadino, err)
				}
			}
			return nil
		},
	}
}

// printWord writes the translations, entries and examples of word.
func printWord(w io.Writer, site *ladino.Site, language, word string) error {
	entry, _ := site.Index.Lookup(language, word)
	has := export.Has(site.Index)

	var b strings.Builder
	fmt.Fprintln(&b, word)
	for _, l := range slices.Sorted(maps.Keys(entry)) {
		fmt.Fprintf(&b, "  %s: %s\n", l, strings.Join(entry[l], ", "))
	}

	for _, v := range site.Index.PagesOf(language, word) {
		fmt.Fprintf(&b, "\n  %s (%s)\n", v.Ladino, v.Source)
		for _, ex := range v.Examples {
			if text, ok := ex[config.Ladino]; ok {
				fmt.Fprintf(&b, "    %s\n", html2text.HTML2Text(export.LinkWords(text, has)))
			}
			for _, l := range slices.Sorted(maps.Keys(ex)) {
				if l == config.Ladino {
					continue
				}
				fmt.Fprintf(&b, "      %s: %s\n", l, ex[l])
			}
		}
	}
	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	//nolint:wrapcheck // Wrapped by the caller.
	return err
}

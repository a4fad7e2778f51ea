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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Print word and example totals per language",
		ArgsUsage: " ",
		Action: func(c *cli.Context) error {
			if c.NArg() != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			site, err := openSite(c)
			if err != nil {
				return err
			}

			tbl := table.New("Language", "Words", "Examples").WithWriter(c.App.Writer)
			for _, l := range site.Index.AllLanguages() {
				count := site.Index.Count[l]
				tbl.AddRow(l, count.Words, count.Examples)
			}
			tbl.Print()

			_, err = fmt.Fprintf(c.App.Writer, "\nRecords: %d\nStarted: %s\nElapsed: %v\n",
				len(site.Dictionary.Records),
				site.Report.Start.Format("2006-01-02 15:04:05"),
				site.Report.Elapsed)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLadino, err)
			}
			return nil
		},
	}
}

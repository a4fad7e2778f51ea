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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ladino/config"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Validate the dictionary and export the site data",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "html",
				Usage:   "write the site data to `DIR`; its contents are removed first",
				EnvVars: []string{"LADINO_HTML"},
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the JSON files",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			dir := c.String("html")
			if dir == "" {
				return fmt.Errorf("%w: --html is required", ErrFlagParse)
			}

			site, err := openSite(c)
			if err != nil {
				return err
			}

			if err := site.Export(dir, c.Bool("pretty"), nil); err != nil {
				return fmt.Errorf("%w: %w", ErrLadino, err)
			}

			_, err = fmt.Fprintf(c.App.Writer, "Exported %d Ladino words and %d examples to %s in %v\n",
				len(site.Index.Pages[config.Ladino]), len(site.Examples), dir, site.Report.Elapsed)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLadino, err)
			}
			return nil
		},
	}
}

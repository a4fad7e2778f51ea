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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-ladino"
	"github.com/ianlewis/go-ladino/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrLadino is a parent error for all command errors.
var ErrLadino = errors.New("ladino")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrLadino)

// ErrNoDictionary indicates that no dictionary repository was given or found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary repository", ErrLadino)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

// defaultDictionary returns the first default location that holds a
// dictionary configuration file.
func defaultDictionary() string {
	for _, loc := range dictLocations() {
		if _, err := os.Stat(filepath.Join(loc, config.FileName)); err == nil {
			return loc
		}
	}
	return ""
}

// setupLogging configures the global logger to write to w at the given level.
func setupLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: log level: %w", ErrFlagParse, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	return nil
}

// openSite opens the repository given by the --dictionary flag.
func openSite(c *cli.Context) (*ladino.Site, error) {
	repo := c.String("dictionary")
	if repo == "" {
		return nil, ErrNoDictionary
	}
	//nolint:wrapcheck // Validation errors are shown as is.
	return ladino.Open(repo, nil)
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, ", "), versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrLadino, err)
	}
	return nil
}

func newLadinoApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build the Ladino dictionary site data.",
		Description: strings.Join([]string{
			"Validates a Ladino dictionary repository and exports its",
			"cross-language index as JSON.",
			"http://github.com/ianlewis/go-ladino",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "read the dictionary repository in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"LADINO_DICTIONARY"},
				Value:   defaultDictionary(),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log at `LEVEL` (debug, info, warn, error)",
				EnvVars: []string{"LADINO_LOG_LEVEL"},
				Value:   zerolog.WarnLevel.String(),
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			return setupLogging(c.String("log-level"), c.App.ErrWriter)
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			if err := cli.ShowAppHelp(c); err != nil {
				return fmt.Errorf("%w: %w", ErrLadino, err)
			}
			return nil
		},
		Commands: []*cli.Command{
			buildCommand(),
			queryCommand(),
			statsCommand(),
		},
	}
}

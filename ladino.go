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

package ladino

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ianlewis/go-ladino/config"
	"github.com/ianlewis/go-ladino/crossindex"
	"github.com/ianlewis/go-ladino/dictionary"
	"github.com/ianlewis/go-ladino/export"
	"github.com/ianlewis/go-ladino/record"
)

const (
	// WordsDir is the directory of word records in a repository.
	WordsDir = "words"

	// ExamplesDir is the directory of extra examples in a repository.
	ExamplesDir = "examples"
)

// Options are options for opening a repository.
type Options struct {
	// Index are options passed to the index builder.
	Index *crossindex.Options

	// Now returns the current time. The default is [time.Now].
	Now func() time.Time
}

// Report describes a run.
type Report struct {
	// Start is the time the run started.
	Start time.Time

	// Elapsed is the time taken to load and index the repository.
	Elapsed time.Duration

	// Count holds per language word and example totals.
	Count map[string]*crossindex.Count
}

// Site is a loaded and indexed dictionary repository.
type Site struct {
	// Config is the repository configuration.
	Config *config.Config

	// Dictionary is the loaded dictionary.
	Dictionary *dictionary.Dictionary

	// Index is the cross-language index.
	Index *crossindex.Index

	// Examples are the dictionary examples followed by the extra examples.
	Examples []*record.TaggedExample

	// Report describes the run.
	Report *Report
}

// Open loads the dictionary repository at repoPath and indexes it.
func Open(repoPath string, opts *Options) (*Site, error) {
	if opts == nil {
		opts = &Options{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	log.Info().Str("path", repoPath).Msg("opening dictionary repository")

	cfg, err := config.Load(repoPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	d, err := dictionary.Load(cfg, filepath.Join(repoPath, WordsDir))
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	extra, err := dictionary.LoadExamples(filepath.Join(repoPath, ExamplesDir))
	if err != nil {
		return nil, fmt.Errorf("loading examples: %w", err)
	}

	idx := crossindex.Build(cfg.Languages, d.Versions, opts.Index)

	report := &Report{
		Start:   start,
		Elapsed: now().Sub(start),
		Count:   idx.Count,
	}

	log.Info().
		Int("ladino_words", idx.Count[config.Ladino].Words).
		Int("ladino_examples", idx.Count[config.Ladino].Examples).
		Dur("elapsed", report.Elapsed).
		Msg("dictionary indexed")

	return &Site{
		Config:     cfg,
		Dictionary: d,
		Index:      idx,
		Examples:   slices.Concat(d.Examples, extra),
		Report:     report,
	}, nil
}

// Export writes the site JSON files to dir. The directory is cleared first.
// messages may be nil.
func (s *Site) Export(dir string, pretty bool, messages export.MessageSource) error {
	//nolint:wrapcheck // export errors carry the path.
	return export.Export(dir, s.Index, &export.Options{
		Pretty:   pretty,
		Examples: s.Examples,
		Messages: messages,
	})
}

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

package dictionary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-ladino/record"
)

// examplesFile is the layout of a file in the extra examples directory.
type examplesFile struct {
	Examples []record.Example `yaml:"examples"`
}

// LoadExamples reads the extra example files in dir. Each file holds an
// "examples" sequence. Examples are tagged with their source file name but
// not with a word. A missing directory yields no examples.
func LoadExamples(dir string) ([]*record.TaggedExample, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	log.Info().Str("path", dir).Msg("loading examples")

	var examples []*record.TaggedExample
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())

		r, err := open(path)
		if err != nil {
			return nil, err
		}
		var file examplesFile
		err = yaml.NewDecoder(r).Decode(&file)
		r.Close()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding %q: %w", path, err)
		}

		for _, ex := range file.Examples {
			examples = append(examples, &record.TaggedExample{
				Example: ex,
				Source:  e.Name(),
			})
		}
	}

	return examples, nil
}

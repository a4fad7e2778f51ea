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

// Package ladino builds a multilingual Ladino dictionary from a repository of
// hand-written word records.
//
// A dictionary repository contains:
//  1. A config.yaml file that lists the allowed grammar kinds, origins,
//     categories, genders, numbers, verb tenses and pronouns, and the
//     curated word lists.
//  2. A words directory with one YAML record per headword. Records may be
//     compressed with gzip (.gz) or dictzip (.dz).
//  3. An optional examples directory with extra example sentences.
//
// [Open] validates and loads every record, flattens the records into
// versions and builds the cross-language index. The result can be written
// out as JSON with [Site.Export].
package ladino

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

package record

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every word record validation error.
var ErrValidation = errors.New("invalid word record")

// Error is a word record validation error. The message identifies the file,
// the field and, where relevant, the offending value and sub-record.
type Error struct {
	// Filename is the base name of the record file.
	Filename string

	// Field is the name of the offending field.
	Field string

	// Value is the offending value, if any.
	Value string

	msg string
}

// Errorf returns a new validation error with a formatted message.
func Errorf(filename, field, value, format string, args ...any) *Error {
	return &Error{
		Filename: filename,
		Field:    field,
		Value:    value,
		msg:      fmt.Sprintf(format, args...),
	}
}

// Error implements [error.Error].
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns [ErrValidation].
func (e *Error) Unwrap() error {
	return ErrValidation
}

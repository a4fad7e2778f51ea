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
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	tagStr       = "!!str"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagBool      = "!!bool"
	tagNull      = "!!null"
	tagTimestamp = "!!timestamp"
	tagBinary    = "!!binary"
)

// Repr renders a YAML node the way record fields are quoted in validation
// messages, e.g. {'ladino': 'klaro', 'gender': 'droid'}. Mapping keys keep
// their source order.
func Repr(n *yaml.Node) string {
	var b strings.Builder
	writeRepr(&b, n)
	return b.String()
}

func writeRepr(b *strings.Builder, n *yaml.Node) {
	n = resolve(n)
	if n == nil {
		b.WriteString("None")
		return
	}

	switch n.Kind {
	case yaml.MappingNode:
		b.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, n.Content[i])
			b.WriteString(": ")
			writeRepr(b, n.Content[i+1])
		}
		b.WriteByte('}')
	case yaml.SequenceNode:
		b.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, c)
		}
		b.WriteByte(']')
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			writeRepr(b, n.Content[0])
		}
	default:
		writeScalarRepr(b, n)
	}
}

func writeScalarRepr(b *strings.Builder, n *yaml.Node) {
	switch n.ShortTag() {
	case tagNull:
		b.WriteString("None")
	case tagBool:
		var v bool
		if err := n.Decode(&v); err == nil && v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case tagInt, tagFloat:
		b.WriteString(n.Value)
	default:
		quote(b, n.Value)
	}
}

// quote writes s as a single quoted literal unless it contains a single quote
// and no double quote.
func quote(b *strings.Builder, s string) {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
}

// TypeName returns the name used for the type of a node's value in
// validation messages.
func TypeName(n *yaml.Node) string {
	n = resolve(n)
	if n == nil {
		return "NoneType"
	}

	switch n.Kind {
	case yaml.MappingNode:
		return "dict"
	case yaml.SequenceNode:
		return "list"
	}

	switch n.ShortTag() {
	case tagStr:
		return "str"
	case tagInt:
		return "int"
	case tagFloat:
		return "float"
	case tagBool:
		return "bool"
	case tagNull:
		return "NoneType"
	case tagTimestamp:
		return "date"
	case tagBinary:
		return "bytes"
	default:
		return strings.TrimPrefix(n.ShortTag(), "!")
	}
}

// resolve follows aliases to the anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

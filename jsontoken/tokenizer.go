// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsontoken

// DefaultMaxTokens bounds the token array for a single document
const DefaultMaxTokens = 256

// maxNesting bounds object/array nesting while tokenizing
const maxNesting = 32

type tokenizer struct {
	buf       []byte
	pos       int
	tokens    []Token
	maxTokens int
	depth     int
}

// Parse tokenizes buf into a Document. Whitespace between tokens is accepted
// here; rejecting it is left to the caller. A maxTokens value of zero or less
// selects DefaultMaxTokens.
func Parse(buf []byte, maxTokens int) (*Document, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	t := &tokenizer{
		buf:       buf,
		maxTokens: maxTokens,
	}
	t.skipSpace()
	if t.pos >= len(t.buf) {
		return nil, ErrZeroTokens
	}
	if err := t.value(); err != nil {
		return nil, err
	}
	t.skipSpace()
	if t.pos != len(t.buf) {
		return nil, ErrInvalid
	}
	return &Document{
		Buffer: buf,
		Tokens: t.tokens,
	}, nil
}

func (t *tokenizer) add(tok Token) (int, error) {
	if len(t.tokens) >= t.maxTokens {
		return 0, ErrTooManyTokens
	}
	t.tokens = append(t.tokens, tok)
	return len(t.tokens) - 1, nil
}

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.buf) && IsSpace(t.buf[t.pos]) {
		t.pos++
	}
}

func (t *tokenizer) value() error {
	t.skipSpace()
	if t.pos >= len(t.buf) {
		return ErrIncomplete
	}
	switch t.buf[t.pos] {
	case '{':
		return t.container(TokenObject, '}')
	case '[':
		return t.container(TokenArray, ']')
	case '"':
		_, err := t.str()
		return err
	default:
		return t.primitive()
	}
}

func (t *tokenizer) container(typ TokenType, closer byte) error {
	if t.depth >= maxNesting {
		return ErrInvalid
	}
	t.depth++
	defer func() { t.depth-- }()
	idx, err := t.add(Token{Type: typ, Start: t.pos})
	if err != nil {
		return err
	}
	t.pos++
	t.skipSpace()
	if t.pos < len(t.buf) && t.buf[t.pos] == closer {
		t.pos++
		t.tokens[idx].End = t.pos
		return nil
	}
	for {
		if typ == TokenObject {
			if err := t.key(); err != nil {
				return err
			}
		}
		if err := t.value(); err != nil {
			return err
		}
		t.tokens[idx].Size++
		t.skipSpace()
		if t.pos >= len(t.buf) {
			return ErrIncomplete
		}
		switch t.buf[t.pos] {
		case ',':
			t.pos++
		case closer:
			t.pos++
			t.tokens[idx].End = t.pos
			return nil
		default:
			return ErrInvalid
		}
	}
}

// key consumes an object key and the following colon
func (t *tokenizer) key() error {
	t.skipSpace()
	if t.pos >= len(t.buf) {
		return ErrIncomplete
	}
	if t.buf[t.pos] != '"' {
		return ErrInvalid
	}
	idx, err := t.str()
	if err != nil {
		return err
	}
	t.tokens[idx].Size = 1
	t.skipSpace()
	if t.pos >= len(t.buf) {
		return ErrIncomplete
	}
	if t.buf[t.pos] != ':' {
		return ErrInvalid
	}
	t.pos++
	return nil
}

func (t *tokenizer) str() (int, error) {
	start := t.pos + 1
	for i := start; i < len(t.buf); i++ {
		c := t.buf[i]
		switch {
		case c == '"':
			idx, err := t.add(Token{Type: TokenString, Start: start, End: i})
			if err != nil {
				return 0, err
			}
			t.pos = i + 1
			return idx, nil
		case c == '\\':
			if i+1 >= len(t.buf) {
				return 0, ErrIncomplete
			}
			i++
			switch t.buf[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 >= len(t.buf) {
					return 0, ErrIncomplete
				}
				for j := i + 1; j <= i+4; j++ {
					if !isHex(t.buf[j]) {
						return 0, ErrInvalid
					}
				}
				i += 4
			default:
				return 0, ErrInvalid
			}
		case c < 0x20:
			return 0, ErrInvalid
		}
	}
	return 0, ErrIncomplete
}

func (t *tokenizer) primitive() error {
	start := t.pos
	for t.pos < len(t.buf) && !isDelimiter(t.buf[t.pos]) {
		t.pos++
	}
	if !validPrimitive(t.buf[start:t.pos]) {
		return ErrInvalid
	}
	_, err := t.add(Token{Type: TokenPrimitive, Start: start, End: t.pos})
	return err
}

func validPrimitive(b []byte) bool {
	switch string(b) {
	case "":
		return false
	case "true", "false", "null":
		return true
	}
	if b[0] != '-' && (b[0] < '0' || b[0] > '9') {
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

// IsSpace reports whether c is one of the JSON-insignificant whitespace bytes,
// including form feed and vertical tab
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	return IsSpace(c) || c == ',' || c == ']' || c == '}' || c == ':'
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

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

import (
	"bytes"
	"fmt"
)

// Document pairs a source buffer with the tokens produced over it
type Document struct {
	Buffer []byte
	Tokens []Token
}

// Len returns the number of tokens
func (d *Document) Len() int {
	return len(d.Tokens)
}

// Token returns the token at idx
func (d *Document) Token(idx int) (Token, error) {
	if idx < 0 || idx >= len(d.Tokens) {
		return Token{}, fmt.Errorf("token index %d: %w", idx, ErrNoData)
	}
	return d.Tokens[idx], nil
}

// Bytes returns the raw bytes covered by the token at idx. The returned slice
// aliases the document buffer.
func (d *Document) Bytes(idx int) []byte {
	tok := d.Tokens[idx]
	return d.Buffer[tok.Start:tok.End]
}

// String returns the raw content of the token at idx
func (d *Document) String(idx int) string {
	return string(d.Bytes(idx))
}

// Skip returns the index of the first token following the subtree rooted at idx
func (d *Document) Skip(idx int) int {
	remaining := 1
	for remaining > 0 && idx < len(d.Tokens) {
		remaining += d.Tokens[idx].Size
		remaining--
		idx++
	}
	return idx
}

// ElementCount returns the number of keys of an object or elements of an array
func (d *Document) ElementCount(idx int) (int, error) {
	tok, err := d.Token(idx)
	if err != nil {
		return 0, err
	}
	if tok.Type != TokenObject && tok.Type != TokenArray {
		return 0, &TokenError{Index: idx, Want: TokenObject, Got: tok.Type}
	}
	return tok.Size, nil
}

// ObjectNthKey returns the token index of the nth key of the object at idx
func (d *Document) ObjectNthKey(idx int, n int) (int, error) {
	if err := d.expect(idx, TokenObject); err != nil {
		return 0, err
	}
	if n < 0 || n >= d.Tokens[idx].Size {
		return 0, ErrNoData
	}
	cur := idx + 1
	for i := 0; i < n; i++ {
		cur = d.Skip(cur)
	}
	if cur >= len(d.Tokens) {
		return 0, ErrIncomplete
	}
	return cur, nil
}

// ObjectNthValue returns the token index of the nth value of the object at idx
func (d *Document) ObjectNthValue(idx int, n int) (int, error) {
	keyIdx, err := d.ObjectNthKey(idx, n)
	if err != nil {
		return 0, err
	}
	if keyIdx+1 >= len(d.Tokens) {
		return 0, ErrIncomplete
	}
	return keyIdx + 1, nil
}

// ArrayNthElement returns the token index of the nth element of the array at idx
func (d *Document) ArrayNthElement(idx int, n int) (int, error) {
	if err := d.expect(idx, TokenArray); err != nil {
		return 0, err
	}
	if n < 0 || n >= d.Tokens[idx].Size {
		return 0, ErrNoData
	}
	cur := idx + 1
	for i := 0; i < n; i++ {
		cur = d.Skip(cur)
	}
	if cur >= len(d.Tokens) {
		return 0, ErrIncomplete
	}
	return cur, nil
}

// ObjectValue returns the token index of the value stored under key in the
// object at idx. Keys are compared as raw, undecoded bytes.
func (d *Document) ObjectValue(idx int, key string) (int, error) {
	if err := d.expect(idx, TokenObject); err != nil {
		return 0, err
	}
	count := d.Tokens[idx].Size
	cur := idx + 1
	for i := 0; i < count; i++ {
		if cur+1 >= len(d.Tokens) {
			return 0, ErrIncomplete
		}
		if bytes.Equal(d.Bytes(cur), []byte(key)) {
			return cur + 1, nil
		}
		cur = d.Skip(cur)
	}
	return 0, ErrNoData
}

func (d *Document) expect(idx int, typ TokenType) error {
	tok, err := d.Token(idx)
	if err != nil {
		return err
	}
	if tok.Type != typ {
		return &TokenError{Index: idx, Want: typ, Got: tok.Type}
	}
	return nil
}

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
	"errors"
	"fmt"
)

var (
	ErrZeroTokens     = errors.New("zero tokens")
	ErrTooManyTokens  = errors.New("too many tokens")
	ErrIncomplete     = errors.New("JSON string is not complete")
	ErrInvalid        = errors.New("invalid JSON")
	ErrUnexpectedType = errors.New("unexpected token type")
	ErrNoData         = errors.New("no data")
)

type TokenType uint8

const (
	TokenUndefined TokenType = iota
	TokenObject
	TokenArray
	TokenString
	TokenPrimitive
)

func (t TokenType) String() string {
	switch t {
	case TokenObject:
		return "object"
	case TokenArray:
		return "array"
	case TokenString:
		return "string"
	case TokenPrimitive:
		return "primitive"
	default:
		return "undefined"
	}
}

// Token describes a byte range of the source buffer
type Token struct {
	Type  TokenType
	Start int
	End   int
	Size  int
}

// Len returns the number of bytes covered by the token
func (t Token) Len() int {
	return t.End - t.Start
}

// IsLeaf reports whether the token carries a scalar value
func (t Token) IsLeaf() bool {
	return t.Type == TokenString || t.Type == TokenPrimitive
}

// TokenError reports a token whose type does not fit the requested operation
type TokenError struct {
	Index int
	Want  TokenType
	Got   TokenType
}

func (e *TokenError) Error() string {
	return fmt.Sprintf(
		"token %d: expected %s, found %s",
		e.Index,
		e.Want,
		e.Got,
	)
}

func (e *TokenError) Is(target error) bool {
	return target == ErrUnexpectedType
}

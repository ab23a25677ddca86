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

package parser

import (
	"errors"

	"github.com/blinklabs-io/txdisplay/jsontoken"
)

// query walks the subtree of one root item, flattening it into leaf rows,
// and stops at row number target
type query struct {
	doc      *jsontoken.Document
	target   int
	current  int
	maxLevel int
	maxDepth int
	key      []byte
}

func newQuery(
	doc *jsontoken.Document,
	rootKey string,
	target int,
	maxLevel int,
) *query {
	return &query{
		doc:      doc,
		target:   target,
		maxLevel: maxLevel,
		maxDepth: MaxRecursionDepth,
		key:      []byte(rootKey),
	}
}

// find returns the value token of row q.target below the token at idx, or
// ErrQueryNoResults when the subtree has fewer rows. Objects consume one
// level and append "/key" to the key path; arrays only consume depth.
func (q *query) find(idx int) (int, error) {
	tok, err := q.doc.Token(idx)
	if err != nil {
		return 0, err
	}
	if q.maxLevel <= 0 || q.maxDepth <= 0 || tok.IsLeaf() {
		if q.current == q.target {
			return idx, nil
		}
		q.current++
		return 0, ErrQueryNoResults
	}
	switch tok.Type {
	case jsontoken.TokenObject:
		keyLen := len(q.key)
		for n := 0; n < tok.Size; n++ {
			keyIdx, err := q.doc.ObjectNthKey(idx, n)
			if err != nil {
				return 0, err
			}
			q.appendKey(q.doc.Bytes(keyIdx))
			q.maxLevel--
			q.maxDepth--
			ret, err := q.find(keyIdx + 1)
			q.maxLevel++
			q.maxDepth++
			if err == nil {
				return ret, nil
			}
			if !errors.Is(err, ErrQueryNoResults) {
				return 0, err
			}
			q.key = q.key[:keyLen]
		}
	case jsontoken.TokenArray:
		for n := 0; n < tok.Size; n++ {
			elemIdx, err := q.doc.ArrayNthElement(idx, n)
			if err != nil {
				return 0, err
			}
			q.maxDepth--
			ret, err := q.find(elemIdx)
			q.maxDepth++
			if err == nil {
				return ret, nil
			}
			if !errors.Is(err, ErrQueryNoResults) {
				return 0, err
			}
		}
	default:
		return 0, &jsontoken.TokenError{
			Index: idx,
			Want:  jsontoken.TokenObject,
			Got:   tok.Type,
		}
	}
	return 0, ErrQueryNoResults
}

func (q *query) appendKey(name []byte) {
	if len(q.key) > 0 {
		q.key = append(q.key, '/')
	}
	q.key = append(q.key, name...)
}

// Key returns the path of the row that was found
func (q *query) Key() string {
	return string(q.key)
}

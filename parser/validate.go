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
	"bytes"
	"errors"

	"github.com/blinklabs-io/txdisplay/coin"
	"github.com/blinklabs-io/txdisplay/jsontoken"
)

// Validate checks that doc is in the single accepted encoding: no whitespace
// outside of string and primitive values, object keys in strictly ascending
// byte order at every level, and the required root fields present
func Validate(doc *jsontoken.Document, c coin.Coin) error {
	if doc == nil || doc.Len() == 0 {
		return ErrJsonZeroTokens
	}
	if containsWhitespace(doc) {
		return ErrContainsWhitespace
	}
	if err := dictionariesSorted(doc); err != nil {
		return err
	}
	return requiredFieldsPresent(doc, c)
}

// containsWhitespace scans every byte that is not inside a string or
// primitive token, including anything before or after the root token
func containsWhitespace(doc *jsontoken.Document) bool {
	start := 0
	for _, tok := range doc.Tokens {
		if tok.Type == jsontoken.TokenUndefined {
			break
		}
		if !tok.IsLeaf() {
			continue
		}
		if hasSpace(doc.Buffer[start:tok.Start]) {
			return true
		}
		start = tok.End
	}
	return hasSpace(doc.Buffer[start:])
}

func hasSpace(data []byte) bool {
	for _, b := range data {
		if jsontoken.IsSpace(b) {
			return true
		}
	}
	return false
}

func dictionariesSorted(doc *jsontoken.Document) error {
	for idx, tok := range doc.Tokens {
		if tok.Type != jsontoken.TokenObject || tok.Size < 2 {
			continue
		}
		prevIdx, err := doc.ObjectNthKey(idx, 0)
		if err != nil {
			return err
		}
		for n := 1; n < tok.Size; n++ {
			nextIdx, err := doc.ObjectNthKey(idx, n)
			if err != nil {
				return err
			}
			if bytes.Compare(doc.Bytes(prevIdx), doc.Bytes(nextIdx)) >= 0 {
				return ErrNotSorted
			}
			prevIdx = nextIdx
		}
	}
	return nil
}

var requiredFields = []struct {
	item RootItem
	err  error
}{
	{RootItemFee, ErrMissingFee},
	{RootItemMemo, ErrMissingMemo},
	{RootItemMsgs, ErrMissingMsgs},
}

var strictRequiredFields = []struct {
	item RootItem
	err  error
}{
	{RootItemAccountNumber, ErrMissingAccountNumber},
	{RootItemChainId, ErrMissingChainId},
	{RootItemSequence, ErrMissingSequence},
}

func requiredFieldsPresent(doc *jsontoken.Document, c coin.Coin) error {
	check := func(item RootItem, missingErr error) error {
		_, err := doc.ObjectValue(0, item.String())
		if errors.Is(err, ErrNoData) {
			return missingErr
		}
		return err
	}
	for _, tmp := range requiredFields {
		if err := check(tmp.item, tmp.err); err != nil {
			return err
		}
	}
	if !c.StrictRootFields {
		return nil
	}
	for _, tmp := range strictRequiredFields {
		if err := check(tmp.item, tmp.err); err != nil {
			return err
		}
	}
	return nil
}

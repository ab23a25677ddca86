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
	"fmt"
	"math"
	"strings"

	"github.com/blinklabs-io/txdisplay/amount"
	"github.com/blinklabs-io/txdisplay/jsontoken"
)

// Sizes of the intermediate amount rendering buffers
const (
	AmountBufferSize   = 50
	DenomBufferSize    = 64
	ComposedBufferSize = 160
)

const emptyAmount = "Empty"

// DisplayPolicy selects how amounts are rendered
type DisplayPolicy uint8

const (
	// PolicyScaled shows amounts scaled by the coin decimals with the coin symbol
	PolicyScaled DisplayPolicy = iota
	// PolicyRaw shows unscaled integers with the denomination as written
	PolicyRaw
)

func (p DisplayPolicy) String() string {
	if p == PolicyRaw {
		return "raw"
	}
	return "scaled"
}

// displayPolicy resolves the amount policy for the current document
func (c *Context) displayPolicy() (DisplayPolicy, error) {
	expert, err := c.ExpertMode()
	if err != nil {
		return PolicyScaled, err
	}
	if expert {
		return PolicyRaw, nil
	}
	return PolicyScaled, nil
}

// paginate returns page pageIdx of value split into pages of capacity bytes
// along with the page count. An empty value is a single empty page.
func paginate(value string, capacity int, pageIdx int) (string, int, error) {
	pageCount, err := countPages(len(value), capacity)
	if err != nil {
		return "", 0, err
	}
	if pageIdx < 0 || pageIdx >= pageCount {
		return "", pageCount, ErrDisplayPageOutOfRange
	}
	start := pageIdx * capacity
	end := min(start+capacity, len(value))
	return value[start:end], pageCount, nil
}

func countPages(length int, capacity int) (int, error) {
	if capacity <= 0 {
		return 0, &BufferError{Buffer: "value", Need: 1, Capacity: capacity}
	}
	pageCount := (length + capacity - 1) / capacity
	if pageCount == 0 {
		pageCount = 1
	}
	if pageCount > math.MaxUint8 {
		return 0, ErrValueOutOfRange
	}
	return pageCount, nil
}

// tokenValue renders the raw content of any token
func (c *Context) tokenValue(tokIdx int, pageIdx int) (string, int, error) {
	return paginate(c.doc.String(tokIdx), c.valueCapacity, pageIdx)
}

// amountValue renders either a single amount object or an array of them.
// For arrays the page index is global across all elements.
func (c *Context) amountValue(
	tokIdx int,
	policy DisplayPolicy,
	pageIdx int,
) (string, int, error) {
	tok := c.doc.Tokens[tokIdx]
	switch tok.Type {
	case jsontoken.TokenObject:
		composed, err := c.composeAmount(tokIdx, policy)
		if err != nil {
			return "", 0, err
		}
		return paginate(composed, c.valueCapacity, pageIdx)
	case jsontoken.TokenArray:
		if tok.Size == 0 {
			return paginate(emptyAmount, c.valueCapacity, pageIdx)
		}
		elements := make([]string, tok.Size)
		// prefix[i] is the first global page of element i
		prefix := make([]int, tok.Size+1)
		for n := 0; n < tok.Size; n++ {
			elemIdx, err := c.doc.ArrayNthElement(tokIdx, n)
			if err != nil {
				return "", 0, err
			}
			composed, err := c.composeAmount(elemIdx, policy)
			if err != nil {
				return "", 0, err
			}
			pageCount, err := countPages(len(composed), c.valueCapacity)
			if err != nil {
				return "", 0, err
			}
			elements[n] = composed
			prefix[n+1] = prefix[n] + pageCount
		}
		total := prefix[tok.Size]
		if total > math.MaxUint8 {
			return "", 0, ErrValueOutOfRange
		}
		if pageIdx < 0 || pageIdx >= total {
			return "", total, ErrUnexpectedValue
		}
		for n := 0; n < tok.Size; n++ {
			if pageIdx < prefix[n+1] {
				value, _, err := paginate(
					elements[n],
					c.valueCapacity,
					pageIdx-prefix[n],
				)
				return value, total, err
			}
		}
		return "", total, ErrUnexpectedValue
	default:
		return "", 0, &jsontoken.TokenError{
			Index: tokIdx,
			Want:  jsontoken.TokenObject,
			Got:   tok.Type,
		}
	}
}

// composeAmount renders one amount object. The amount is the first field and
// the denomination the second: sorted keys put "amount" ahead of "asset" and
// "denom", which Validate has already enforced.
func (c *Context) composeAmount(objIdx int, policy DisplayPolicy) (string, error) {
	tok := c.doc.Tokens[objIdx]
	if tok.Type != jsontoken.TokenObject {
		return "", &jsontoken.TokenError{
			Index: objIdx,
			Want:  jsontoken.TokenObject,
			Got:   tok.Type,
		}
	}
	if tok.Size == 0 {
		return emptyAmount, nil
	}
	if tok.Size != 2 {
		return "", fmt.Errorf(
			"%w: amount object with %d fields",
			ErrUnexpectedField,
			tok.Size,
		)
	}
	amountIdx, err := c.doc.ObjectNthValue(objIdx, 0)
	if err != nil {
		return "", err
	}
	denomIdx, err := c.doc.ObjectNthValue(objIdx, 1)
	if err != nil {
		return "", err
	}
	if c.doc.Tokens[amountIdx].Type != jsontoken.TokenString ||
		c.doc.Tokens[denomIdx].Type != jsontoken.TokenString {
		return "", fmt.Errorf("%w: amount fields must be strings", ErrUnexpectedField)
	}
	rawAmount := c.doc.String(amountIdx)
	denom := c.doc.String(denomIdx)
	if rawAmount == "" || denom == "" {
		return "", fmt.Errorf("%w: empty amount or denomination", ErrUnexpectedValue)
	}
	if len(rawAmount) >= AmountBufferSize {
		return "", &BufferError{
			Buffer:   "amount",
			Need:     len(rawAmount) + 1,
			Capacity: AmountBufferSize,
		}
	}
	if len(denom) >= DenomBufferSize {
		return "", &BufferError{
			Buffer:   "denomination",
			Need:     len(denom) + 1,
			Capacity: DenomBufferSize,
		}
	}
	var composed string
	isBaseUnit := strings.EqualFold(denom, c.coin.BaseUnit)
	if policy == PolicyScaled && (isBaseUnit || c.coin.ScaleAllDenoms) {
		scaled, err := amount.Format(rawAmount, c.coin.Decimals)
		if err != nil {
			return "", amountError(err)
		}
		symbol := denom
		if isBaseUnit {
			symbol = c.coin.Symbol
		}
		composed = scaled + " " + symbol
		if c.coin.Uppercase {
			composed = strings.ToUpper(composed)
		}
	} else {
		// Digits only, even when shown unscaled
		if _, err := amount.Scale(rawAmount, 0); err != nil {
			return "", amountError(err)
		}
		composed = rawAmount + " " + denom
	}
	if len(composed) >= ComposedBufferSize {
		return "", &BufferError{
			Buffer:   "composed amount",
			Need:     len(composed) + 1,
			Capacity: ComposedBufferSize,
		}
	}
	return composed, nil
}

func amountError(err error) error {
	if errors.Is(err, amount.ErrInvalidNumber) {
		return fmt.Errorf("%w: %w", ErrUnexpectedValue, err)
	}
	return err
}

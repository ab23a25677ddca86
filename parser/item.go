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
	"fmt"
	"math"
)

// DisplayItem is one page of one display item
type DisplayItem struct {
	Key       string
	Value     string
	PageCount uint8
}

// GetItem renders page pageIdx of display item displayIdx. On
// ErrDisplayPageOutOfRange the returned item still carries the page count.
func (c *Context) GetItem(displayIdx int, pageIdx int) (DisplayItem, error) {
	numItems, err := c.NumItems()
	if err != nil {
		return DisplayItem{}, err
	}
	c.guard.check()
	if numItems == 0 {
		return DisplayItem{}, ErrUnexpectedNumberItems
	}
	if displayIdx < 0 || displayIdx >= int(numItems) {
		return DisplayItem{}, ErrDisplayIdxOutOfRange
	}
	if pageIdx < 0 || pageIdx > math.MaxUint8 {
		return DisplayItem{}, ErrDisplayPageOutOfRange
	}

	key, tokIdx, err := c.query(displayIdx)
	if err != nil {
		return DisplayItem{}, err
	}
	c.guard.check()

	var value string
	var pageCount int
	if c.coin.IsAmountPath(key) {
		policy, err := c.displayPolicy()
		if err != nil {
			return DisplayItem{}, err
		}
		value, pageCount, err = c.amountValue(tokIdx, policy, pageIdx)
		if err != nil {
			return DisplayItem{PageCount: uint8(pageCount)}, err
		}
	} else {
		value, pageCount, err = c.tokenValue(tokIdx, pageIdx)
		if err != nil {
			return DisplayItem{PageCount: uint8(pageCount)}, err
		}
	}
	c.guard.check()

	key = Humanize(key)
	c.guard.check()

	if pageCount > 1 {
		key = fmt.Sprintf("%s [%d/%d]", key, pageIdx+1, pageCount)
	}
	if len(key) > c.keyCapacity {
		return DisplayItem{}, &BufferError{
			Buffer:   "key",
			Need:     len(key),
			Capacity: c.keyCapacity,
		}
	}
	c.guard.check()

	return DisplayItem{
		Key:       key,
		Value:     value,
		PageCount: uint8(pageCount),
	}, nil
}

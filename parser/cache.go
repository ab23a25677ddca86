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
	"math"
)

// displayCache is the root field index of one document generation
type displayCache struct {
	// generation of the document the cache was built for, zero when invalid
	generation uint64
	present    [numRootItems]bool
	// value token of each present root item
	startToken [numRootItems]int
	subitems   [numRootItems]int
	total      int
	// nonDefaultChain is set when chain_id is absent or differs from the
	// coin default
	nonDefaultChain bool
}

func (c *Context) cacheValid() bool {
	return c.cache.generation != 0 && c.cache.generation == c.generation
}

// indexRootFields builds the root field index for the current document
// unless it already exists
func (c *Context) indexRootFields() error {
	if c.doc == nil {
		return ErrInitContextEmpty
	}
	if c.cacheValid() {
		return nil
	}
	cache := displayCache{}
	for _, item := range RootItems {
		valueIdx, err := c.doc.ObjectValue(0, item.String())
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return err
		}
		cache.present[item] = true
		cache.startToken[item] = valueIdx
		count, err := c.countSubitems(item, valueIdx)
		if err != nil {
			return err
		}
		cache.subitems[item] = count
		cache.total += count
	}
	if cache.total > math.MaxUint8 {
		return ErrValueOutOfRange
	}
	nonDefault, err := c.isNonDefaultChain(&cache)
	if err != nil {
		return err
	}
	cache.nonDefaultChain = nonDefault
	cache.generation = c.generation
	c.cache = cache
	c.logger.Debug(
		"indexed root fields",
		"generation", c.generation,
		"items", cache.total,
		"non_default_chain", nonDefault,
	)
	return nil
}

func (c *Context) countSubitems(item RootItem, valueIdx int) (int, error) {
	count := 0
	for {
		q := newQuery(c.doc, item.String(), count, item.MaxLevel())
		tokIdx, err := q.find(valueIdx)
		if errors.Is(err, ErrQueryNoResults) {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		// An empty memo is displayed like a missing one
		if item == RootItemMemo && c.doc.Tokens[tokIdx].Len() == 0 {
			return count, nil
		}
		count++
	}
}

func (c *Context) isNonDefaultChain(cache *displayCache) (bool, error) {
	if !cache.present[RootItemChainId] {
		return true, nil
	}
	q := newQuery(
		c.doc,
		RootItemChainId.String(),
		0,
		RootItemChainId.MaxLevel(),
	)
	tokIdx, err := q.find(cache.startToken[RootItemChainId])
	if err != nil {
		return false, err
	}
	return !bytes.Equal(
		c.doc.Bytes(tokIdx),
		[]byte(c.coin.DefaultChainId),
	), nil
}

// visibleSubitems returns the number of rows of item shown under the
// current mode
func (c *Context) visibleSubitems(item RootItem) (int, error) {
	if err := c.indexRootFields(); err != nil {
		return 0, err
	}
	if c.cache.total == 0 {
		return 0, nil
	}
	if item.expertOnly() && !c.expertMode && !c.cache.nonDefaultChain {
		return 0, nil
	}
	return c.cache.subitems[item], nil
}

// NumItems returns the number of display items of the current document
func (c *Context) NumItems() (uint8, error) {
	total := 0
	for _, item := range RootItems {
		count, err := c.visibleSubitems(item)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return uint8(total), nil
}

// locate maps a display index to its root item and the row index within it
func (c *Context) locate(displayIdx int) (RootItem, int, error) {
	remaining := displayIdx
	for _, item := range RootItems {
		count, err := c.visibleSubitems(item)
		if err != nil {
			return 0, 0, err
		}
		if remaining < count {
			return item, remaining, nil
		}
		remaining -= count
	}
	return 0, 0, ErrDisplayIdxOutOfRange
}

// query resolves a display index to the row key and its value token
func (c *Context) query(displayIdx int) (string, int, error) {
	numItems, err := c.NumItems()
	if err != nil {
		return "", 0, err
	}
	if displayIdx < 0 || displayIdx >= int(numItems) {
		return "", 0, ErrDisplayIdxOutOfRange
	}
	item, subitemIdx, err := c.locate(displayIdx)
	if err != nil {
		return "", 0, err
	}
	if !c.cache.present[item] {
		return "", 0, ErrNoData
	}
	q := newQuery(c.doc, item.String(), subitemIdx, item.MaxLevel())
	tokIdx, err := q.find(c.cache.startToken[item])
	if err != nil {
		return "", 0, err
	}
	return q.Key(), tokIdx, nil
}

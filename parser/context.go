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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/txdisplay/cbor"
	"github.com/blinklabs-io/txdisplay/coin"
	"github.com/blinklabs-io/txdisplay/jsontoken"
)

const (
	DefaultKeyCapacity        = 64
	DefaultValueCapacity      = 40
	DefaultMaxTransactionSize = 16 * 1024

	// MaxRecursionDepth bounds the query walk independently of root item levels
	MaxRecursionDepth = 16
)

// Variant identifies the encoding a transaction was received in
type Variant uint8

const (
	VariantNone Variant = iota
	VariantJson
	VariantCbor
)

func (v Variant) String() string {
	switch v {
	case VariantJson:
		return "json"
	case VariantCbor:
		return "cbor"
	default:
		return "none"
	}
}

// Context holds the current document, its root field index and the display
// configuration. A Context is not safe for concurrent use.
type Context struct {
	logger             *slog.Logger
	coin               coin.Coin
	expertMode         bool
	keyCapacity        int
	valueCapacity      int
	maxTokens          int
	maxTransactionSize int

	raw     []byte
	variant Variant
	doc     *jsontoken.Document
	// generation is bumped on every Parse and identifies the current document
	generation uint64
	// validated holds the generation that last passed ValidateAndEnumerate
	validated uint64
	cache     displayCache
	guard     *guard
}

// NewContext returns a Context for transactions of the given coin
func NewContext(c coin.Coin, options ...ContextOptionFunc) *Context {
	ctx := &Context{
		coin:               c,
		keyCapacity:        DefaultKeyCapacity,
		valueCapacity:      DefaultValueCapacity,
		maxTokens:          jsontoken.DefaultMaxTokens,
		maxTransactionSize: DefaultMaxTransactionSize,
		guard:              newGuard(),
	}
	for _, option := range options {
		option(ctx)
	}
	if ctx.logger == nil {
		ctx.logger = slog.Default()
	}
	return ctx
}

// Parse replaces the current document with the transaction in data. A buffer
// starting with a CBOR map header is handled as the CBOR variant and
// transcoded to canonical JSON; anything else is tokenized as JSON.
func (c *Context) Parse(data []byte) error {
	c.generation++
	c.raw = nil
	c.doc = nil
	c.variant = VariantNone
	if len(data) == 0 {
		return ErrInitContextEmpty
	}
	if len(data) > c.maxTransactionSize {
		return fmt.Errorf(
			"%w: %d bytes, limit %d",
			ErrTransactionTooBig,
			len(data),
			c.maxTransactionSize,
		)
	}
	raw := bytes.Clone(data)
	jsonData := raw
	variant := VariantJson
	if cbor.IsMap(raw) {
		tmp, err := cbor.ToJSON(raw)
		if err != nil {
			if errors.Is(err, cbor.ErrNotCanonical) ||
				errors.Is(err, cbor.ErrDuplicateKey) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrCborUnexpected, err)
		}
		jsonData = tmp
		variant = VariantCbor
	}
	doc, err := jsontoken.Parse(jsonData, c.maxTokens)
	if err != nil {
		return err
	}
	if doc.Tokens[0].Type != jsontoken.TokenObject {
		return &jsontoken.TokenError{
			Index: 0,
			Want:  jsontoken.TokenObject,
			Got:   doc.Tokens[0].Type,
		}
	}
	c.raw = raw
	c.doc = doc
	c.variant = variant
	c.logger.Debug(
		"parsed transaction",
		"generation", c.generation,
		"variant", variant.String(),
		"tokens", doc.Len(),
	)
	return nil
}

// Document returns the tokenized form of the current transaction
func (c *Context) Document() *jsontoken.Document {
	return c.doc
}

// Bytes returns the transaction exactly as it was received
func (c *Context) Bytes() []byte {
	return c.raw
}

// Variant returns the encoding of the current transaction
func (c *Context) Variant() Variant {
	return c.variant
}

// Generation identifies the current document
func (c *Context) Generation() uint64 {
	return c.generation
}

// Coin returns the coin profile
func (c *Context) Coin() coin.Coin {
	return c.coin
}

// SetExpertMode changes the device expert mode toggle. Visible item counts
// follow immediately; the root field index stays valid.
func (c *Context) SetExpertMode(expertMode bool) {
	c.expertMode = expertMode
}

// ExpertMode reports whether the expert display policy is in effect, either
// because the toggle is on or because the chain ID is not the coin default
func (c *Context) ExpertMode() (bool, error) {
	if err := c.indexRootFields(); err != nil {
		return false, err
	}
	return c.expertMode || c.cache.nonDefaultChain, nil
}

// Validate checks that the current document is in canonical form
func (c *Context) Validate() error {
	if c.doc == nil {
		return ErrInitContextEmpty
	}
	if err := Validate(c.doc, c.coin); err != nil {
		c.logger.Debug(
			"transaction failed validation",
			"generation", c.generation,
			"error", err,
		)
		return err
	}
	return nil
}

// ValidateAndEnumerate validates the current document and renders the first
// page of every item, so that any item that cannot be displayed rejects the
// transaction before navigation starts
func (c *Context) ValidateAndEnumerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	numItems, err := c.NumItems()
	if err != nil {
		return err
	}
	for idx := 0; idx < int(numItems); idx++ {
		if _, err := c.GetItem(idx, 0); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	c.validated = c.generation
	return nil
}

// Validated reports whether the current document passed ValidateAndEnumerate
func (c *Context) Validated() bool {
	return c.doc != nil && c.validated == c.generation
}

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
	"log/slog"
)

// ContextOptionFunc is a type that represents functions that modify the Context config
type ContextOptionFunc func(*Context)

// WithLogger specifies the logger. slog.Default() is used when none is provided
func WithLogger(logger *slog.Logger) ContextOptionFunc {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithExpertMode sets the initial state of the device expert mode toggle
func WithExpertMode(expertMode bool) ContextOptionFunc {
	return func(c *Context) {
		c.expertMode = expertMode
	}
}

// WithKeyCapacity specifies the size of the display key buffer
func WithKeyCapacity(capacity int) ContextOptionFunc {
	return func(c *Context) {
		c.keyCapacity = capacity
	}
}

// WithValueCapacity specifies the size of the display value buffer, which is
// also the page size
func WithValueCapacity(capacity int) ContextOptionFunc {
	return func(c *Context) {
		c.valueCapacity = capacity
	}
}

// WithMaxTokens bounds the number of JSON tokens of a document
func WithMaxTokens(maxTokens int) ContextOptionFunc {
	return func(c *Context) {
		c.maxTokens = maxTokens
	}
}

// WithMaxTransactionSize bounds the size of a serialized transaction
func WithMaxTransactionSize(size int) ContextOptionFunc {
	return func(c *Context) {
		c.maxTransactionSize = size
	}
}

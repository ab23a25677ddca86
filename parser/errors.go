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

	"github.com/blinklabs-io/txdisplay/cbor"
	"github.com/blinklabs-io/txdisplay/jsontoken"
)

// Structural errors
var (
	ErrNoData                = jsontoken.ErrNoData
	ErrInitContextEmpty      = errors.New("initialized empty context")
	ErrUnexpectedType        = jsontoken.ErrUnexpectedType
	ErrUnexpectedField       = errors.New("unexpected field")
	ErrDuplicatedField       = cbor.ErrDuplicateKey
	ErrUnexpectedValue       = errors.New("unexpected value")
	ErrValueOutOfRange       = errors.New("value out of range")
	ErrUnexpectedNumberItems = errors.New("unexpected number of items")
)

// Tokenizer errors
var (
	ErrJsonZeroTokens    = jsontoken.ErrZeroTokens
	ErrJsonTooManyTokens = jsontoken.ErrTooManyTokens
	ErrJsonIncomplete    = jsontoken.ErrIncomplete
	ErrJsonInvalid       = jsontoken.ErrInvalid
)

// Canonical form errors
var (
	ErrContainsWhitespace   = errors.New("JSON contains whitespace in the corpus")
	ErrNotSorted            = errors.New("JSON dictionaries are not sorted")
	ErrMissingFee           = errors.New("JSON missing fee")
	ErrMissingMemo          = errors.New("JSON missing memo")
	ErrMissingMsgs          = errors.New("JSON missing msgs")
	ErrMissingAccountNumber = errors.New("JSON missing account number")
	ErrMissingChainId       = errors.New("JSON missing chain_id")
	ErrMissingSequence      = errors.New("JSON missing sequence")
	ErrCborNotCanonical     = cbor.ErrNotCanonical
	ErrCborUnexpected       = errors.New("unexpected CBOR error")
)

// Navigation errors. ErrQueryNoResults ends subitem iteration and never
// leaves this package.
var (
	ErrDisplayIdxOutOfRange  = errors.New("display index out of range")
	ErrDisplayPageOutOfRange = errors.New("display page out of range")
	ErrQueryNoResults        = errors.New("item query returned no results")
)

// Capacity errors
var (
	ErrBufferTooSmall    = errors.New("buffer too small")
	ErrTransactionTooBig = errors.New("transaction is too big")
)

// BufferError reports a value that does not fit a fixed-size buffer
type BufferError struct {
	Buffer   string
	Need     int
	Capacity int
}

func (e *BufferError) Error() string {
	return fmt.Sprintf(
		"%s buffer too small: need %d bytes, capacity %d",
		e.Buffer,
		e.Need,
		e.Capacity,
	)
}

func (e *BufferError) Is(target error) bool {
	return target == ErrBufferTooSmall
}

// FatalError is the panic value raised when the guard sentinel has been
// overwritten. It is never returned as an error.
type FatalError struct {
	Reason string
}

func (e *FatalError) Error() string {
	return "fatal: " + e.Reason
}

var errorDescriptions = []struct {
	err         error
	description string
}{
	{ErrNoData, "No more data"},
	{ErrInitContextEmpty, "Initialized empty context"},
	{ErrUnexpectedType, "Unexpected type"},
	{ErrUnexpectedField, "Unexpected field"},
	{ErrDuplicatedField, "Duplicated field"},
	{ErrUnexpectedValue, "Unexpected value"},
	{ErrValueOutOfRange, "Value out of range"},
	{ErrUnexpectedNumberItems, "Unexpected number of items"},
	{ErrJsonZeroTokens, "JSON. Zero tokens"},
	{ErrJsonTooManyTokens, "JSON. Too many tokens"},
	{ErrJsonIncomplete, "JSON string is not complete"},
	{ErrJsonInvalid, "JSON. Invalid"},
	{ErrContainsWhitespace, "JSON Contains whitespace in the corpus"},
	{ErrNotSorted, "JSON Dictionaries are not sorted"},
	{ErrMissingFee, "JSON Missing fee"},
	{ErrMissingMemo, "JSON Missing memo"},
	{ErrMissingMsgs, "JSON Missing msgs"},
	{ErrMissingAccountNumber, "JSON Missing account number"},
	{ErrMissingChainId, "JSON Missing chain_id"},
	{ErrMissingSequence, "JSON Missing sequence"},
	{ErrCborNotCanonical, "CBOR was not in canonical order"},
	{ErrCborUnexpected, "Unexpected CBOR error"},
	{ErrDisplayIdxOutOfRange, "Display index out of range"},
	{ErrDisplayPageOutOfRange, "Display page out of range"},
	{ErrQueryNoResults, "Item query returned no results"},
	{ErrBufferTooSmall, "Buffer too small"},
	{ErrTransactionTooBig, "Transaction is too big"},
}

// ErrorDescription returns the short, screen-sized description of err
func ErrorDescription(err error) string {
	if err == nil {
		return "No error"
	}
	for _, tmp := range errorDescriptions {
		if errors.Is(err, tmp.err) {
			return tmp.description
		}
	}
	return "Unrecognized error code"
}

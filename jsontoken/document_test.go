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

package jsontoken_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/txdisplay/jsontoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const navigationJson = `{"fee":{"amount":[{"amount":"10","denom":"rune"}],"gas":"2000000"},"memo":"","msgs":[1,2,3]}`

func mustParse(t *testing.T, s string) *jsontoken.Document {
	t.Helper()
	doc, err := jsontoken.Parse([]byte(s), 0)
	require.NoError(t, err)
	return doc
}

func TestObjectValue(t *testing.T) {
	doc := mustParse(t, navigationJson)
	idx, err := doc.ObjectValue(0, "memo")
	require.NoError(t, err)
	assert.Equal(t, jsontoken.TokenString, doc.Tokens[idx].Type)
	assert.Equal(t, "", doc.String(idx))

	idx, err = doc.ObjectValue(0, "msgs")
	require.NoError(t, err)
	assert.Equal(t, jsontoken.TokenArray, doc.Tokens[idx].Type)

	feeIdx, err := doc.ObjectValue(0, "fee")
	require.NoError(t, err)
	idx, err = doc.ObjectValue(feeIdx, "gas")
	require.NoError(t, err)
	assert.Equal(t, "2000000", doc.String(idx))

	_, err = doc.ObjectValue(0, "sequence")
	assert.ErrorIs(t, err, jsontoken.ErrNoData)
	// nested keys are not visible from the root
	_, err = doc.ObjectValue(0, "gas")
	assert.ErrorIs(t, err, jsontoken.ErrNoData)
}

func TestObjectNthKeyAndValue(t *testing.T) {
	doc := mustParse(t, navigationJson)
	count, err := doc.ElementCount(0)
	require.NoError(t, err)
	require.Equal(t, 3, count)
	keys := []string{}
	for i := 0; i < count; i++ {
		keyIdx, err := doc.ObjectNthKey(0, i)
		require.NoError(t, err)
		keys = append(keys, doc.String(keyIdx))
		valueIdx, err := doc.ObjectNthValue(0, i)
		require.NoError(t, err)
		assert.Equal(t, keyIdx+1, valueIdx)
	}
	assert.Equal(t, []string{"fee", "memo", "msgs"}, keys)
	_, err = doc.ObjectNthKey(0, 3)
	assert.ErrorIs(t, err, jsontoken.ErrNoData)
}

func TestArrayNthElement(t *testing.T) {
	doc := mustParse(t, navigationJson)
	msgsIdx, err := doc.ObjectValue(0, "msgs")
	require.NoError(t, err)
	for i, expected := range []string{"1", "2", "3"} {
		idx, err := doc.ArrayNthElement(msgsIdx, i)
		require.NoError(t, err)
		assert.Equal(t, expected, doc.String(idx))
	}
	_, err = doc.ArrayNthElement(msgsIdx, 3)
	assert.ErrorIs(t, err, jsontoken.ErrNoData)
	_, err = doc.ArrayNthElement(0, 0)
	var tokErr *jsontoken.TokenError
	require.True(t, errors.As(err, &tokErr))
	assert.Equal(t, jsontoken.TokenArray, tokErr.Want)
	assert.Equal(t, jsontoken.TokenObject, tokErr.Got)
	assert.ErrorIs(t, err, jsontoken.ErrUnexpectedType)
}

func TestSkip(t *testing.T) {
	doc := mustParse(t, navigationJson)
	assert.Equal(t, doc.Len(), doc.Skip(0))
	// the "fee" key skips over its whole object value
	memoKey := doc.Skip(1)
	assert.Equal(t, "memo", doc.String(memoKey))
}

func TestElementCountScalar(t *testing.T) {
	doc := mustParse(t, navigationJson)
	_, err := doc.ElementCount(1)
	assert.ErrorIs(t, err, jsontoken.ErrUnexpectedType)
	_, err = doc.ElementCount(1000)
	assert.ErrorIs(t, err, jsontoken.ErrNoData)
}

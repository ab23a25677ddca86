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

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/blinklabs-io/txdisplay/coin"
	"github.com/blinklabs-io/txdisplay/internal/test"
	"github.com/blinklabs-io/txdisplay/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func without(tx string, field string) string {
	return strings.Replace(tx, field, "", 1)
}

func TestValidate(t *testing.T) {
	testDefs := []struct {
		name        string
		tx          string
		coin        coin.Coin
		expectedErr error
	}{
		{
			name: "CorrectFormat",
			tx:   test.TxSend,
			coin: coin.CoinThorchain,
		},
		{
			name: "CorrectDeposit",
			tx:   test.TxDeposit,
			coin: coin.CoinThorchain,
		},
		{
			name: "AllowSpacesInString",
			tx:   strings.Replace(test.TxSend, "TestMemo", "Test Memo with spaces", 1),
			coin: coin.CoinThorchain,
		},
		{
			name:        "SpacesInTheMiddle",
			tx:          strings.Replace(test.TxSend, `"588",`, `"588", `, 1),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrContainsWhitespace,
		},
		{
			name:        "SpacesAtTheFront",
			tx:          "  " + test.TxSend,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrContainsWhitespace,
		},
		{
			name:        "SpacesAtTheEnd",
			tx:          test.TxSend + "\n",
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrContainsWhitespace,
		},
		{
			name: "SpacesLots",
			tx: strings.NewReplacer(
				"{", "{ ",
				":", " : ",
				",", ",\r\n",
				"]", " ]",
			).Replace(test.TxSend),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrContainsWhitespace,
		},
		{
			name:        "NotSortedFirst",
			tx:          `{"chain_id":"thorchain","account_number":"588","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","msgs":[],"sequence":"5"}`,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrNotSorted,
		},
		{
			name:        "NotSortedMiddle",
			tx:          `{"account_number":"588","chain_id":"thorchain","fee":{"gas":"2000000","amount":[]},"memo":"TestMemo","msgs":[],"sequence":"5"}`,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrNotSorted,
		},
		{
			name:        "NotSortedLast",
			tx:          `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","sequence":"5","msgs":[]}`,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrNotSorted,
		},
		{
			name:        "NotSortedNested",
			tx:          `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","msgs":[{"value":{},"type":"x"}],"sequence":"5"}`,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrNotSorted,
		},
		{
			name:        "DuplicateKey",
			tx:          `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","memo":"TestMemo","msgs":[],"sequence":"5"}`,
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrNotSorted,
		},
		{
			name:        "MissingAccountNumber",
			tx:          without(test.TxSend, `"account_number":"588",`),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrMissingAccountNumber,
		},
		{
			name:        "MissingChainId",
			tx:          without(test.TxSend, `"chain_id":"thorchain",`),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrMissingChainId,
		},
		{
			name:        "MissingFee",
			tx:          without(test.TxSend, `"fee":{"amount":[],"gas":"2000000"},`),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrMissingFee,
		},
		{
			name:        "MissingMemo",
			tx:          without(test.TxSend, `"memo":"TestMemo",`),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrMissingMemo,
		},
		{
			name:        "MissingSequence",
			tx:          without(test.TxSend, `,"sequence":"5"`),
			coin:        coin.CoinThorchain,
			expectedErr: parser.ErrMissingSequence,
		},
		{
			name:        "MissingMemoBeforeMsgs",
			tx:          `{"fee":{}}`,
			coin:        coin.CoinCosmosHub,
			expectedErr: parser.ErrMissingMemo,
		},
		{
			name:        "MissingMsgs",
			tx:          `{"fee":{},"memo":""}`,
			coin:        coin.CoinCosmosHub,
			expectedErr: parser.ErrMissingMsgs,
		},
		{
			name: "NonStrictMissingSequence",
			tx:   without(test.TxSend, `,"sequence":"5"`),
			coin: coin.CoinCosmosHub,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			ctx := parser.NewContext(testDef.coin)
			require.NoError(t, ctx.Parse([]byte(testDef.tx)))
			err := ctx.Validate()
			if testDef.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			if !errors.Is(err, testDef.expectedErr) {
				t.Fatalf(
					"did not get expected error: got %v, wanted %v",
					err,
					testDef.expectedErr,
				)
			}
		})
	}
}

func TestValidateWithoutDocument(t *testing.T) {
	ctx := parser.NewContext(coin.CoinThorchain)
	assert.ErrorIs(t, ctx.Validate(), parser.ErrInitContextEmpty)
	assert.ErrorIs(t, parser.Validate(nil, coin.CoinThorchain), parser.ErrJsonZeroTokens)
}

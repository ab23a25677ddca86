// Copyright 2023 Blink Labs Software
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

package coin_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/txdisplay/coin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileConfigOverride(t *testing.T) {
	p, err := coin.NewProfileConfigFromReader(strings.NewReader(`{
  "base": "thorchain",
  "name": "thorchain-stagenet",
  "defaultChainId": "thorchain-stagenet-v2",
  "bech32Prefix": "sthor",
  "uppercase": false
}`))
	require.NoError(t, err)
	c, err := p.Coin()
	require.NoError(t, err)
	assert.Equal(t, "thorchain-stagenet", c.Name)
	assert.Equal(t, "thorchain-stagenet-v2", c.DefaultChainId)
	assert.Equal(t, "sthor", c.Bech32Prefix)
	assert.False(t, c.Uppercase)
	// untouched fields come from the base profile
	assert.Equal(t, "RUNE", c.Symbol)
	assert.Equal(t, 8, c.Decimals)
	assert.True(t, c.StrictRootFields)
	assert.Equal(t, coin.CoinThorchain.AmountPaths, c.AmountPaths)
	// the built-in profile is not modified
	assert.True(t, coin.CoinThorchain.Uppercase)
}

func TestProfileConfigDecimals(t *testing.T) {
	p, err := coin.NewProfileConfigFromReader(
		strings.NewReader(`{"base":"cosmoshub","decimals":0,"amountPaths":["msgs/value/amount"]}`),
	)
	require.NoError(t, err)
	c, err := p.Coin()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Decimals)
	assert.Equal(t, []string{"msgs/value/amount"}, c.AmountPaths)

	p, err = coin.NewProfileConfigFromReader(
		strings.NewReader(`{"base":"cosmoshub","decimals":25}`),
	)
	require.NoError(t, err)
	_, err = p.Coin()
	assert.Error(t, err)
}

func TestProfileConfigUnknownBase(t *testing.T) {
	p, err := coin.NewProfileConfigFromReader(strings.NewReader(`{"base":"nope"}`))
	require.NoError(t, err)
	_, err = p.Coin()
	assert.Error(t, err)
}

func TestProfileConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(
		t,
		os.WriteFile(path, []byte(`{"base":"mayachain","symbol":"MAYA"}`), 0o600),
	)
	p, err := coin.NewProfileConfigFromFile(path)
	require.NoError(t, err)
	c, err := p.Coin()
	require.NoError(t, err)
	assert.Equal(t, "MAYA", c.Symbol)
	assert.Equal(t, "cacao", c.BaseUnit)

	_, err = coin.NewProfileConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

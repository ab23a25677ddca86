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

// Package coin holds the static per-chain constants consumed by the
// transaction display core
package coin

import (
	"slices"
)

// Coin definitions
var (
	CoinThorchain = Coin{
		Name:           "thorchain",
		DefaultChainId: "thorchain",
		Symbol:         "RUNE",
		BaseUnit:       "rune",
		Decimals:       8,
		Bech32Prefix:   "thor",
		AmountPaths: []string{
			"fee/amount",
			"msgs/value/amount",
			"msgs/value/coins",
		},
		Uppercase:        true,
		StrictRootFields: true,
		ScaleAllDenoms:   true,
	}
	CoinMayachain = Coin{
		Name:           "mayachain",
		DefaultChainId: "mayachain-mainnet-v1",
		Symbol:         "CACAO",
		BaseUnit:       "cacao",
		Decimals:       10,
		Bech32Prefix:   "maya",
		AmountPaths: []string{
			"fee/amount",
			"msgs/value/amount",
			"msgs/value/coins",
		},
		Uppercase:        true,
		StrictRootFields: true,
	}
	CoinCosmosHub = Coin{
		Name:           "cosmoshub",
		DefaultChainId: "cosmoshub-4",
		Symbol:         "ATOM",
		BaseUnit:       "uatom",
		Decimals:       6,
		Bech32Prefix:   "cosmos",
		AmountPaths: []string{
			"fee/amount",
			"msgs/value/amount",
		},
	}

	CoinInvalid = Coin{
		Name: "invalid",
	} // CoinInvalid is used as a return value for lookup functions when a coin isn't found
)

// List of valid coins for use in lookup functions
var coins = []Coin{
	CoinThorchain,
	CoinMayachain,
	CoinCosmosHub,
}

// CoinByName returns a predefined coin by name
func CoinByName(name string) Coin {
	for _, c := range coins {
		if c.Name == name {
			return c
		}
	}
	return CoinInvalid
}

// CoinByChainId returns the predefined coin whose default chain ID matches
func CoinByChainId(chainId string) Coin {
	for _, c := range coins {
		if c.DefaultChainId == chainId {
			return c
		}
	}
	return CoinInvalid
}

// Coin represents the display constants of a Cosmos SDK based chain
type Coin struct {
	Name           string
	DefaultChainId string
	// Symbol is appended to scaled amounts
	Symbol string
	// BaseUnit is the on-chain denomination of unscaled amounts
	BaseUnit string
	// Decimals is the number of fractional digits, i.e. log10 of the scaling factor
	Decimals     int
	Bech32Prefix string
	// AmountPaths lists the display keys whose values are rendered as amounts
	AmountPaths []string
	// Uppercase applies to scaled amounts only
	Uppercase bool
	// StrictRootFields makes account_number, chain_id and sequence mandatory
	StrictRootFields bool
	// ScaleAllDenoms applies Decimals to denominations other than BaseUnit
	ScaleAllDenoms bool
}

// IsAmountPath reports whether values displayed under key hold amounts
func (c Coin) IsAmountPath(key string) bool {
	return slices.Contains(c.AmountPaths, key)
}

// ScalingFactor returns 10^Decimals
func (c Coin) ScalingFactor() uint64 {
	ret := uint64(1)
	for i := 0; i < c.Decimals; i++ {
		ret *= 10
	}
	return ret
}

func (c Coin) Valid() bool {
	return c.Name != CoinInvalid.Name && c.DefaultChainId != ""
}

func (c Coin) String() string {
	return c.Name
}

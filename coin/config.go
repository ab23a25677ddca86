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

package coin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jinzhu/copier"
)

// MaxDecimals bounds the scaling factor so it fits a uint64
const MaxDecimals = 19

// ProfileConfig describes a coin profile file. Unset fields keep the value of
// the built-in coin named by Base.
type ProfileConfig struct {
	Base             string   `json:"base"`
	Name             string   `json:"name"`
	DefaultChainId   string   `json:"defaultChainId"`
	Symbol           string   `json:"symbol"`
	BaseUnit         string   `json:"baseUnit"`
	Decimals         *int     `json:"decimals"`
	Bech32Prefix     string   `json:"bech32Prefix"`
	AmountPaths      []string `json:"amountPaths"`
	Uppercase        *bool    `json:"uppercase"`
	StrictRootFields *bool    `json:"strictRootFields"`
	ScaleAllDenoms   *bool    `json:"scaleAllDenoms"`
}

func NewProfileConfigFromFile(path string) (*ProfileConfig, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()
	return NewProfileConfigFromReader(dataFile)
}

func NewProfileConfigFromReader(r io.Reader) (*ProfileConfig, error) {
	p := &ProfileConfig{}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Coin merges the profile onto its base coin
func (p *ProfileConfig) Coin() (Coin, error) {
	base := CoinByName(p.Base)
	if base.Name == CoinInvalid.Name {
		return CoinInvalid, fmt.Errorf("unknown base coin: %q", p.Base)
	}
	ret := base
	ret.AmountPaths = slices.Clone(base.AmountPaths)
	if err := copier.CopyWithOption(&ret, p, copier.Option{IgnoreEmpty: true}); err != nil {
		return CoinInvalid, err
	}
	if ret.Decimals < 0 || ret.Decimals > MaxDecimals {
		return CoinInvalid, fmt.Errorf(
			"decimals out of range: %d",
			ret.Decimals,
		)
	}
	if ret.DefaultChainId == "" {
		return CoinInvalid, errors.New("default chain ID must not be empty")
	}
	return ret, nil
}

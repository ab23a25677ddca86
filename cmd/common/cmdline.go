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

package common

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/txdisplay/coin"
	"github.com/blinklabs-io/txdisplay/parser"
)

type GlobalFlags struct {
	Flagset       *flag.FlagSet
	Coin          string
	Profile       string
	Expert        bool
	Debug         bool
	KeyCapacity   int
	ValueCapacity int
	Hex           bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Coin,
		"coin",
		coin.CoinThorchain.Name,
		"specifies the coin profile used for display",
	)
	f.Flagset.StringVar(
		&f.Profile,
		"profile",
		"",
		"path to a JSON coin profile. this overrides the -coin option",
	)
	f.Flagset.BoolVar(&f.Expert, "expert", false, "enable expert mode")
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	f.Flagset.IntVar(
		&f.KeyCapacity,
		"key-capacity",
		parser.DefaultKeyCapacity,
		"size of the display key buffer",
	)
	f.Flagset.IntVar(
		&f.ValueCapacity,
		"value-capacity",
		parser.DefaultValueCapacity,
		"size of the display value buffer, which is also the page size",
	)
	f.Flagset.BoolVar(
		&f.Hex,
		"hex",
		false,
		"transaction input is hex encoded (use for CBOR transactions)",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Logger returns a text logger on stderr honoring -debug
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// LoadCoin resolves the coin profile from -profile or -coin
func (f *GlobalFlags) LoadCoin() (coin.Coin, error) {
	if f.Profile != "" {
		profile, err := coin.NewProfileConfigFromFile(f.Profile)
		if err != nil {
			return coin.CoinInvalid, err
		}
		return profile.Coin()
	}
	ret := coin.CoinByName(f.Coin)
	if !ret.Valid() {
		return coin.CoinInvalid, fmt.Errorf("unknown coin: %s", f.Coin)
	}
	return ret, nil
}

// NewContext builds a parser context from the global flags
func (f *GlobalFlags) NewContext(logger *slog.Logger) (*parser.Context, error) {
	c, err := f.LoadCoin()
	if err != nil {
		return nil, err
	}
	return parser.NewContext(
		c,
		parser.WithLogger(logger),
		parser.WithExpertMode(f.Expert),
		parser.WithKeyCapacity(f.KeyCapacity),
		parser.WithValueCapacity(f.ValueCapacity),
	), nil
}

// ReadTransaction reads a transaction from path, or from stdin when path is
// empty or "-"
func (f *GlobalFlags) ReadTransaction(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if !f.Hex {
		return data, nil
	}
	decoded, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.New("transaction input is not valid hex")
	}
	return decoded, nil
}

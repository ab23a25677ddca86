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

package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdisplay/cmd/common"
	"github.com/blinklabs-io/txdisplay/signer"
	"github.com/btcsuite/btcd/btcec/v2"
)

type signFlags struct {
	flagset *flag.FlagSet
	keyFile string
}

func newSignFlags() *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet("sign", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.keyFile,
		"key-file",
		"",
		"file containing a hex encoded secp256k1 private key",
	)
	return f
}

func runSign(f *common.GlobalFlags, logger *slog.Logger) {
	signFlags := newSignFlags()
	err := signFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if signFlags.keyFile == "" {
		fmt.Printf("ERROR: you must specify -key-file\n")
		os.Exit(1)
	}
	keyHex, err := os.ReadFile(signFlags.keyFile)
	if err != nil {
		fmt.Printf("ERROR: failed to read key: %s\n", err)
		os.Exit(1)
	}
	keyBytes, err := hex.DecodeString(string(bytes.TrimSpace(keyHex)))
	if err != nil || len(keyBytes) != btcec.PrivKeyBytesLen {
		fmt.Printf("ERROR: key must be %d hex encoded bytes\n", btcec.PrivKeyBytesLen)
		os.Exit(1)
	}
	key, pub := btcec.PrivKeyFromBytes(keyBytes)

	ctx := loadContext(f, logger, signFlags.flagset.Args())
	sig, err := signer.Sign(ctx, key)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	addr, err := signer.Address(pub, ctx.Coin().Bech32Prefix)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	logger.Debug("signed transaction", "address", addr, "generation", ctx.Generation())
	fmt.Printf("address:   %s\n", addr)
	fmt.Printf("signature: %x\n", sig)
}

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
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/txdisplay/cmd/common"
	"github.com/blinklabs-io/txdisplay/signer"
	"github.com/btcsuite/btcd/btcec/v2"
)

type addressFlags struct {
	flagset *flag.FlagSet
	pubKey  string
	hrp     string
	check   string
}

func newAddressFlags() *addressFlags {
	f := &addressFlags{
		flagset: flag.NewFlagSet("address", flag.ExitOnError),
	}
	f.flagset.StringVar(&f.pubKey, "pubkey", "", "hex encoded secp256k1 public key")
	f.flagset.StringVar(
		&f.hrp,
		"hrp",
		"",
		"bech32 prefix (defaults to the coin profile prefix)",
	)
	f.flagset.StringVar(&f.check, "check", "", "validate this address instead")
	return f
}

func runAddress(f *common.GlobalFlags) {
	addressFlags := newAddressFlags()
	err := addressFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	hrp := addressFlags.hrp
	if hrp == "" {
		c, err := f.LoadCoin()
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		hrp = c.Bech32Prefix
	}
	if addressFlags.check != "" {
		hash, err := signer.ValidateAddress(addressFlags.check, hrp)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: %x\n", hash)
		return
	}
	pubKeyBytes, err := hex.DecodeString(addressFlags.pubKey)
	if err != nil {
		fmt.Printf("ERROR: failed to decode public key: %s\n", err)
		os.Exit(1)
	}
	pub, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		fmt.Printf("ERROR: failed to parse public key: %s\n", err)
		os.Exit(1)
	}
	addr, err := signer.Address(pub, hrp)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(addr)
}

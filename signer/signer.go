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

// Package signer signs transactions that passed display validation and
// derives the bech32 account addresses shown on screen
package signer

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/blinklabs-io/txdisplay/parser"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const AddressHashSize = ripemd160.Size

var (
	ErrNotValidated  = errors.New("transaction has not been validated")
	ErrInvalidPrefix = errors.New("address has unexpected prefix")
	ErrInvalidLength = errors.New("address has unexpected length")
)

// Sign returns the DER encoded secp256k1 signature of the SHA-256 digest of
// the transaction held by ctx. The transaction must have passed
// ValidateAndEnumerate since it was last parsed.
func Sign(ctx *parser.Context, key *btcec.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, errors.New("no private key provided")
	}
	if !ctx.Validated() {
		return nil, ErrNotValidated
	}
	digest := sha256.Sum256(ctx.Bytes())
	sig := ecdsa.Sign(key, digest[:])
	return sig.Serialize(), nil
}

// Verify checks a DER signature produced by Sign
func Verify(data []byte, sig []byte, pub *btcec.PublicKey) (bool, error) {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, err
	}
	digest := sha256.Sum256(data)
	return parsed.Verify(digest[:], pub), nil
}

// AddressHash returns RIPEMD-160(SHA-256(compressed public key))
func AddressHash(pub *btcec.PublicKey) []byte {
	sum := sha256.Sum256(pub.SerializeCompressed())
	h := ripemd160.New()
	// Write to a hash.Hash never fails
	_, _ = h.Write(sum[:])
	return h.Sum(nil)
}

// Address returns the bech32 account address of pub with the given human
// readable prefix
func Address(pub *btcec.PublicKey, hrp string) (string, error) {
	convData, err := bech32.ConvertBits(AddressHash(pub), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, convData)
}

// ValidateAddress decodes a bech32 account address, checks its prefix and
// returns the address hash
func ValidateAddress(addr string, hrp string) ([]byte, error) {
	decodedHrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	if decodedHrp != hrp {
		return nil, fmt.Errorf(
			"%w: got %q, wanted %q",
			ErrInvalidPrefix,
			decodedHrp,
			hrp,
		)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(decoded) != AddressHashSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(decoded))
	}
	return decoded, nil
}

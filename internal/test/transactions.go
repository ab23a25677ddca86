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

package test

// Canonical THORChain transactions used across package tests
const (
	FromAddress = "tthor1c648xgpter9xffhmcqvs7lzd7hxh0prgv5t5gp"
	ToAddress   = "tthor10xgrknu44d83qr4s4uw56cqxg0hsev5e68lc9z"

	TxSend = `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","msgs":[{"type":"thorchain/MsgSend","value":{"amount":[{"amount":"150000000","denom":"rune"}],"from_address":"` + FromAddress + `","to_address":"` + ToAddress + `"}}],"sequence":"5"}`

	TxSendExtraField = `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"TestMemo","msgs":[{"type":"thorchain/MsgSend","value":{"amount":[{"amount":"150000000","denom":"rune"}],"from_address":"` + FromAddress + `","test":"test","to_address":"` + ToAddress + `"}}],"sequence":"5"}`

	TxDeposit = `{"account_number":"588","chain_id":"thorchain","fee":{"amount":[],"gas":"2000000"},"memo":"","msgs":[{"type":"thorchain/MsgDeposit","value":{"coins":[{"amount":"250000000","asset":"THOR.RUNE"},{"amount":"1000","asset":"BTC/BTC"}],"memo":"=:BTC.BTC:bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh","signer":"` + FromAddress + `"}}],"sequence":"5"}`

	TxForeignChain = `{"account_number":"588","chain_id":"thorchain-stagenet-v2","fee":{"amount":[{"amount":"2000000","denom":"rune"}],"gas":"2000000"},"memo":"TestMemo","msgs":[{"type":"thorchain/MsgSend","value":{"amount":[{"amount":"150000000","denom":"rune"}],"from_address":"` + FromAddress + `","to_address":"` + ToAddress + `"}}],"sequence":"5"}`
)

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

package parser

var keySubstitutions = []struct {
	key   string
	label string
}{
	// Common
	{"account_number", "Account"},
	{"chain_id", "Chain ID"},
	{"fee/gas", "Gas"},
	{"fee/amount", "Fee"},
	{"sequence", "Sequence"},
	{"memo", "Memo"},
	{"msgs/type", "Type"},

	// MsgSend
	{"msgs/value/from_address", "From"},
	{"msgs/value/to_address", "To"},
	{"msgs/value/amount", "Amount"},

	// MsgDeposit
	{"msgs/value/signer", "Sender"},
	{"msgs/value/memo", "Memo"},
	{"msgs/value/coins", "Amount"},
}

// Humanize returns the display label for a key path, or the key itself when
// it has no label
func Humanize(key string) string {
	for _, tmp := range keySubstitutions {
		if tmp.key == key {
			return tmp.label
		}
	}
	return key
}

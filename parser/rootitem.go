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

// RootItem identifies one of the top-level transaction fields that are
// displayed. The order of the constants defines display order.
type RootItem uint8

const (
	RootItemAccountNumber RootItem = iota
	RootItemChainId
	RootItemFee
	RootItemMemo
	RootItemMsgs
	RootItemSequence

	numRootItems
)

// RootItems lists all root items in display order
var RootItems = [numRootItems]RootItem{
	RootItemAccountNumber,
	RootItemChainId,
	RootItemFee,
	RootItemMemo,
	RootItemMsgs,
	RootItemSequence,
}

var rootItemNames = [numRootItems]string{
	"account_number",
	"chain_id",
	"fee",
	"memo",
	"msgs",
	"sequence",
}

// Maximum number of object levels the query engine descends into
var rootItemMaxLevels = [numRootItems]int{0, 0, 1, 0, 2, 0}

func (r RootItem) String() string {
	if r >= numRootItems {
		return "?"
	}
	return rootItemNames[r]
}

// MaxLevel returns how many object levels below the root item are flattened
// into separate display rows
func (r RootItem) MaxLevel() int {
	if r >= numRootItems {
		return 0
	}
	return rootItemMaxLevels[r]
}

// expertOnly reports whether the root item is metadata hidden outside
// expert mode
func (r RootItem) expertOnly() bool {
	switch r {
	case RootItemAccountNumber, RootItemChainId, RootItemFee, RootItemSequence:
		return true
	default:
		return false
	}
}

// Copyright 2024 Blink Labs Software
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

package cbor

import (
	"errors"
)

const (
	CborTypeMap uint8 = 0xa0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Limit on nested arrays/maps
	MaxNestedLevels = 32
)

var (
	ErrNotCanonical    = errors.New("CBOR was not in canonical order")
	ErrNotMap          = errors.New("CBOR transaction is not a map")
	ErrUnsupportedType = errors.New("CBOR value has no JSON representation")
	ErrDuplicateKey    = errors.New("CBOR map has a duplicate key")
)

// IsMap reports whether data starts with a CBOR map header
func IsMap(data []byte) bool {
	return len(data) > 0 && data[0]&CborTypeMask == CborTypeMap
}

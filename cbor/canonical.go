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

package cbor

import (
	"bytes"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// jsonApi writes compact JSON with sorted object keys
var jsonApi = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// CheckCanonical verifies that data is a single CBOR map whose encoding is
// byte-identical to its core deterministic re-encoding
func CheckCanonical(data []byte) error {
	_, err := decodeCanonical(data)
	return err
}

func decodeCanonical(data []byte) (map[string]any, error) {
	if !IsMap(data) {
		return nil, ErrNotMap
	}
	var tmp map[string]any
	if err := Decode(data, &tmp); err != nil {
		return nil, err
	}
	reencoded, err := Encode(tmp)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(reencoded, data) {
		return nil, ErrNotCanonical
	}
	return tmp, nil
}

// ToJSON checks that data is canonical and transcodes it into JSON with sorted
// keys, no insignificant whitespace and no HTML escaping. Byte strings become
// lowercase hex strings.
func ToJSON(data []byte) ([]byte, error) {
	tmp, err := decodeCanonical(data)
	if err != nil {
		return nil, err
	}
	jsonValue, err := toJsonValue(tmp)
	if err != nil {
		return nil, err
	}
	return jsonApi.Marshal(jsonValue)
}

func toJsonValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, uint64, int64, float64:
		return val, nil
	case []byte:
		return hex.EncodeToString(val), nil
	case []any:
		ret := make([]any, len(val))
		for i, item := range val {
			tmp, err := toJsonValue(item)
			if err != nil {
				return nil, err
			}
			ret[i] = tmp
		}
		return ret, nil
	case map[string]any:
		ret := make(map[string]any, len(val))
		for k, item := range val {
			tmp, err := toJsonValue(item)
			if err != nil {
				return nil, err
			}
			ret[k] = tmp
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

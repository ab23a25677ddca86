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

// Package amount renders fixed-point decimal integer strings
package amount

import (
	"errors"
	"strings"
)

var ErrInvalidNumber = errors.New("amount is not an unsigned decimal integer")

// Scale places a decimal point decimals digits from the right of raw, which
// must be a non-empty string of ASCII digits. Leading zeros of the integer
// part are dropped, but at least one integer digit is always kept.
func Scale(raw string, decimals int) (string, error) {
	if raw == "" || decimals < 0 {
		return "", ErrInvalidNumber
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", ErrInvalidNumber
		}
	}
	if len(raw) <= decimals {
		raw = strings.Repeat("0", decimals-len(raw)+1) + raw
	}
	split := len(raw) - decimals
	intPart := strings.TrimLeft(raw[:split], "0")
	if intPart == "" {
		intPart = "0"
	}
	if decimals == 0 {
		return intPart, nil
	}
	var sb strings.Builder
	sb.Grow(len(intPart) + 1 + decimals)
	sb.WriteString(intPart)
	sb.WriteByte('.')
	sb.WriteString(raw[split:])
	return sb.String(), nil
}

// TrimTrailingZeros drops trailing zeros after the decimal point, keeping
// one digit after it. Strings without a decimal point are returned as is.
func TrimTrailingZeros(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+2 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// Format scales raw by decimals and trims trailing zeros
func Format(raw string, decimals int) (string, error) {
	scaled, err := Scale(raw, decimals)
	if err != nil {
		return "", err
	}
	return TrimTrailingZeros(scaled), nil
}

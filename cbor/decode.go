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
	"errors"
	"fmt"
	"reflect"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			DupMapKey:       _cbor.DupMapKeyEnforcedAPF,
			IndefLength:     _cbor.IndefLengthForbidden,
			TagsMd:          _cbor.TagsForbidden,
			MaxNestedLevels: MaxNestedLevels,
			// Transactions only use text keys
			DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes exactly one CBOR data item filling all of dataBytes
func Decode(dataBytes []byte, dest any) error {
	decMode, err := getDecMode()
	if err != nil {
		return err
	}
	if decMode == nil {
		return errors.New("CBOR decoder mode not initialized")
	}
	if err := decMode.Unmarshal(dataBytes, dest); err != nil {
		var dupErr *_cbor.DupMapKeyError
		if errors.As(err, &dupErr) {
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return err
	}
	return nil
}

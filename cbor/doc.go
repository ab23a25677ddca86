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

// Package cbor handles the CBOR variant of a transaction.
//
// This package wraps github.com/fxamacker/cbor/v2. A CBOR transaction is a
// single map with text keys. It is accepted only when it is already in core
// deterministic encoding (RFC 8949 section 4.2.1): definite lengths, minimal
// integer and length heads, shortest floats and sorted map keys, with no
// duplicate keys and no tags.
//
// Accepted transactions are transcoded with ToJSON into canonical JSON so the
// same display pipeline serves both encodings.
package cbor

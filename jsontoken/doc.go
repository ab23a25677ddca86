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

// Package jsontoken splits a JSON buffer into a flat array of position-only
// tokens and provides index-based navigation over that array.
//
// Tokens never hold pointers to each other. The tree shape is implied by
// document order and each token's Size (its direct child count). Object keys
// are String tokens with Size 1, their single child being the value.
//
// String tokens cover the string content without the surrounding quotes.
// Object and Array tokens cover everything from the opening to the closing
// bracket, inclusive.
package jsontoken

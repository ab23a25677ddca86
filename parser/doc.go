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

// Package parser turns a canonical JSON transaction into human-reviewable
// key/value pages.
//
// # Pipeline
//
// Every page request runs the same strictly ordered chain over the current
// document:
//
//	Validate -> index root fields -> query -> format value -> humanize key
//
// Validate runs once per document, before any navigation. The root field
// index is built lazily on the first query and is tied to the document
// generation it was built for, so a new Parse can never be served from a
// stale index.
//
// # Display index space
//
// Only six root fields are displayed (see RootItem). Each one is flattened
// into leaf rows by a walk bounded by the field's maximum level, and the
// display index is the concatenation of the visible rows of each root field,
// in RootItem order. Metadata fields (account_number, chain_id, fee,
// sequence) are hidden unless expert mode is on or the chain ID is not the
// coin default.
//
// # Resources
//
// A Context holds exactly one document and is not safe for concurrent use.
// Values are paged to fixed capacities and amount rendering is bounded by
// fixed intermediate buffers. A guard sentinel is probed between the stages
// of GetItem; corruption panics with *FatalError.
package parser

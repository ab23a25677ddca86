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

package utils

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/txdisplay/jsontoken"
)

// DumpTokens renders the token tree of doc, one token per line, with the
// token index, type and byte span
func DumpTokens(doc *jsontoken.Document, prefix string) string {
	var ret strings.Builder
	if doc == nil || doc.Len() == 0 {
		return ret.String()
	}
	dumpToken(&ret, doc, 0, prefix)
	return ret.String()
}

// dumpToken writes the subtree rooted at idx and returns the index of the
// token that follows it
func dumpToken(
	ret *strings.Builder,
	doc *jsontoken.Document,
	idx int,
	prefix string,
) int {
	if idx >= doc.Len() {
		return idx
	}
	tok := doc.Tokens[idx]
	header := fmt.Sprintf("%s%d %s [%d:%d]", prefix, idx, tok.Type, tok.Start, tok.End)
	// Add 2 more spaces to the prefix
	newPrefix := "  " + prefix
	switch tok.Type {
	case jsontoken.TokenObject:
		fmt.Fprintf(ret, "%s {\n", header)
		next := idx + 1
		for i := 0; i < tok.Size && next < doc.Len(); i++ {
			fmt.Fprintf(ret, "%s%q =>\n", newPrefix, doc.String(next))
			next = dumpToken(ret, doc, next+1, "  "+newPrefix)
		}
		fmt.Fprintf(ret, "%s}\n", prefix)
		return next
	case jsontoken.TokenArray:
		fmt.Fprintf(ret, "%s [\n", header)
		next := idx + 1
		for i := 0; i < tok.Size && next < doc.Len(); i++ {
			next = dumpToken(ret, doc, next, newPrefix)
		}
		fmt.Fprintf(ret, "%s]\n", prefix)
		return next
	default:
		fmt.Fprintf(ret, "%s %q\n", header, doc.String(idx))
		return idx + 1
	}
}

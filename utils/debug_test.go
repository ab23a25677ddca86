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

package utils_test

import (
	"testing"

	"github.com/blinklabs-io/txdisplay/jsontoken"
	"github.com/blinklabs-io/txdisplay/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpTokens(t *testing.T) {
	doc, err := jsontoken.Parse(
		[]byte(`{"a":["1",true],"b":{}}`),
		jsontoken.DefaultMaxTokens,
	)
	require.NoError(t, err)
	expected := `0 object [0:23] {
  "a" =>
    2 array [5:15] [
      3 string [7:8] "1"
      4 primitive [10:14] "true"
    ]
  "b" =>
    6 object [20:22] {
    }
}
`
	assert.Equal(t, expected, utils.DumpTokens(doc, ""))
	assert.Empty(t, utils.DumpTokens(nil, ""))
}

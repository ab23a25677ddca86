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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdisplay/cmd/common"
	"github.com/blinklabs-io/txdisplay/parser"
	"github.com/blinklabs-io/txdisplay/utils"
)

// runTokens dumps the token tree without requiring canonical form
func runTokens(f *common.GlobalFlags, logger *slog.Logger) {
	var path string
	if len(f.Flagset.Args()) > 1 {
		path = f.Flagset.Arg(1)
	}
	data, err := f.ReadTransaction(path)
	if err != nil {
		fmt.Printf("ERROR: failed to read transaction: %s\n", err)
		os.Exit(1)
	}
	ctx, err := f.NewContext(logger)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if err := ctx.Parse(data); err != nil {
		fmt.Printf("ERROR: %s (%s)\n", parser.ErrorDescription(err), err)
		os.Exit(1)
	}
	fmt.Print(utils.DumpTokens(ctx.Document(), ""))
	if err := ctx.Validate(); err != nil {
		fmt.Printf("not canonical: %s\n", parser.ErrorDescription(err))
	}
}

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
)

func runValidate(f *common.GlobalFlags, logger *slog.Logger) {
	ctx := loadContext(f, logger, f.Flagset.Args()[1:])
	numItems, err := ctx.NumItems()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	expert, err := ctx.ExpertMode()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf(
		"OK: %s transaction, %d display items (expert mode: %t)\n",
		ctx.Variant(),
		numItems,
		expert,
	)
}

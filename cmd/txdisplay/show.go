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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/txdisplay/cmd/common"
	"github.com/blinklabs-io/txdisplay/parser"
)

type showFlags struct {
	flagset *flag.FlagSet
	item    int
}

func newShowFlags() *showFlags {
	f := &showFlags{
		flagset: flag.NewFlagSet("show", flag.ExitOnError),
	}
	f.flagset.IntVar(
		&f.item,
		"item",
		-1,
		"only show the display item with this index",
	)
	return f
}

// loadContext reads, parses and validates the transaction named by the first
// subcommand argument
func loadContext(
	f *common.GlobalFlags,
	logger *slog.Logger,
	args []string,
) *parser.Context {
	var path string
	if len(args) > 0 {
		path = args[0]
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
	if err := ctx.ValidateAndEnumerate(); err != nil {
		fmt.Printf("ERROR: %s (%s)\n", parser.ErrorDescription(err), err)
		os.Exit(1)
	}
	return ctx
}

func runShow(f *common.GlobalFlags, logger *slog.Logger) {
	showFlags := newShowFlags()
	err := showFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	ctx := loadContext(f, logger, showFlags.flagset.Args())
	numItems, err := ctx.NumItems()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for idx := 0; idx < int(numItems); idx++ {
		if showFlags.item >= 0 && idx != showFlags.item {
			continue
		}
		for pageIdx := 0; ; pageIdx++ {
			item, err := ctx.GetItem(idx, pageIdx)
			if err != nil {
				fmt.Printf("ERROR: item %d page %d: %s\n", idx, pageIdx, err)
				os.Exit(1)
			}
			fmt.Printf("%2d  %-24s %s\n", idx, item.Key, item.Value)
			if pageIdx+1 >= int(item.PageCount) {
				break
			}
		}
	}
}

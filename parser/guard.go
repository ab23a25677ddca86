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

package parser

const guardSize = 32

var guardPattern = func() [guardSize]byte {
	var ret [guardSize]byte
	for i := range ret {
		ret[i] = 0xa5 ^ byte(i)
	}
	return ret
}()

// guard is a sentinel region that must never change. It stands in for the
// stack canary of the device: nothing writes to it, so any difference means
// memory has been corrupted and the process must not continue.
type guard struct {
	sentinel [guardSize]byte
}

func newGuard() *guard {
	return &guard{sentinel: guardPattern}
}

// check panics with *FatalError when the sentinel was modified
func (g *guard) check() {
	if g == nil || g.sentinel != guardPattern {
		panic(&FatalError{Reason: "guard sentinel corrupted"})
	}
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// termGreen, termRed and termYellow are the 3-bit ANSI foreground codes
// demo output uses to highlight pass/fail/heading text.
const (
	termGreen  = uint(2)
	termRed    = uint(1)
	termYellow = uint(3)
)

// isTTY reports whether stdout is an interactive terminal; demo output
// only emits colour escapes when it is, so piping to a file or another
// program gets plain text.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colour wraps s in a bold-foreground escape when stdout is a terminal,
// and returns it unmodified otherwise.
func colour(fg uint, s string) string {
	if !isTTY() {
		return s
	}

	return fmt.Sprintf("\033[1;3%dm%s\033[0m", fg, s)
}

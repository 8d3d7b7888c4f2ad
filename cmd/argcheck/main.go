// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argcheck validates a shell script's long options against typed
// declarations and prints the resolved values.
package main

import (
	"context"
	"errors"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("argcheck: ")

	err := run(context.Background(), os.Args[1:])
	var ee *exitError
	if err != nil && !errors.As(err, &ee) {
		printCLIError(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

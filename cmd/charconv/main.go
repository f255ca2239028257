// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/luxfi/charset/cmd/charconv/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}

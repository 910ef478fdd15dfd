package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/regexkit/cmd/regexkit"
)

func main() {
	if err := regexkit.GenManPage(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

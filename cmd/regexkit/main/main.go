package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/regexkit/cmd/regexkit"
	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/ui/styles"
	"github.com/arthur-debert/regexkit/pkg/ui/text"
)

func main() {
	rootCmd := regexkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		for _, line := range text.DetailLines(errors.GetErrorDetails(err)) {
			fmt.Fprintln(os.Stderr, styles.Render("ErrorDetail", line))
		}
		os.Exit(1)
	}
}

package regexkit

import (
	"io"

	"github.com/arthur-debert/regexkit/internal/version"
	"github.com/spf13/cobra/doc"
)

// GenManPage writes the section 1 man page for the full command tree.
func GenManPage(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "REGEXKIT",
		Section: "1",
		Source:  "regexkit " + version.Version,
		Manual:  "regexkit manual",
	}
	return doc.GenMan(NewRootCmd(), header, w)
}

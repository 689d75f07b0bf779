package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/hilfsbuch/cmd/hilfsbuch"
	"github.com/arthur-debert/hilfsbuch/internal/version"
)

func main() {
	rootCmd := hilfsbuch.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HILFSBUCH",
		Section: "1",
		Source:  "hilfsbuch " + version.Version,
		Manual:  "hilfsbuch manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

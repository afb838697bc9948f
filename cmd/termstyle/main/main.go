package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/termstyle/cmd/termstyle"
	"github.com/arthur-debert/termstyle/pkg/term"
)

func main() {
	rootCmd := termstyle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		t := term.New(term.Options{Output: os.Stderr})
		fmt.Fprintln(os.Stderr, t.Bold().Red().Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/command"
)

// commandWriter returns the writer configured on the CLI root, defaulting to
// stdout.
func commandWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// writeResult prints a gateway result. Failures become exit-code-1 errors
// carrying the result's message, so the text the user sees is the same text
// the chat mode would answer with.
func writeResult(w io.Writer, res command.Result) error {
	if !res.Succeeded {
		return cli.Exit(res.Output, 1)
	}
	if res.Output != "" {
		if _, err := fmt.Fprintln(w, res.Output); err != nil {
			return err
		}
	}
	return nil
}

// Command minigrep prints the lines of a file that contain a query.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ka2n/minigrep/cli"
	"github.com/ka2n/minigrep/log"
	"github.com/morikuni/failure/v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	err := cli.Execute(args, stdout, stderr)
	if err == nil {
		return 0
	}

	log.Debug("minigrep failed", "error", err)
	fmt.Fprintf(stderr, "Error: %v\n", userMessage(err))
	return 1
}

// userMessage prefers the failure message over the full error chain
func userMessage(err error) string {
	if fmsg := failure.MessageOf(err); fmsg != "" {
		return fmsg.String()
	}
	return err.Error()
}

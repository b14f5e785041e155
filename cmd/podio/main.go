// Command podio issues calls against the Podio API from the shell.
//
//	podio call item 42
//	podio call POST item app 7 filter --body '{"limit":5}' --type application/json --select items.#.title
//	podio token
//
// Credentials come from --config, PODIO_* environment variables or flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

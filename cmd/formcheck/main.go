// Command formcheck validates form schemas and answers offline, using the same
// rules the server applies.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command gpswox is a small command line client for GPSWox servers: it logs
// in, checks the read-only endpoints of a live server and shows the account
// timezone.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

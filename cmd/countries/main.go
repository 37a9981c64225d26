// ABOUTME: Command line client for browsing countries without running the API server
// ABOUTME: Loads the collection once, then lists a page or shows a single country

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

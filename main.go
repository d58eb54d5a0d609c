// main is the entrypoint for the pulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/artkessler/pulse/cmd"
	"github.com/artkessler/pulse/internal/iocache"
)

func main() {
	// Stores are opened lazily during command setup; close them on the way out.
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}

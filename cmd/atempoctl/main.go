// Command atempoctl is the CLI/installer utility for atempo: it prints
// the provisioning SQL for the relational adapter's backing table and
// exercises a RecurrentEventSet's validate/contains/forward/describe
// operations against a JSON file, for manual sanity-checking.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

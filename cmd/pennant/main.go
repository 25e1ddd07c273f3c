// Command pennant reports which teams of a division are mathematically
// eliminated from first place, with a certificate for each.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pennant:", err)
		os.Exit(1)
	}
}

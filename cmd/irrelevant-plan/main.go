// Command irrelevant-plan prints the rewrites directives of the given files stand for.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

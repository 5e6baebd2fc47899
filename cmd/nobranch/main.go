// Command nobranch inspects, scores and benchmarks tree-ensemble models.
package main

import (
	"os"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

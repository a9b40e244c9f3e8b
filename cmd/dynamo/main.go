// Package main provides the Dynamo toolkit CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Dynamo Control Toolkit %s\n", version)
		return
	}

	fmt.Println("Dynamo - Symbolic AD for Dynamic Optimization in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Coming soon: export, check, bench")
}

// Command game runs Edge of Recursion.
package main

import (
	"context"
	"embed"
	"os"
)

//go:embed configs
var configFS embed.FS

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

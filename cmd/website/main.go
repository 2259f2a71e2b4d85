// Command website serves the Intellect marketing site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load keeps variables already set; Overload lets .env.local win.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

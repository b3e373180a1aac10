// Command calculator-mcp runs the calculator MCP server over stdio.
// This is used for testing the MCP client integration.
package main

import (
	"log"
	"os"

	"github.com/opencode-ai/opencode/pkg/mcpserver/calculator"
)

func main() {
	if err := calculator.Serve(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

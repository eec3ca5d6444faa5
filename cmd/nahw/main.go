// Command nahw runs the terminal Arabic grammar lesson menu.
package main

import (
	"fmt"
	"os"

	"github.com/nahw-app/nahw/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

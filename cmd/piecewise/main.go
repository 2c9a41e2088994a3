// Package main provides the piecewise CLI.
package main

import "github.com/born-ml/piecewise/internal/cli"

func main() {
	cli.Execute()
}

// Package main is the single-binary entrypoint for the trophy engine.
package main

import "github.com/fapmap/trophy/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

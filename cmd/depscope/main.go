package main

import (
	"github.com/pkgforge/depscope/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}

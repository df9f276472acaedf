package main

import "github.com/aduh95/corepack/internal/cli"

func main() {
	cli.Execute()
}

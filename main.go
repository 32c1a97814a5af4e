package main

import "migrator-deps/internal/cli"

func main() {
	cli.Execute()
}

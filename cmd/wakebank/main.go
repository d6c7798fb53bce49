package main

import "github.com/mhollis/wakefieldbank/internal/cli"

func main() {
	cli.Execute()
}

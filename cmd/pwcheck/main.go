package main

import "github.com/pwcheck-dev/pwcheck/internal/cli"

func main() {
	cli.Execute()
}

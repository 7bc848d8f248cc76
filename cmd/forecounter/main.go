package main

import "github.com/aalvaropc/forecounter/internal/cli"

func main() {
	cli.Execute()
}

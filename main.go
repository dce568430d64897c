package main

import "github.com/kyzipstar6/imageeditor/pkg/cli"

func main() {
	cli.RunCLI()
}

package main

import "github.com/notargets/gocsc/cmd"

func main() {
	cmd.Execute()
}

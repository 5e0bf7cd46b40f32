package main

import "github.com/dgallion1/docsite/cmd/docsite/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/itsmostafa/foldertree/cmd"

func main() {
	cmd.Execute()
}

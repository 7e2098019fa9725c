package main

import "github.com/julienpequegnot/articlegen/cmd"

func main() {
	cmd.Execute()
}

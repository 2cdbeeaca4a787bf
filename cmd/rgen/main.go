package main

import "github.com/abdul-hamid-achik/rgen/cmd/rgen/commands"

func main() {
	commands.Execute()
}

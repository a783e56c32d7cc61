package main

import "github.com/luthersystems/minilisp/cmd"

func main() {
	cmd.Execute()
}

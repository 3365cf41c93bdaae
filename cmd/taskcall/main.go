package main

import "github.com/taskcall/taskcall/internal/commands"

func main() {
	commands.Execute()
}

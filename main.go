package main

import "SyncProfiler/pkg/commands"

func main() {
	commands.Execute()
}

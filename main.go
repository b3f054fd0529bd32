package main

import "github.com/agentic-research/csvjson/cmd"

func main() {
	cmd.Execute()
}

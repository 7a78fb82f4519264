package main

import "github.com/DrCognito/StaticAnalysisSite/internal/commands"

func main() {
	commands.Execute()
}

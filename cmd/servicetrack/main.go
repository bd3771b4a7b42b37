package main

import (
	"servicetrack/internal/cmd"
)

func main() {
	cmd.Execute()
}

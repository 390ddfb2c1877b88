package main

import (
	"boxmate/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"mmg/cmd"
)

func main() {
	cmd.Execute()
}

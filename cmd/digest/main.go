package main

import (
	"github.com/digestkit/digestkit/cmd/digest/cmd"
)

func main() {
	cmd.Execute()
}

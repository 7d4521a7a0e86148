package main

import (
	"github.com/codl-go/codl/cmd/codl/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/mcoot/battleship-go/internal/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"os"

	"github.com/coregx/tokenpat/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"os"

	"github.com/rskv-p/guess/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

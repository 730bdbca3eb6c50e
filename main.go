package main

import (
	"os"

	"github.com/DannyBimma/gb-en-compiler/cmd"
)

func main() {
	os.Exit(cmd.RunCompiler())
}

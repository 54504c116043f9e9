package main

import (
	"github.com/srividya22/simple-contig-joiner/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

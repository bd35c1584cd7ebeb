package main

import (
	"github.com/samridhim/dfim/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
